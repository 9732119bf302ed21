package jwt

import (
	"strings"
	"testing"
	"time"

	qt "github.com/frankban/quicktest"
	jwtlib "github.com/golang-jwt/jwt/v5"
)

func newTestService(now time.Time) *HMACService {
	s := NewHMACService("access-secret", "refresh-secret", time.Hour, 24*time.Hour)
	s.now = func() time.Time { return now }
	return s
}

func TestAccessTokenRoundTrip(t *testing.T) {
	c := qt.New(t)
	s := newTestService(time.Now())

	tok, err := s.GenerateAccessToken(Subject{UserID: 7, Username: "ana", Role: "employer"})
	c.Assert(err, qt.IsNil)

	claims, err := s.ValidateAccessToken(tok)
	c.Assert(err, qt.IsNil)
	c.Assert(claims.UserID, qt.Equals, int64(7))
	c.Assert(claims.Username, qt.Equals, "ana")
	c.Assert(claims.Role, qt.Equals, "employer")
	c.Assert(claims.TokenType, qt.Equals, TokenTypeAccess)
	c.Assert(claims.Subject, qt.Equals, "7")
}

func TestTokenTypesAreNotInterchangeable(t *testing.T) {
	c := qt.New(t)
	s := newTestService(time.Now())

	access, err := s.GenerateAccessToken(Subject{UserID: 1, Username: "a", Role: "jobseeker"})
	c.Assert(err, qt.IsNil)
	refresh, err := s.GenerateRefreshToken(Subject{UserID: 1, Username: "a", Role: "jobseeker"})
	c.Assert(err, qt.IsNil)

	_, err = s.ValidateRefreshToken(access)
	c.Assert(err, qt.ErrorIs, ErrTokenInvalid)
	_, err = s.ValidateAccessToken(refresh)
	c.Assert(err, qt.ErrorIs, ErrTokenInvalid)

	claims, err := s.ValidateRefreshToken(refresh)
	c.Assert(err, qt.IsNil)
	c.Assert(claims.UserID, qt.Equals, int64(1))
	c.Assert(claims.Role, qt.Equals, "")
}

func TestExpiredToken(t *testing.T) {
	c := qt.New(t)
	issued := time.Now().Add(-2 * time.Hour)
	tok, err := newTestService(issued).GenerateAccessToken(Subject{UserID: 3})
	c.Assert(err, qt.IsNil)

	_, err = newTestService(time.Now()).ValidateAccessToken(tok)
	c.Assert(err, qt.ErrorIs, ErrTokenExpired)
}

func TestTamperedAndForeignTokens(t *testing.T) {
	c := qt.New(t)
	s := newTestService(time.Now())

	tok, err := s.GenerateAccessToken(Subject{UserID: 3, Role: "jobseeker"})
	c.Assert(err, qt.IsNil)

	parts := strings.Split(tok, ".")
	c.Assert(parts, qt.HasLen, 3)
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)
	_, err = s.ValidateAccessToken(tampered)
	c.Assert(err, qt.ErrorIs, ErrTokenInvalid)

	other := NewHMACService("another-secret", "refresh-secret", time.Hour, time.Hour)
	foreign, err := other.GenerateAccessToken(Subject{UserID: 3})
	c.Assert(err, qt.IsNil)
	_, err = s.ValidateAccessToken(foreign)
	c.Assert(err, qt.ErrorIs, ErrTokenInvalid)

	none := jwtlib.NewWithClaims(jwtlib.SigningMethodNone, Claims{UserID: 3, TokenType: TokenTypeAccess})
	unsigned, err := none.SignedString(jwtlib.UnsafeAllowNoneSignatureType)
	c.Assert(err, qt.IsNil)
	_, err = s.ValidateAccessToken(unsigned)
	c.Assert(err, qt.ErrorIs, ErrTokenInvalid)

	_, err = s.ValidateAccessToken("not-a-token")
	c.Assert(err, qt.ErrorIs, ErrTokenInvalid)
}

func TestGenerateRejectsMissingUser(t *testing.T) {
	c := qt.New(t)
	_, err := newTestService(time.Now()).GenerateAccessToken(Subject{})
	c.Assert(err, qt.ErrorIs, ErrTokenInvalid)
}
