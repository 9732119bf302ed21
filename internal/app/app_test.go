package app

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"job-bridge/internal/config"
	"job-bridge/internal/domain/matching"
	"job-bridge/internal/domain/posting"
	"job-bridge/internal/repository"
	"job-bridge/internal/repository/memory"
	"job-bridge/internal/ws"

	"github.com/gofiber/fiber/v3"
	"golang.org/x/crypto/bcrypt"
)

type semanticResponse struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Code    string          `json:"code"`
}

type testServer struct {
	app   *fiber.App
	store *memory.Store
}

func testConfig(env string) config.Config {
	return config.Config{
		App: config.AppConfig{AppName: "job-bridge", Environment: env, HTTPPort: "0"},
		JWT: config.JWTConfig{
			AccessSecret:     "test-access-secret",
			RefreshSecret:    "test-refresh-secret",
			AccessExpiresIn:  15 * time.Minute,
			RefreshExpiresIn: 24 * time.Hour,
		},
	}
}

func newTestServer(t *testing.T, cfg config.Config) *testServer {
	t.Helper()

	store := memory.New()
	store.AddSkill("Go", "backend")
	store.AddSkill("SQL", "data")

	logger := log.New(io.Discard, "", 0)
	registry := Wire(cfg, Dependencies{
		Repos: Repositories{
			Users:        store.Users(),
			Profiles:     store.Profiles(),
			Skills:       store.Skills(),
			SeekerSkills: store.JobSeekerSkills(),
			Postings:     store.Postings(),
			Applications: store.Applications(),
			Candidates:   store.Candidates(),
			Messages:     store.Messages(),
		},
		Hub:          ws.NewHub(logger),
		Scorer:       matching.SkillOverlapScorer{},
		Logger:       logger,
		PasswordCost: bcrypt.MinCost,
	})

	return &testServer{app: New(cfg, registry, logger).Fiber, store: store}
}

func (s *testServer) do(t *testing.T, method, path, token string, body any) semanticResponse {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := s.app.Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	var sr semanticResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		t.Fatalf("%s %s: decode: %v", method, path, err)
	}
	if sr.Status != resp.StatusCode {
		t.Fatalf("%s %s: envelope status %d, http status %d", method, path, sr.Status, resp.StatusCode)
	}
	return sr
}

func (s *testServer) expect(t *testing.T, sr semanticResponse, status int, code string) {
	t.Helper()
	if sr.Status != status || sr.Code != code {
		t.Fatalf("expected %d %q, got %d %q (message=%s)", status, code, sr.Status, sr.Code, sr.Message)
	}
}

func decode[T any](t *testing.T, sr semanticResponse) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(sr.Data, &out); err != nil {
		t.Fatalf("data unmarshal: %v (raw=%s)", err, sr.Data)
	}
	return out
}

type session struct {
	userID       int64
	accessToken  string
	refreshToken string
}

func (s *testServer) register(t *testing.T, username, role string) session {
	t.Helper()

	sr := s.do(t, fiber.MethodPost, "/api/auth/register", "", map[string]string{
		"username":  username,
		"email":     username + "@example.com",
		"password":  "password123",
		"user_type": role,
	})
	s.expect(t, sr, fiber.StatusCreated, "")

	out := decode[struct {
		User struct {
			ID int64 `json:"id"`
		} `json:"user"`
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
	}](t, sr)
	if out.AccessToken == "" || out.RefreshToken == "" {
		t.Fatalf("register %s: missing tokens", username)
	}
	return session{userID: out.User.ID, accessToken: out.AccessToken, refreshToken: out.RefreshToken}
}

func (s *testServer) employer(t *testing.T, username, company string) session {
	t.Helper()
	sess := s.register(t, username, "employer")
	sr := s.do(t, fiber.MethodPost, "/api/employer/profile", sess.accessToken, map[string]string{"company_name": company})
	s.expect(t, sr, fiber.StatusOK, "")
	return sess
}

func (s *testServer) jobSeeker(t *testing.T, username string) session {
	t.Helper()
	sess := s.register(t, username, "jobseeker")
	sr := s.do(t, fiber.MethodPost, "/api/job-seeker/profile", sess.accessToken, map[string]string{
		"first_name": strings.ToUpper(username[:1]) + username[1:],
		"last_name":  "Tester",
	})
	s.expect(t, sr, fiber.StatusOK, "")
	return sess
}

func (s *testServer) createPosting(t *testing.T, token, title string) int64 {
	t.Helper()
	sr := s.do(t, fiber.MethodPost, "/api/job-postings", token, map[string]any{
		"title":        title,
		"description":  "Build services",
		"requirements": "Go experience",
		"location":     "Remote",
		"job_type":     "full-time",
		"salary_range": "100-120k",
		"skills":       []string{"Go"},
	})
	s.expect(t, sr, fiber.StatusCreated, "")
	return decode[struct {
		ID int64 `json:"id"`
	}](t, sr).ID
}

func TestAPI_HiringScenario(t *testing.T) {
	s := newTestServer(t, testConfig("test"))
	a := s.employer(t, "acme", "Acme")
	b := s.jobSeeker(t, "bella")
	c := s.employer(t, "globex", "Globex")

	postingID := s.createPosting(t, a.accessToken, "Backend Engineer")

	sr := s.do(t, fiber.MethodPost, fmt.Sprintf("/api/job-postings/%d/apply", postingID), b.accessToken, map[string]string{"cover_letter": "hello"})
	s.expect(t, sr, fiber.StatusOK, "")
	applied := decode[struct {
		ApplicationID int64  `json:"application_id"`
		JobPostingID  int64  `json:"job_posting_id"`
		Status        string `json:"status"`
	}](t, sr)
	if applied.Status != "pending" || applied.JobPostingID != postingID || applied.ApplicationID <= 0 {
		t.Fatalf("unexpected apply result: %+v", applied)
	}

	sr = s.do(t, fiber.MethodPost, fmt.Sprintf("/api/job-postings/%d/apply", postingID), b.accessToken, map[string]string{"cover_letter": "again"})
	s.expect(t, sr, fiber.StatusBadRequest, "ALREADY_APPLIED")

	sr = s.do(t, fiber.MethodGet, fmt.Sprintf("/api/job-postings/%d/applications", postingID), a.accessToken, nil)
	s.expect(t, sr, fiber.StatusOK, "")
	applicants := decode[[]struct {
		ID          int64  `json:"id"`
		CoverLetter string `json:"cover_letter"`
		Username    string `json:"username"`
	}](t, sr)
	if len(applicants) != 1 || applicants[0].CoverLetter != "hello" || applicants[0].Username != "bella" {
		t.Fatalf("unexpected applicants: %+v", applicants)
	}

	sr = s.do(t, fiber.MethodGet, "/api/job-postings/active", "", nil)
	s.expect(t, sr, fiber.StatusOK, "")
	active := decode[[]struct {
		ID                int64  `json:"id"`
		CompanyName       string `json:"company_name"`
		ApplicationsCount int    `json:"applications_count"`
	}](t, sr)
	if len(active) != 1 || active[0].ApplicationsCount != 1 || active[0].CompanyName != "Acme" {
		t.Fatalf("unexpected active listing: %+v", active)
	}

	sr = s.do(t, fiber.MethodPatch, fmt.Sprintf("/api/applications/%d/status", applied.ApplicationID), a.accessToken, map[string]string{"status": "accepted"})
	s.expect(t, sr, fiber.StatusOK, "")

	sr = s.do(t, fiber.MethodGet, "/api/job-seeker/applications", b.accessToken, nil)
	s.expect(t, sr, fiber.StatusOK, "")
	mine := decode[[]struct {
		Status   string `json:"status"`
		JobTitle string `json:"job_title"`
	}](t, sr)
	if len(mine) != 1 || mine[0].Status != "accepted" || mine[0].JobTitle != "Backend Engineer" {
		t.Fatalf("unexpected submitted applications: %+v", mine)
	}

	// another employer cannot touch A's posting or its applications
	sr = s.do(t, fiber.MethodPatch, fmt.Sprintf("/api/job-postings/%d/status", postingID), c.accessToken, map[string]string{"status": "closed"})
	s.expect(t, sr, fiber.StatusNotFound, "NOT_FOUND")
	sr = s.do(t, fiber.MethodGet, fmt.Sprintf("/api/job-postings/%d/applications", postingID), c.accessToken, nil)
	s.expect(t, sr, fiber.StatusNotFound, "NOT_FOUND")
	sr = s.do(t, fiber.MethodPatch, fmt.Sprintf("/api/applications/%d/status", applied.ApplicationID), c.accessToken, map[string]string{"status": "rejected"})
	s.expect(t, sr, fiber.StatusNotFound, "NOT_FOUND")

	sr = s.do(t, fiber.MethodPatch, fmt.Sprintf("/api/job-postings/%d/status", postingID), a.accessToken, map[string]string{"status": "draft"})
	s.expect(t, sr, fiber.StatusBadRequest, "INVALID_STATUS")
	sr = s.do(t, fiber.MethodPatch, fmt.Sprintf("/api/job-postings/%d/status", postingID), a.accessToken, map[string]string{"status": "closed"})
	s.expect(t, sr, fiber.StatusOK, "")

	late := s.jobSeeker(t, "luis")
	sr = s.do(t, fiber.MethodPost, fmt.Sprintf("/api/job-postings/%d/apply", postingID), late.accessToken, nil)
	s.expect(t, sr, fiber.StatusNotFound, "NOT_FOUND_OR_INACTIVE")

	sr = s.do(t, fiber.MethodGet, "/api/job-postings/active", "", nil)
	s.expect(t, sr, fiber.StatusOK, "")
	if got := decode[[]json.RawMessage](t, sr); len(got) != 0 {
		t.Fatalf("closed posting still listed as active: %d items", len(got))
	}

	sr = s.do(t, fiber.MethodDelete, fmt.Sprintf("/api/job-postings/%d", postingID), a.accessToken, nil)
	s.expect(t, sr, fiber.StatusOK, "")
	sr = s.do(t, fiber.MethodGet, "/api/job-seeker/applications", b.accessToken, nil)
	s.expect(t, sr, fiber.StatusOK, "")
	if got := decode[[]json.RawMessage](t, sr); len(got) != 0 {
		t.Fatalf("applications survived posting delete: %d items", len(got))
	}
}

func TestAPI_UpdatePosting(t *testing.T) {
	s := newTestServer(t, testConfig("test"))
	a := s.employer(t, "acme", "Acme")
	postingID := s.createPosting(t, a.accessToken, "Backend Engineer")

	sr := s.do(t, fiber.MethodPut, fmt.Sprintf("/api/job-postings/%d", postingID), a.accessToken, map[string]any{
		"title":        "Staff Engineer",
		"description":  "Lead services",
		"requirements": "Go",
		"location":     "Berlin",
		"job_type":     "full-time",
		"salary_range": "150k",
	})
	s.expect(t, sr, fiber.StatusOK, "")
	updated := decode[struct {
		Title     string    `json:"title"`
		Location  string    `json:"location"`
		CreatedAt time.Time `json:"created_at"`
		UpdatedAt time.Time `json:"updated_at"`
	}](t, sr)
	if updated.Title != "Staff Engineer" || updated.Location != "Berlin" {
		t.Fatalf("update not applied: %+v", updated)
	}
	if !updated.UpdatedAt.After(updated.CreatedAt) {
		t.Fatalf("updated_at did not advance: created=%s updated=%s", updated.CreatedAt, updated.UpdatedAt)
	}

	sr = s.do(t, fiber.MethodGet, "/api/employer/job-postings", a.accessToken, nil)
	s.expect(t, sr, fiber.StatusOK, "")
	mine := decode[[]struct {
		Title string `json:"title"`
	}](t, sr)
	if len(mine) != 1 || mine[0].Title != "Staff Engineer" {
		t.Fatalf("read after update: %+v", mine)
	}

	sr = s.do(t, fiber.MethodPut, fmt.Sprintf("/api/job-postings/%d", postingID), a.accessToken, map[string]any{"title": "  "})
	s.expect(t, sr, fiber.StatusBadRequest, "VALIDATION_FAILED")
}

func TestAPI_AuthFailures(t *testing.T) {
	s := newTestServer(t, testConfig("test"))
	emp := s.employer(t, "acme", "Acme")
	seeker := s.jobSeeker(t, "bella")

	sr := s.do(t, fiber.MethodGet, "/api/employer/job-postings", "", nil)
	s.expect(t, sr, fiber.StatusUnauthorized, "UNAUTHENTICATED")

	tampered := emp.accessToken[:strings.LastIndex(emp.accessToken, ".")+1] + "forged-signature"
	sr = s.do(t, fiber.MethodGet, "/api/employer/job-postings", tampered, nil)
	s.expect(t, sr, fiber.StatusForbidden, "INVALID_TOKEN")

	sr = s.do(t, fiber.MethodGet, "/api/employer/job-postings", emp.refreshToken, nil)
	s.expect(t, sr, fiber.StatusForbidden, "INVALID_TOKEN")

	sr = s.do(t, fiber.MethodGet, "/api/employer/job-postings", seeker.accessToken, nil)
	s.expect(t, sr, fiber.StatusForbidden, "FORBIDDEN")

	sr = s.do(t, fiber.MethodGet, "/api/job-recommendations", emp.accessToken, nil)
	s.expect(t, sr, fiber.StatusForbidden, "FORBIDDEN")

	sr = s.do(t, fiber.MethodPost, "/api/auth/login", "", map[string]string{"username": "acme", "password": "wrong-password", "user_type": "employer"})
	s.expect(t, sr, fiber.StatusUnauthorized, "INVALID_CREDENTIALS")

	sr = s.do(t, fiber.MethodPost, "/api/auth/login", "", map[string]string{"username": "acme", "password": "password123", "user_type": "jobseeker"})
	s.expect(t, sr, fiber.StatusUnauthorized, "INVALID_CREDENTIALS")

	sr = s.do(t, fiber.MethodPost, "/api/auth/register", "", map[string]string{
		"username": "acme", "email": "other@example.com", "password": "password123", "user_type": "employer",
	})
	s.expect(t, sr, fiber.StatusBadRequest, "CONFLICT")
	if sr.Message != "Username already exists" {
		t.Fatalf("expected username conflict message, got %q", sr.Message)
	}
}

func TestAPI_LoginAndRefresh(t *testing.T) {
	s := newTestServer(t, testConfig("test"))
	emp := s.register(t, "acme", "employer")

	sr := s.do(t, fiber.MethodPost, "/api/auth/login", "", map[string]string{"username": "acme", "password": "password123", "user_type": "employer"})
	s.expect(t, sr, fiber.StatusOK, "")

	sr = s.do(t, fiber.MethodPost, "/api/auth/refresh", emp.refreshToken, nil)
	s.expect(t, sr, fiber.StatusOK, "")
	pair := decode[struct {
		AccessToken string `json:"access_token"`
	}](t, sr)

	sr = s.do(t, fiber.MethodGet, "/api/employer/profile", pair.AccessToken, nil)
	s.expect(t, sr, fiber.StatusOK, "")
	if string(sr.Data) != "{}" {
		t.Fatalf("expected empty profile object, got %s", sr.Data)
	}

	sr = s.do(t, fiber.MethodPost, "/api/auth/refresh", emp.accessToken, nil)
	s.expect(t, sr, fiber.StatusForbidden, "INVALID_TOKEN")

	sr = s.do(t, fiber.MethodPost, "/api/auth/refresh", "", nil)
	s.expect(t, sr, fiber.StatusUnauthorized, "UNAUTHENTICATED")
}

func TestAPI_PublicRoutes(t *testing.T) {
	s := newTestServer(t, testConfig("test"))

	for _, path := range []string{"/health", "/api/health"} {
		sr := s.do(t, fiber.MethodGet, path, "", nil)
		s.expect(t, sr, fiber.StatusOK, "")
		health := decode[map[string]string](t, sr)
		if health["status"] != "OK" || health["environment"] != "test" {
			t.Fatalf("%s: unexpected body %v", path, health)
		}
	}

	sr := s.do(t, fiber.MethodGet, "/api/job-postings/active", "", nil)
	s.expect(t, sr, fiber.StatusOK, "")

	sr = s.do(t, fiber.MethodGet, "/api/skills", "", nil)
	s.expect(t, sr, fiber.StatusOK, "")
	skills := decode[[]struct {
		Name string `json:"name"`
	}](t, sr)
	if len(skills) != 2 || skills[0].Name != "Go" {
		t.Fatalf("unexpected skills: %+v", skills)
	}

	sr = s.do(t, fiber.MethodGet, "/api/dev/users", "", nil)
	s.expect(t, sr, fiber.StatusNotFound, "NOT_FOUND")
}

func TestAPI_DevelopmentRoutes(t *testing.T) {
	s := newTestServer(t, testConfig("development"))
	a := s.employer(t, "acme", "Acme")
	s.createPosting(t, a.accessToken, "Backend Engineer")

	sr := s.do(t, fiber.MethodGet, "/api/dev/users", "", nil)
	s.expect(t, sr, fiber.StatusOK, "")
	if got := decode[[]json.RawMessage](t, sr); len(got) != 1 {
		t.Fatalf("dev users: expected 1, got %d", len(got))
	}

	sr = s.do(t, fiber.MethodGet, "/api/dev/job-postings", "", nil)
	s.expect(t, sr, fiber.StatusOK, "")
	if got := decode[[]json.RawMessage](t, sr); len(got) != 1 {
		t.Fatalf("dev postings: expected 1, got %d", len(got))
	}
}

func TestAPI_PathIDValidation(t *testing.T) {
	s := newTestServer(t, testConfig("test"))
	a := s.employer(t, "acme", "Acme")

	for _, raw := range []string{"0", "-3", "abc"} {
		sr := s.do(t, fiber.MethodDelete, "/api/job-postings/"+raw, a.accessToken, nil)
		s.expect(t, sr, fiber.StatusBadRequest, "VALIDATION_FAILED")
	}
}

func TestAPI_ProfileRequired(t *testing.T) {
	s := newTestServer(t, testConfig("test"))
	a := s.employer(t, "acme", "Acme")
	postingID := s.createPosting(t, a.accessToken, "Backend Engineer")

	bare := s.register(t, "bare", "jobseeker")
	sr := s.do(t, fiber.MethodPost, fmt.Sprintf("/api/job-postings/%d/apply", postingID), bare.accessToken, nil)
	s.expect(t, sr, fiber.StatusBadRequest, "PROFILE_NOT_FOUND")
	sr = s.do(t, fiber.MethodGet, "/api/job-seeker/applications", bare.accessToken, nil)
	s.expect(t, sr, fiber.StatusBadRequest, "PROFILE_NOT_FOUND")
	sr = s.do(t, fiber.MethodPost, "/api/job-seeker/skills", bare.accessToken, map[string]any{"skills": []int64{1}})
	s.expect(t, sr, fiber.StatusNotFound, "PROFILE_NOT_FOUND")

	bareEmp := s.register(t, "bare-co", "employer")
	sr = s.do(t, fiber.MethodPost, "/api/job-postings", bareEmp.accessToken, map[string]any{
		"title":        "Backend Engineer",
		"description":  "Build services",
		"requirements": "Go experience",
		"location":     "Remote",
		"job_type":     "full-time",
		"salary_range": "100-120k",
	})
	s.expect(t, sr, fiber.StatusNotFound, "PROFILE_NOT_FOUND")
	sr = s.do(t, fiber.MethodGet, "/api/employer/job-postings", bareEmp.accessToken, nil)
	s.expect(t, sr, fiber.StatusOK, "")
}

func TestAPI_SkillsCandidatesAndRecommendations(t *testing.T) {
	s := newTestServer(t, testConfig("test"))
	a := s.employer(t, "acme", "Acme")
	b := s.jobSeeker(t, "bella")
	postingID := s.createPosting(t, a.accessToken, "Backend Engineer")

	sr := s.do(t, fiber.MethodPost, "/api/job-seeker/skills", b.accessToken, map[string]any{"skills": []int64{1}})
	s.expect(t, sr, fiber.StatusOK, "")
	sr = s.do(t, fiber.MethodPost, "/api/job-seeker/skills", b.accessToken, map[string]any{"skills": []int64{99}})
	s.expect(t, sr, fiber.StatusBadRequest, "VALIDATION_FAILED")

	sr = s.do(t, fiber.MethodGet, "/api/job-recommendations?limit=5", b.accessToken, nil)
	s.expect(t, sr, fiber.StatusOK, "")
	recs := decode[[]struct {
		ID         int64 `json:"id"`
		MatchScore int   `json:"match_score"`
	}](t, sr)
	if len(recs) != 1 || recs[0].ID != postingID || recs[0].MatchScore != 100 {
		t.Fatalf("unexpected recommendations: %+v", recs)
	}

	sr = s.do(t, fiber.MethodGet, fmt.Sprintf("/api/candidates?search=go&job_id=%d", postingID), a.accessToken, nil)
	s.expect(t, sr, fiber.StatusOK, "")
	candidates := decode[[]struct {
		ID         int64    `json:"id"`
		Username   string   `json:"username"`
		Skills     []string `json:"skills"`
		Saved      bool     `json:"saved"`
		MatchScore int      `json:"match_score"`
	}](t, sr)
	if len(candidates) != 1 || candidates[0].Username != "bella" || candidates[0].Saved {
		t.Fatalf("unexpected candidates: %+v", candidates)
	}
	seekerProfileID := candidates[0].ID

	sr = s.do(t, fiber.MethodGet, fmt.Sprintf("/api/job-seeker/skills/%d", seekerProfileID), a.accessToken, nil)
	s.expect(t, sr, fiber.StatusOK, "")
	sr = s.do(t, fiber.MethodGet, fmt.Sprintf("/api/job-seeker/profile/%d", seekerProfileID), a.accessToken, nil)
	s.expect(t, sr, fiber.StatusOK, "")
	sr = s.do(t, fiber.MethodGet, "/api/job-seeker/profile/999", a.accessToken, nil)
	s.expect(t, sr, fiber.StatusNotFound, "NOT_FOUND")

	sr = s.do(t, fiber.MethodPost, "/api/saved-candidates", a.accessToken, map[string]any{"job_seeker_id": seekerProfileID, "notes": "strong"})
	s.expect(t, sr, fiber.StatusOK, "")
	sr = s.do(t, fiber.MethodGet, "/api/saved-candidates", a.accessToken, nil)
	s.expect(t, sr, fiber.StatusOK, "")
	if got := decode[[]json.RawMessage](t, sr); len(got) != 1 {
		t.Fatalf("saved candidates: expected 1, got %d", len(got))
	}

	sr = s.do(t, fiber.MethodDelete, fmt.Sprintf("/api/saved-candidates/%d", seekerProfileID), a.accessToken, nil)
	s.expect(t, sr, fiber.StatusOK, "")
	sr = s.do(t, fiber.MethodGet, "/api/saved-candidates", a.accessToken, nil)
	if got := decode[[]json.RawMessage](t, sr); len(got) != 0 {
		t.Fatalf("saved candidates after remove: expected 0, got %d", len(got))
	}
}

func TestAPI_Messaging(t *testing.T) {
	s := newTestServer(t, testConfig("test"))
	a := s.employer(t, "acme", "Acme")
	b := s.jobSeeker(t, "bella")

	sr := s.do(t, fiber.MethodPost, "/api/messages", a.accessToken, map[string]any{"receiver_id": b.userID, "subject": "Interview", "message": "Are you free?"})
	s.expect(t, sr, fiber.StatusOK, "")
	sr = s.do(t, fiber.MethodPost, "/api/messages", b.accessToken, map[string]any{"receiver_id": a.userID, "message": "Yes"})
	s.expect(t, sr, fiber.StatusOK, "")
	sr = s.do(t, fiber.MethodPost, "/api/messages", b.accessToken, map[string]any{"receiver_id": 999, "message": "hi"})
	s.expect(t, sr, fiber.StatusNotFound, "NOT_FOUND")
	sr = s.do(t, fiber.MethodPost, "/api/messages", b.accessToken, map[string]any{"receiver_id": a.userID, "message": " "})
	s.expect(t, sr, fiber.StatusBadRequest, "VALIDATION_FAILED")

	sr = s.do(t, fiber.MethodGet, "/api/messages/inbox", a.accessToken, nil)
	s.expect(t, sr, fiber.StatusOK, "")
	inbox := decode[[]struct {
		PartnerID   int64  `json:"partner_id"`
		PartnerName string `json:"partner_name"`
		LastMessage string `json:"last_message"`
	}](t, sr)
	if len(inbox) != 1 || inbox[0].PartnerID != b.userID || inbox[0].LastMessage != "Yes" {
		t.Fatalf("unexpected inbox: %+v", inbox)
	}

	sr = s.do(t, fiber.MethodGet, fmt.Sprintf("/api/messages/conversation/%d", b.userID), a.accessToken, nil)
	s.expect(t, sr, fiber.StatusOK, "")
	convo := decode[[]struct {
		SenderID int64  `json:"sender_id"`
		Text     string `json:"text"`
	}](t, sr)
	if len(convo) != 2 || convo[0].Text != "Are you free?" || convo[1].SenderID != b.userID {
		t.Fatalf("unexpected conversation: %+v", convo)
	}
}

func TestAPI_RateLimit(t *testing.T) {
	cfg := testConfig("test")
	cfg.HTTP.RateLimitMax = 2
	cfg.HTTP.RateLimitWindow = time.Minute
	s := newTestServer(t, cfg)

	for i := 0; i < 2; i++ {
		sr := s.do(t, fiber.MethodGet, "/health", "", nil)
		s.expect(t, sr, fiber.StatusOK, "")
	}
	sr := s.do(t, fiber.MethodGet, "/health", "", nil)
	s.expect(t, sr, fiber.StatusTooManyRequests, "RATE_LIMITED")
}

func TestAPI_RequestID(t *testing.T) {
	s := newTestServer(t, testConfig("test"))

	req := httptest.NewRequest(fiber.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	resp, err := s.app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if got := resp.Header.Get("X-Request-ID"); got != "abc-123" {
		t.Fatalf("request id not echoed: %q", got)
	}
}

func TestAPI_WebsocketRequiresAccessToken(t *testing.T) {
	s := newTestServer(t, testConfig("test"))
	emp := s.register(t, "acme", "employer")

	sr := s.do(t, fiber.MethodGet, "/ws", "", nil)
	s.expect(t, sr, fiber.StatusUnauthorized, "UNAUTHENTICATED")

	sr = s.do(t, fiber.MethodGet, "/ws?token="+emp.refreshToken, "", nil)
	s.expect(t, sr, fiber.StatusForbidden, "INVALID_TOKEN")
}

type brokenPostings struct {
	repository.PostingRepository
}

func (brokenPostings) ListActive(context.Context) ([]posting.Posting, error) {
	return nil, errors.New(`relation "job_postings" does not exist`)
}

func TestAPI_InternalErrorLogsCause(t *testing.T) {
	cfg := testConfig("test")
	store := memory.New()

	var logs bytes.Buffer
	logger := log.New(&logs, "", 0)
	registry := Wire(cfg, Dependencies{
		Repos: Repositories{
			Users:        store.Users(),
			Profiles:     store.Profiles(),
			Skills:       store.Skills(),
			SeekerSkills: store.JobSeekerSkills(),
			Postings:     brokenPostings{PostingRepository: store.Postings()},
			Applications: store.Applications(),
			Candidates:   store.Candidates(),
			Messages:     store.Messages(),
		},
		Scorer:       matching.SkillOverlapScorer{},
		Logger:       logger,
		PasswordCost: bcrypt.MinCost,
	})
	s := &testServer{app: New(cfg, registry, logger).Fiber, store: store}

	sr := s.do(t, fiber.MethodGet, "/api/job-postings/active", "", nil)
	s.expect(t, sr, fiber.StatusInternalServerError, "INTERNAL")
	if strings.Contains(sr.Message, "job_postings") {
		t.Fatalf("cause leaked to client: %q", sr.Message)
	}
	if !strings.Contains(logs.String(), `relation "job_postings" does not exist`) {
		t.Fatalf("cause missing from server log:\n%s", logs.String())
	}
}
