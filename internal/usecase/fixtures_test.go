package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"job-bridge/internal/domain/matching"
	"job-bridge/internal/domain/profile"
	"job-bridge/internal/domain/user"
	"job-bridge/internal/repository/memory"
)

type notifiedEvent struct {
	userID    int64
	eventType string
	payload   any
}

type recordingNotifier struct {
	mu     sync.Mutex
	events []notifiedEvent
}

func (n *recordingNotifier) NotifyUser(userID int64, eventType string, payload any) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, notifiedEvent{userID: userID, eventType: eventType, payload: payload})
}

func (n *recordingNotifier) last() (notifiedEvent, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.events) == 0 {
		return notifiedEvent{}, false
	}
	return n.events[len(n.events)-1], true
}

type mapCache struct {
	data    map[string][]byte
	deletes int
	getErr  error
}

func newMapCache() *mapCache {
	return &mapCache{data: map[string][]byte{}}
}

func (c *mapCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	if c.getErr != nil {
		return false, c.getErr
	}
	b, ok := c.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (c *mapCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.data[key] = b
	return nil
}

func (c *mapCache) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(c.data, k)
	}
	c.deletes++
	return nil
}

// fixedScorer returns a preset score per job seeker profile id.
type fixedScorer map[int64]int

func (s fixedScorer) Score(c matching.Candidate, _ matching.Job) int {
	return s[c.JobSeekerID]
}

var errBoom = errors.New("boom")

func seedEmployer(t *testing.T, store *memory.Store, username, company string) (user.User, profile.EmployerProfile) {
	t.Helper()
	ctx := context.Background()
	u, err := store.Users().CreateUser(ctx, user.User{Username: username, Email: username + "@example.com", Role: user.RoleEmployer})
	if err != nil {
		t.Fatalf("create employer user: %v", err)
	}
	p, err := store.Profiles().UpsertEmployer(ctx, profile.EmployerProfile{UserID: u.ID, CompanyName: company})
	if err != nil {
		t.Fatalf("create employer profile: %v", err)
	}
	return u, p
}

func seedJobSeeker(t *testing.T, store *memory.Store, username, first, last string) (user.User, profile.JobSeekerProfile) {
	t.Helper()
	ctx := context.Background()
	u, err := store.Users().CreateUser(ctx, user.User{Username: username, Email: username + "@example.com", Role: user.RoleJobSeeker})
	if err != nil {
		t.Fatalf("create job seeker user: %v", err)
	}
	p, err := store.Profiles().UpsertJobSeeker(ctx, profile.JobSeekerProfile{UserID: u.ID, FirstName: first, LastName: last})
	if err != nil {
		t.Fatalf("create job seeker profile: %v", err)
	}
	return u, p
}

func validPostingInput() PostingInput {
	return PostingInput{
		Title:        "Backend Engineer",
		Description:  "Build services",
		Requirements: "Go, SQL",
		Location:     "Remote",
		JobType:      "full-time",
		SalaryRange:  "50k-70k",
		Skills:       []string{"Go", "SQL"},
	}
}
