package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"job-bridge/internal/app"
	"job-bridge/internal/config"
	"job-bridge/internal/database"
	"job-bridge/internal/database/migration"
	dbpostgres "job-bridge/internal/database/postgres"
	"job-bridge/internal/domain/matching"
	pgdb "job-bridge/internal/infrastructure/persistence/postgres"
	"job-bridge/internal/repository"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type semanticResponse struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Code    string          `json:"code"`
}

type session struct {
	userID int64
	token  string
}

func TestIntegration_HiringFlow(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	db := connectTestDB(t, ctx)
	defer func() { _ = db.Close() }()

	if err := (migration.Runner{}).Run(ctx, db.SQLDB()); err != nil {
		t.Fatalf("run migrations: %v", err)
	}

	fiberApp, users := newTestFiberApp(t, ctx, db)
	defer func() { _ = users.Close() }()

	suffix := uuid.NewString()[:8]
	var created []int64
	defer func() {
		if len(created) > 0 {
			_, _ = db.Exec(context.Background(), `DELETE FROM users WHERE id = ANY($1)`, created)
		}
	}()

	employer := register(t, fiberApp, "it-acme-"+suffix, "employer")
	created = append(created, employer.userID)
	seeker := register(t, fiberApp, "it-bella-"+suffix, "jobseeker")
	created = append(created, seeker.userID)
	other := register(t, fiberApp, "it-globex-"+suffix, "employer")
	created = append(created, other.userID)

	mustStatus(t, call(t, fiberApp, fiber.MethodPost, "/api/employer/profile", employer.token, map[string]string{"company_name": "Acme IT"}), 200, "")
	mustStatus(t, call(t, fiberApp, fiber.MethodPost, "/api/employer/profile", other.token, map[string]string{"company_name": "Globex IT"}), 200, "")
	mustStatus(t, call(t, fiberApp, fiber.MethodPost, "/api/job-seeker/profile", seeker.token, map[string]string{"first_name": "Bella", "last_name": "IT"}), 200, "")

	sr := call(t, fiberApp, fiber.MethodPost, "/api/job-postings", employer.token, map[string]any{
		"title":        "Integration Engineer",
		"description":  "Keep the pipes flowing",
		"requirements": "Go, PostgreSQL",
		"location":     "Remote",
		"job_type":     "contract",
		"salary_range": "negotiable",
		"skills":       []string{"Go", "PostgreSQL", "Go"},
	})
	mustStatus(t, sr, 201, "")
	var posting struct {
		ID     int64    `json:"id"`
		Skills []string `json:"skills"`
	}
	mustDecode(t, sr, &posting)
	if len(posting.Skills) != 2 {
		t.Fatalf("create posting: expected deduped skills, got %v", posting.Skills)
	}

	applyPath := fmt.Sprintf("/api/job-postings/%d/apply", posting.ID)
	sr = call(t, fiberApp, fiber.MethodPost, applyPath, seeker.token, map[string]string{"cover_letter": "hello"})
	mustStatus(t, sr, 200, "")
	var applied struct {
		ApplicationID int64  `json:"application_id"`
		Status        string `json:"status"`
	}
	mustDecode(t, sr, &applied)
	if applied.Status != "pending" {
		t.Fatalf("apply: expected pending, got %s", applied.Status)
	}

	mustStatus(t, call(t, fiberApp, fiber.MethodPost, applyPath, seeker.token, nil), 400, "ALREADY_APPLIED")

	sr = call(t, fiberApp, fiber.MethodGet, "/api/employer/job-postings", employer.token, nil)
	mustStatus(t, sr, 200, "")
	var mine []struct {
		ID                int64 `json:"id"`
		ApplicationsCount int   `json:"applications_count"`
	}
	mustDecode(t, sr, &mine)
	if len(mine) != 1 || mine[0].ApplicationsCount != 1 {
		t.Fatalf("employer postings: expected one posting with one application, got %+v", mine)
	}

	statusPath := fmt.Sprintf("/api/applications/%d/status", applied.ApplicationID)
	mustStatus(t, call(t, fiberApp, fiber.MethodPatch, statusPath, other.token, map[string]string{"status": "rejected"}), 404, "NOT_FOUND")
	mustStatus(t, call(t, fiberApp, fiber.MethodPatch, statusPath, employer.token, map[string]string{"status": "accepted"}), 200, "")

	sr = call(t, fiberApp, fiber.MethodGet, "/api/job-seeker/applications", seeker.token, nil)
	mustStatus(t, sr, 200, "")
	var submitted []struct {
		Status      string `json:"status"`
		CompanyName string `json:"company_name"`
	}
	mustDecode(t, sr, &submitted)
	if len(submitted) != 1 || submitted[0].Status != "accepted" || submitted[0].CompanyName != "Acme IT" {
		t.Fatalf("submitted applications: %+v", submitted)
	}

	postingStatus := fmt.Sprintf("/api/job-postings/%d/status", posting.ID)
	mustStatus(t, call(t, fiberApp, fiber.MethodPatch, postingStatus, other.token, map[string]string{"status": "closed"}), 404, "NOT_FOUND")
	mustStatus(t, call(t, fiberApp, fiber.MethodPatch, postingStatus, employer.token, map[string]string{"status": "closed"}), 200, "")
	mustStatus(t, call(t, fiberApp, fiber.MethodPost, applyPath, seeker.token, nil), 404, "NOT_FOUND_OR_INACTIVE")

	mustStatus(t, call(t, fiberApp, fiber.MethodDelete, fmt.Sprintf("/api/job-postings/%d", posting.ID), employer.token, nil), 200, "")

	var remaining int
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM job_applications WHERE job_posting_id = $1`, posting.ID).Scan(&remaining); err != nil {
		t.Fatalf("count applications: %v", err)
	}
	if remaining != 0 {
		t.Fatalf("applications should cascade with the posting, %d left", remaining)
	}
}

func connectTestDB(t *testing.T, ctx context.Context) database.DB {
	t.Helper()

	host := stringsOrDefault(os.Getenv("JOBBRIDGE_TEST_DB_HOST"), os.Getenv("DB_HOST"))
	port := stringsOrDefault(os.Getenv("JOBBRIDGE_TEST_DB_PORT"), os.Getenv("DB_PORT"))
	name := stringsOrDefault(os.Getenv("JOBBRIDGE_TEST_DB_NAME"), os.Getenv("DB_NAME"))
	user := stringsOrDefault(os.Getenv("JOBBRIDGE_TEST_DB_USER"), os.Getenv("DB_USER"))
	pass := stringsOrDefault(os.Getenv("JOBBRIDGE_TEST_DB_PASSWORD"), os.Getenv("DB_PASSWORD"))
	ssl := stringsOrDefault(os.Getenv("JOBBRIDGE_TEST_DB_SSL_MODE"), os.Getenv("DB_SSL_MODE"))

	if host == "" || port == "" || name == "" || user == "" {
		t.Skip("missing test DB env vars: set JOBBRIDGE_TEST_DB_HOST/PORT/NAME/USER/PASSWORD (or DB_HOST/DB_PORT/DB_NAME/DB_USER/DB_PASSWORD)")
	}
	if ssl == "" {
		ssl = "disable"
	}

	db, err := dbpostgres.Connect(ctx, config.DatabaseConfig{
		DBHost:     host,
		DBPort:     port,
		DBName:     name,
		DBUser:     user,
		DBPassword: pass,
		DBSSLMode:  ssl,
	})
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	return db
}

func newTestFiberApp(t *testing.T, ctx context.Context, db database.DB) (*fiber.App, *pgdb.UserRepository) {
	t.Helper()

	users, err := pgdb.NewUserRepository(ctx, db.SQLDB())
	if err != nil {
		t.Fatalf("user repository: %v", err)
	}

	cfg := config.Config{
		App: config.AppConfig{AppName: "job-bridge", Environment: "test", HTTPPort: "0"},
		JWT: config.JWTConfig{
			AccessSecret:     stringsOrDefault(os.Getenv("JOBBRIDGE_TEST_JWT_ACCESS_SECRET"), "test-access-secret"),
			RefreshSecret:    stringsOrDefault(os.Getenv("JOBBRIDGE_TEST_JWT_REFRESH_SECRET"), "test-refresh-secret"),
			AccessExpiresIn:  15 * time.Minute,
			RefreshExpiresIn: 24 * time.Hour,
		},
	}
	logger := log.New(io.Discard, "", 0)

	registry := app.Wire(cfg, app.Dependencies{
		Repos: app.Repositories{
			Users:        users,
			Profiles:     repository.NewPostgresProfileRepository(db),
			Skills:       repository.NewPostgresSkillRepository(db),
			SeekerSkills: repository.NewPostgresJobSeekerSkillRepository(db),
			Postings:     repository.NewPostgresPostingRepository(db),
			Applications: repository.NewPostgresApplicationRepository(db),
			Candidates:   repository.NewPostgresCandidateRepository(db),
			Messages:     repository.NewPostgresMessageRepository(db),
		},
		Scorer:       matching.SkillOverlapScorer{},
		Logger:       logger,
		PasswordCost: bcrypt.MinCost,
	})
	return app.New(cfg, registry, logger).Fiber, users
}

func register(t *testing.T, fiberApp *fiber.App, username, role string) session {
	t.Helper()

	sr := call(t, fiberApp, fiber.MethodPost, "/api/auth/register", "", map[string]string{
		"username":  username,
		"email":     username + "@example.com",
		"password":  "password123",
		"user_type": role,
	})
	mustStatus(t, sr, 201, "")

	var out struct {
		User struct {
			ID int64 `json:"id"`
		} `json:"user"`
		AccessToken string `json:"access_token"`
	}
	mustDecode(t, sr, &out)
	if out.AccessToken == "" {
		t.Fatalf("register %s: missing access_token", username)
	}
	return session{userID: out.User.ID, token: out.AccessToken}
}

func call(t *testing.T, fiberApp *fiber.App, method, path, token string, body any) semanticResponse {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := fiberApp.Test(req, fiber.TestConfig{Timeout: 10 * time.Second})
	if err != nil {
		t.Fatalf("%s %s: request error: %v", method, path, err)
	}
	defer resp.Body.Close()

	var sr semanticResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		t.Fatalf("%s %s: decode error: %v", method, path, err)
	}
	return sr
}

func mustStatus(t *testing.T, sr semanticResponse, status int, code string) {
	t.Helper()
	if sr.Status != status || sr.Code != code {
		t.Fatalf("expected %d %q, got %d %q (message=%s)", status, code, sr.Status, sr.Code, sr.Message)
	}
}

func mustDecode(t *testing.T, sr semanticResponse, out any) {
	t.Helper()
	if err := json.Unmarshal(sr.Data, out); err != nil {
		t.Fatalf("data unmarshal error: %v", err)
	}
}

func stringsOrDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
