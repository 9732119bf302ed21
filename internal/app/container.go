package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"job-bridge/internal/config"
	"job-bridge/internal/database"
	dbpostgres "job-bridge/internal/database/postgres"
	"job-bridge/internal/database/migration"
	"job-bridge/internal/database/seeder"
	"job-bridge/internal/delivery/http/handler"
	"job-bridge/internal/delivery/http/middleware"
	"job-bridge/internal/delivery/http/routes"
	"job-bridge/internal/domain/matching"
	"job-bridge/internal/domain/user"
	"job-bridge/internal/infrastructure/cache"
	pgdb "job-bridge/internal/infrastructure/persistence/postgres"
	"job-bridge/internal/pkg/jwt"
	"job-bridge/internal/repository"
	"job-bridge/internal/usecase"
	ucauth "job-bridge/internal/usecase/auth"
	ucuser "job-bridge/internal/usecase/user"
	"job-bridge/internal/ws"
)

// Repositories is the storage surface every usecase runs on. Postgres backs
// it in production, the memory store in tests.
type Repositories struct {
	Users        user.Repository
	Profiles     repository.ProfileRepository
	Skills       repository.SkillRepository
	SeekerSkills repository.JobSeekerSkillRepository
	Postings     repository.PostingRepository
	Applications repository.ApplicationRepository
	Candidates   repository.CandidateRepository
	Messages     repository.MessageRepository
}

// Dependencies are the collaborators Wire needs beyond configuration.
type Dependencies struct {
	Repos  Repositories
	Cache  usecase.Cache
	Hub    *ws.Hub
	Scorer matching.Scorer
	Logger *log.Logger

	// PasswordCost overrides the bcrypt cost when positive.
	PasswordCost int
}

type Container struct {
	Config config.Config
	DB     database.DB
	Cache  *cache.Redis
	Hub    *ws.Hub
	Logger *log.Logger

	Registry *routes.Registry

	users *pgdb.UserRepository
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	if logger == nil {
		logger = log.Default()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	c := &Container{Config: cfg, DB: db, Logger: logger}
	if err := c.init(ctx); err != nil {
		_ = c.Close()
		return nil, err
	}
	return c, nil
}

func (c *Container) init(ctx context.Context) error {
	if err := (migration.Runner{Logger: c.Logger}).Run(ctx, c.DB.SQLDB()); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	if c.Config.Database.RunSeeders {
		if err := (seeder.Runner{Seeders: seeder.Defaults(), Logger: c.Logger}).Run(ctx, c.DB); err != nil {
			return err
		}
	}

	users, err := pgdb.NewUserRepository(ctx, c.DB.SQLDB())
	if err != nil {
		return fmt.Errorf("prepare user statements: %w", err)
	}
	c.users = users

	scorer, err := matching.NewScorer(c.Config.Matching.Strategy)
	if err != nil {
		return err
	}

	c.Cache = cache.NewRedis(ctx, c.Config.Redis, c.Logger)
	c.Hub = ws.NewHub(c.Logger)

	c.Registry = Wire(c.Config, Dependencies{
		Repos: Repositories{
			Users:        users,
			Profiles:     repository.NewPostgresProfileRepository(c.DB),
			Skills:       repository.NewPostgresSkillRepository(c.DB),
			SeekerSkills: repository.NewPostgresJobSeekerSkillRepository(c.DB),
			Postings:     repository.NewPostgresPostingRepository(c.DB),
			Applications: repository.NewPostgresApplicationRepository(c.DB),
			Candidates:   repository.NewPostgresCandidateRepository(c.DB),
			Messages:     repository.NewPostgresMessageRepository(c.DB),
		},
		Cache:  c.Cache,
		Hub:    c.Hub,
		Scorer: scorer,
		Logger: c.Logger,
	})
	return nil
}

// Wire builds usecases and handlers on top of deps and returns the route
// table for them.
func Wire(cfg config.Config, deps Dependencies) *routes.Registry {
	jwtSvc := jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)
	authMw := middleware.NewAuthMiddleware(jwtSvc)

	r := deps.Repos
	var notifier usecase.Notifier
	if deps.Hub != nil {
		notifier = deps.Hub
	}

	authSvc := ucauth.NewService(r.Users)
	if deps.PasswordCost > 0 {
		authSvc = authSvc.WithCost(deps.PasswordCost)
	}

	authUC := usecase.NewAuthUsecase(authSvc, r.Users, jwtSvc)
	userUC := usecase.NewUserUsecase(ucuser.NewService(r.Users))
	postingUC := usecase.NewPostingUsecase(r.Postings, r.Profiles, deps.Cache, deps.Logger)
	applicationUC := usecase.NewApplicationUsecase(r.Applications, r.Postings, r.Profiles, deps.Cache, notifier, deps.Logger)
	profileUC := usecase.NewProfileUsecase(r.Profiles, deps.Cache, deps.Logger)
	skillUC := usecase.NewSkillUsecase(r.Skills)
	userSkillUC := usecase.NewUserSkillUsecase(r.Skills, r.SeekerSkills, r.Profiles)
	candidateUC := usecase.NewCandidateUsecase(r.Candidates, r.Profiles, r.Postings, r.SeekerSkills, deps.Scorer)
	recommendationUC := usecase.NewJobRecommendationUsecase(r.Postings, r.Profiles, r.SeekerSkills, deps.Scorer)
	messageUC := usecase.NewMessageUsecase(r.Messages, r.Users, notifier)

	handlers := routes.Handlers{
		Health:         handler.NewHealthHandler(cfg.App.Environment),
		Auth:           handler.NewAuthHandler(authUC),
		User:           handler.NewUserHandler(userUC),
		Profile:        handler.NewProfileHandler(profileUC),
		Skill:          handler.NewSkillHandler(skillUC, userSkillUC),
		Candidate:      handler.NewCandidateHandler(candidateUC),
		Recommendation: handler.NewJobRecommendationHandler(recommendationUC),
		Posting:        handler.NewPostingHandler(postingUC),
		Application:    handler.NewApplicationHandler(applicationUC),
		Message:        handler.NewMessageHandler(messageUC),
	}
	if deps.Hub != nil {
		handlers.Realtime = ws.NewHandler(deps.Hub, authMw, deps.Logger)
	}

	return routes.NewRegistry(handlers, authMw, cfg.App.IsDevelopment())
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}

	var errs []error
	if c.users != nil {
		errs = append(errs, c.users.Close())
	}
	if c.Cache != nil {
		errs = append(errs, c.Cache.Close())
	}
	if c.DB != nil {
		errs = append(errs, c.DB.Close())
	}
	return errors.Join(errs...)
}
