package routes

import (
	"job-bridge/internal/domain/user"

	"github.com/gofiber/fiber/v3"
)

var (
	employerOnly  = []user.Role{user.RoleEmployer}
	jobSeekerOnly = []user.Role{user.RoleJobSeeker}
)

func (r *Registry) healthRoutes() []Route {
	h := r.handlers.Health
	return []Route{
		{Method: fiber.MethodGet, Path: "/health", Handler: h.Health},
		{Method: fiber.MethodGet, Path: "/api/health", Handler: h.Health},
	}
}

func (r *Registry) authRoutes() []Route {
	a := r.handlers.Auth
	return []Route{
		{Method: fiber.MethodPost, Path: "/api/auth/register", Handler: a.Register},
		{Method: fiber.MethodPost, Path: "/api/auth/login", Handler: a.Login},
		// refresh reads its own bearer, which is a refresh token
		{Method: fiber.MethodPost, Path: "/api/auth/refresh", Handler: a.Refresh},
		{Method: fiber.MethodGet, Path: "/api/users", Auth: true, Roles: employerOnly, Handler: r.handlers.User.List},
	}
}

func (r *Registry) profileRoutes() []Route {
	p := r.handlers.Profile
	s := r.handlers.Skill
	return []Route{
		{Method: fiber.MethodPost, Path: "/api/job-seeker/profile", Auth: true, Roles: jobSeekerOnly, Handler: p.SaveJobSeeker},
		{Method: fiber.MethodGet, Path: "/api/job-seeker/profile", Auth: true, Roles: jobSeekerOnly, Handler: p.GetMyJobSeeker},
		{Method: fiber.MethodGet, Path: "/api/job-seeker/profile/:id", Auth: true, Roles: employerOnly, Handler: p.GetJobSeeker},
		{Method: fiber.MethodPost, Path: "/api/employer/profile", Auth: true, Roles: employerOnly, Handler: p.SaveEmployer},
		{Method: fiber.MethodGet, Path: "/api/employer/profile", Auth: true, Roles: employerOnly, Handler: p.GetMyEmployer},

		{Method: fiber.MethodGet, Path: "/api/skills", Handler: s.List},
		{Method: fiber.MethodPost, Path: "/api/job-seeker/skills", Auth: true, Roles: jobSeekerOnly, Handler: s.SaveMine},
		{Method: fiber.MethodGet, Path: "/api/job-seeker/skills", Auth: true, Roles: jobSeekerOnly, Handler: s.ListMine},
		{Method: fiber.MethodGet, Path: "/api/job-seeker/skills/:id", Auth: true, Roles: employerOnly, Handler: s.ListForJobSeeker},
	}
}

func (r *Registry) candidateRoutes() []Route {
	c := r.handlers.Candidate
	return []Route{
		{Method: fiber.MethodGet, Path: "/api/candidates", Auth: true, Roles: employerOnly, Handler: c.Search},
		{Method: fiber.MethodPost, Path: "/api/saved-candidates", Auth: true, Roles: employerOnly, Handler: c.Save},
		{Method: fiber.MethodGet, Path: "/api/saved-candidates", Auth: true, Roles: employerOnly, Handler: c.ListSaved},
		{Method: fiber.MethodDelete, Path: "/api/saved-candidates/:candidateId", Auth: true, Roles: employerOnly, Handler: c.Remove},
		{Method: fiber.MethodGet, Path: "/api/job-recommendations", Auth: true, Roles: jobSeekerOnly, Handler: r.handlers.Recommendation.GetRecommendations},
	}
}

func (r *Registry) postingRoutes() []Route {
	p := r.handlers.Posting
	a := r.handlers.Application
	return []Route{
		{Method: fiber.MethodPost, Path: "/api/job-postings", Auth: true, Roles: employerOnly, Handler: p.Create},
		{Method: fiber.MethodGet, Path: "/api/job-postings/active", Handler: p.ListActive},
		{Method: fiber.MethodGet, Path: "/api/employer/job-postings", Auth: true, Roles: employerOnly, Handler: p.ListMine},
		{Method: fiber.MethodPut, Path: "/api/job-postings/:id", Auth: true, Roles: employerOnly, Handler: p.Update},
		{Method: fiber.MethodPatch, Path: "/api/job-postings/:id/status", Auth: true, Roles: employerOnly, Handler: p.SetStatus},
		{Method: fiber.MethodDelete, Path: "/api/job-postings/:id", Auth: true, Roles: employerOnly, Handler: p.Delete},

		{Method: fiber.MethodPost, Path: "/api/job-postings/:id/apply", Auth: true, Roles: jobSeekerOnly, Handler: a.Apply},
		{Method: fiber.MethodGet, Path: "/api/job-postings/:id/applications", Auth: true, Roles: employerOnly, Handler: a.ListForPosting},
		{Method: fiber.MethodPatch, Path: "/api/applications/:id/status", Auth: true, Roles: employerOnly, Handler: a.SetStatus},
		{Method: fiber.MethodGet, Path: "/api/job-seeker/applications", Auth: true, Roles: jobSeekerOnly, Handler: a.ListMine},
	}
}

func (r *Registry) messageRoutes() []Route {
	m := r.handlers.Message
	return []Route{
		{Method: fiber.MethodPost, Path: "/api/messages", Auth: true, Handler: m.Send},
		{Method: fiber.MethodGet, Path: "/api/messages/inbox", Auth: true, Handler: m.Inbox},
		{Method: fiber.MethodGet, Path: "/api/messages/conversation/:userId", Auth: true, Handler: m.Conversation},
	}
}

func (r *Registry) devRoutes() []Route {
	return []Route{
		{Method: fiber.MethodGet, Path: "/api/dev/users", Handler: r.handlers.User.List},
		{Method: fiber.MethodGet, Path: "/api/dev/job-postings", Handler: r.handlers.Posting.ListAll},
	}
}
