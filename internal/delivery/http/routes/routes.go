package routes

import (
	"job-bridge/internal/delivery/http/handler"
	"job-bridge/internal/delivery/http/middleware"
	"job-bridge/internal/domain/user"
	"job-bridge/internal/ws"

	"github.com/gofiber/fiber/v3"
)

// Handlers groups everything the route table dispatches to.
type Handlers struct {
	Health         *handler.HealthHandler
	Auth           *handler.AuthHandler
	User           *handler.UserHandler
	Profile        *handler.ProfileHandler
	Skill          *handler.SkillHandler
	Candidate      *handler.CandidateHandler
	Recommendation *handler.JobRecommendationHandler
	Posting        *handler.PostingHandler
	Application    *handler.ApplicationHandler
	Message        *handler.MessageHandler
	Realtime       *ws.Handler
}

// Route is one row of the API surface. Auth routes run the bearer check
// first; Roles, when set, narrows access further.
type Route struct {
	Method  string
	Path    string
	Auth    bool
	Roles   []user.Role
	Handler fiber.Handler
}

type Registry struct {
	handlers    Handlers
	auth        *middleware.AuthMiddleware
	development bool
}

func NewRegistry(handlers Handlers, auth *middleware.AuthMiddleware, development bool) *Registry {
	return &Registry{handlers: handlers, auth: auth, development: development}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	for _, rt := range r.Routes() {
		r.mount(app, rt)
	}
}

func (r *Registry) mount(app *fiber.App, rt Route) {
	methods := []string{rt.Method}
	switch {
	case !rt.Auth:
		app.Add(methods, rt.Path, rt.Handler)
	case len(rt.Roles) == 0:
		app.Add(methods, rt.Path, r.auth.Middleware(), rt.Handler)
	default:
		app.Add(methods, rt.Path, r.auth.Middleware(), middleware.RequireRole(rt.Roles...), rt.Handler)
	}
}

// Routes returns the full table, including development-only routes when
// enabled.
func (r *Registry) Routes() []Route {
	routes := make([]Route, 0, 40)
	routes = append(routes, r.healthRoutes()...)
	routes = append(routes, r.authRoutes()...)
	routes = append(routes, r.profileRoutes()...)
	routes = append(routes, r.candidateRoutes()...)
	routes = append(routes, r.postingRoutes()...)
	routes = append(routes, r.messageRoutes()...)
	if r.handlers.Realtime != nil {
		routes = append(routes, Route{Method: fiber.MethodGet, Path: "/ws", Handler: r.handlers.Realtime.Serve})
	}
	if r.development {
		routes = append(routes, r.devRoutes()...)
	}
	return routes
}
