package ws

import (
	"log"
	"net/http"

	"job-bridge/internal/delivery/http/middleware"
	"job-bridge/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gorilla/websocket"
)

type Handler struct {
	hub    *Hub
	auth   *middleware.AuthMiddleware
	logger *log.Logger
}

func NewHandler(hub *Hub, auth *middleware.AuthMiddleware, logger *log.Logger) *Handler {
	return &Handler{hub: hub, auth: auth, logger: logger}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Serve authenticates the ?token= access token before upgrading.
func (h *Handler) Serve(c fiber.Ctx) error {
	if h == nil || h.hub == nil {
		return fiber.ErrServiceUnavailable
	}

	token := c.Query("token")
	if token == "" {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.CodeUnauthenticated, "Access token required", nil, nil)
	}
	id, err := h.auth.Identify(token)
	if err != nil {
		return err
	}

	fiberHandler := adaptor.HTTPHandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			if h.logger != nil {
				h.logger.Printf("WS upgrade error | user_id=%d error=%v", id.ID, err)
			}
			return
		}

		client := NewClient(h.hub, conn, id.ID)
		h.hub.Register(client)
		go client.WritePump()
		go client.ReadPump()
	})

	return fiberHandler(c)
}
