package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/asrlabs/advisor/backend/internal/handler/chat"
	middlewarePkg "github.com/asrlabs/advisor/backend/internal/middleware"
	chatService "github.com/asrlabs/advisor/backend/internal/service/chat"
)

// NewRouter wires HTTP routes to core services.
func NewRouter(chatSvc *chatService.Service, generator chat.ReplyGenerator) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)

	chatHandler := chat.New(chatSvc, generator)
	chatHandler.RegisterRoutes(r)

	return r
}
