// Package httpapi exposes the meal planner over REST JSON: auth, recipe and
// pantry CRUD, recipe image URLs and a health probe. Handlers translate HTTP
// to service calls and back; all business rules live in the services.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/dmitrijs2005/mealplanner/internal/logging"
	"github.com/dmitrijs2005/mealplanner/internal/server/services"
)

type Server struct {
	log     logging.Logger
	users   *services.UserService
	recipes *services.RecipeService
	pantry  *services.PantryService
	images  *services.ImageService

	httpServer *http.Server
}

func NewServer(addr string, log logging.Logger,
	users *services.UserService,
	recipes *services.RecipeService,
	pantry *services.PantryService,
	images *services.ImageService,
) *Server {
	s := &Server{
		log:     log,
		users:   users,
		recipes: recipes,
		pantry:  pantry,
		images:  images,
	}
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           withLogging(log, withCORS(s.routes())),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Run serves until the listener fails or Shutdown is called.
func (s *Server) Run(ctx context.Context) error {
	s.log.Info(ctx, "http server listening", "addr", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// Handler returns the fully wired handler. Tests mount it on httptest
// servers instead of binding a port.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}
