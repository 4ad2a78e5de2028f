package httpapi

import "net/http"

func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.handleHealth)

	mux.HandleFunc("POST /auth/register", s.handleRegister)
	mux.HandleFunc("POST /auth/login", s.handleLogin)
	mux.HandleFunc("GET /auth/me", s.withAuth(s.handleProfile))

	mux.HandleFunc("GET /recipes", s.withAuth(s.handleListRecipes))
	mux.HandleFunc("POST /recipes", s.withAuth(s.handleCreateRecipe))
	mux.HandleFunc("GET /recipes/{id}", s.withAuth(s.handleGetRecipe))
	mux.HandleFunc("PUT /recipes/{id}", s.withAuth(s.handleUpdateRecipe))
	mux.HandleFunc("DELETE /recipes/{id}", s.withAuth(s.handleDeleteRecipe))
	mux.HandleFunc("POST /recipes/{id}/image", s.withAuth(s.handleIssueImageUploadURL))
	mux.HandleFunc("GET /recipes/{id}/image", s.withAuth(s.handleResolveImageURL))

	mux.HandleFunc("GET /pantry", s.withAuth(s.handleListPantry))
	mux.HandleFunc("POST /pantry", s.withAuth(s.handleCreatePantryItem))
	mux.HandleFunc("GET /pantry/{id}", s.withAuth(s.handleGetPantryItem))
	mux.HandleFunc("PUT /pantry/{id}", s.withAuth(s.handleUpdatePantryItem))
	mux.HandleFunc("DELETE /pantry/{id}", s.withAuth(s.handleDeletePantryItem))

	return mux
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	JSONResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}
