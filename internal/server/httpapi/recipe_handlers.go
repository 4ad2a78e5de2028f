package httpapi

import (
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/mealplanner/internal/common"
	"github.com/dmitrijs2005/mealplanner/internal/server/models"
)

// pathID parses the {id} path segment. A non-numeric id behaves like a row
// that does not exist.
func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, common.ErrorNotFound
	}
	return id, nil
}

func (s *Server) handleListRecipes(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFromContext(r.Context())

	recipes, err := s.recipes.List(r.Context(), userID)
	if err != nil {
		ErrorResponse(r.Context(), w, s.log, err)
		return
	}

	JSONResponse(w, http.StatusOK, map[string][]*models.Recipe{"recipes": recipes})
}

func (s *Server) handleGetRecipe(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFromContext(r.Context())
	id, err := pathID(r)
	if err != nil {
		ErrorResponse(r.Context(), w, s.log, err)
		return
	}

	recipe, err := s.recipes.Get(r.Context(), userID, id)
	if err != nil {
		ErrorResponse(r.Context(), w, s.log, err)
		return
	}

	JSONResponse(w, http.StatusOK, map[string]*models.Recipe{"recipe": recipe})
}

func (s *Server) handleCreateRecipe(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFromContext(r.Context())

	var recipe models.Recipe
	if err := decodeJSON(r, &recipe); err != nil {
		ErrorResponse(r.Context(), w, s.log, err)
		return
	}

	created, err := s.recipes.Create(r.Context(), userID, &recipe)
	if err != nil {
		ErrorResponse(r.Context(), w, s.log, err)
		return
	}

	JSONResponse(w, http.StatusCreated, map[string]*models.Recipe{"recipe": created})
}

func (s *Server) handleUpdateRecipe(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFromContext(r.Context())
	id, err := pathID(r)
	if err != nil {
		ErrorResponse(r.Context(), w, s.log, err)
		return
	}

	var recipe models.Recipe
	if err := decodeJSON(r, &recipe); err != nil {
		ErrorResponse(r.Context(), w, s.log, err)
		return
	}

	if err := s.recipes.Update(r.Context(), userID, id, &recipe); err != nil {
		ErrorResponse(r.Context(), w, s.log, err)
		return
	}

	updated, err := s.recipes.Get(r.Context(), userID, id)
	if err != nil {
		ErrorResponse(r.Context(), w, s.log, err)
		return
	}

	JSONResponse(w, http.StatusOK, map[string]*models.Recipe{"recipe": updated})
}

func (s *Server) handleDeleteRecipe(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFromContext(r.Context())
	id, err := pathID(r)
	if err != nil {
		ErrorResponse(r.Context(), w, s.log, err)
		return
	}

	if err := s.recipes.Delete(r.Context(), userID, id); err != nil {
		ErrorResponse(r.Context(), w, s.log, err)
		return
	}

	JSONResponse(w, http.StatusOK, map[string]string{"message": "recipe deleted"})
}

func (s *Server) handleIssueImageUploadURL(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFromContext(r.Context())
	id, err := pathID(r)
	if err != nil {
		ErrorResponse(r.Context(), w, s.log, err)
		return
	}

	url, err := s.images.IssueUploadURL(r.Context(), userID, id)
	if err != nil {
		ErrorResponse(r.Context(), w, s.log, err)
		return
	}

	JSONResponse(w, http.StatusOK, map[string]string{"upload_url": url})
}

func (s *Server) handleResolveImageURL(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFromContext(r.Context())
	id, err := pathID(r)
	if err != nil {
		ErrorResponse(r.Context(), w, s.log, err)
		return
	}

	url, err := s.images.ResolveImageURL(r.Context(), userID, id)
	if err != nil {
		ErrorResponse(r.Context(), w, s.log, err)
		return
	}

	JSONResponse(w, http.StatusOK, map[string]string{"image_url": url})
}
