package httpapi

import (
	"net/http"

	"github.com/dmitrijs2005/mealplanner/internal/server/models"
)

func (s *Server) handleListPantry(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFromContext(r.Context())

	items, err := s.pantry.List(r.Context(), userID)
	if err != nil {
		ErrorResponse(r.Context(), w, s.log, err)
		return
	}

	JSONResponse(w, http.StatusOK, map[string][]*models.PantryItem{"items": items})
}

func (s *Server) handleGetPantryItem(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFromContext(r.Context())
	id, err := pathID(r)
	if err != nil {
		ErrorResponse(r.Context(), w, s.log, err)
		return
	}

	item, err := s.pantry.Get(r.Context(), userID, id)
	if err != nil {
		ErrorResponse(r.Context(), w, s.log, err)
		return
	}

	JSONResponse(w, http.StatusOK, map[string]*models.PantryItem{"item": item})
}

func (s *Server) handleCreatePantryItem(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFromContext(r.Context())

	var item models.PantryItem
	if err := decodeJSON(r, &item); err != nil {
		ErrorResponse(r.Context(), w, s.log, err)
		return
	}

	created, err := s.pantry.Create(r.Context(), userID, &item)
	if err != nil {
		ErrorResponse(r.Context(), w, s.log, err)
		return
	}

	JSONResponse(w, http.StatusCreated, map[string]*models.PantryItem{"item": created})
}

func (s *Server) handleUpdatePantryItem(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFromContext(r.Context())
	id, err := pathID(r)
	if err != nil {
		ErrorResponse(r.Context(), w, s.log, err)
		return
	}

	var item models.PantryItem
	if err := decodeJSON(r, &item); err != nil {
		ErrorResponse(r.Context(), w, s.log, err)
		return
	}

	if err := s.pantry.Update(r.Context(), userID, id, &item); err != nil {
		ErrorResponse(r.Context(), w, s.log, err)
		return
	}

	updated, err := s.pantry.Get(r.Context(), userID, id)
	if err != nil {
		ErrorResponse(r.Context(), w, s.log, err)
		return
	}

	JSONResponse(w, http.StatusOK, map[string]*models.PantryItem{"item": updated})
}

func (s *Server) handleDeletePantryItem(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFromContext(r.Context())
	id, err := pathID(r)
	if err != nil {
		ErrorResponse(r.Context(), w, s.log, err)
		return
	}

	if err := s.pantry.Delete(r.Context(), userID, id); err != nil {
		ErrorResponse(r.Context(), w, s.log, err)
		return
	}

	JSONResponse(w, http.StatusOK, map[string]string{"message": "item deleted"})
}
