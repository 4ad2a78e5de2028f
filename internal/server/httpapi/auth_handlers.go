package httpapi

import (
	"net/http"

	"github.com/dmitrijs2005/mealplanner/internal/server/models"
	"github.com/dmitrijs2005/mealplanner/internal/server/services"
)

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string             `json:"token"`
	User  *models.PublicUser `json:"user"`
}

func toAuthResponse(res *services.AuthResult) authResponse {
	return authResponse{Token: res.Token, User: res.User}
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		ErrorResponse(r.Context(), w, s.log, err)
		return
	}

	res, err := s.users.Register(r.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		ErrorResponse(r.Context(), w, s.log, err)
		return
	}

	JSONResponse(w, http.StatusCreated, toAuthResponse(res))
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		ErrorResponse(r.Context(), w, s.log, err)
		return
	}

	res, err := s.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		ErrorResponse(r.Context(), w, s.log, err)
		return
	}

	JSONResponse(w, http.StatusOK, toAuthResponse(res))
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFromContext(r.Context())

	user, err := s.users.Profile(r.Context(), userID)
	if err != nil {
		ErrorResponse(r.Context(), w, s.log, err)
		return
	}

	JSONResponse(w, http.StatusOK, map[string]*models.PublicUser{"user": user})
}
