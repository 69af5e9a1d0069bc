package rest

import (
	"net/http"

	"github.com/arsicorp/zenith-lab-robotics/internal/application"
	"github.com/arsicorp/zenith-lab-robotics/internal/domain"
)

type registerRequest struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	AccountType string `json:"accountType"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	token, user, err := s.auth.Register(r.Context(), application.Registration{
		Username:    req.Username,
		Password:    req.Password,
		AccountType: domain.AccountType(req.AccountType),
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, authResponse{Token: token, User: user})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	token, user, err := s.auth.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, authResponse{Token: token, User: user})
}
