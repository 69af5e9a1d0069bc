package rest

import (
	"net/http"

	"github.com/arsicorp/zenith-lab-robotics/internal/domain"
)

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r.Context())

	profile, err := s.profiles.Get(r.Context(), claims.UserID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, profile)
}

func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r.Context())

	var profile domain.Profile
	if err := decodeJSON(r, &profile); err != nil {
		respondError(w, err)
		return
	}

	updated, err := s.profiles.Update(r.Context(), claims.UserID, profile)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}
