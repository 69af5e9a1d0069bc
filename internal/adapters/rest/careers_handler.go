package rest

import (
	"net/http"

	"github.com/arsicorp/zenith-lab-robotics/internal/domain"
)

func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := s.careers.ListJobs(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, jobs)
}

func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	jobID, err := pathID(r, "jobID")
	if err != nil {
		respondError(w, err)
		return
	}

	job, err := s.careers.GetJob(r.Context(), jobID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, job)
}

func (s *Server) handleApply(w http.ResponseWriter, r *http.Request) {
	var application domain.JobApplication
	if err := decodeJSON(r, &application); err != nil {
		respondError(w, err)
		return
	}

	created, err := s.careers.Apply(r.Context(), application)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

func (s *Server) handleSubmitInquiry(w http.ResponseWriter, r *http.Request) {
	var inquiry domain.SalesInquiry
	if err := decodeJSON(r, &inquiry); err != nil {
		respondError(w, err)
		return
	}

	created, err := s.sales.Submit(r.Context(), inquiry)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}
