package rest

import (
	"net/http"
)

func (s *Server) handleAdminListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := s.orders.ListAll(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, orders)
}

func (s *Server) handleAdminListApplications(w http.ResponseWriter, r *http.Request) {
	applications, err := s.careers.ListApplications(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, applications)
}

func (s *Server) handleAdminListInquiries(w http.ResponseWriter, r *http.Request) {
	inquiries, err := s.sales.ListAll(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, inquiries)
}
