package rest

import (
	"net/http"
)

// handleCheckout places an order from the caller's cart. The user id
// always comes from the token, never from the request body.
func (s *Server) handleCheckout(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r.Context())

	order, err := s.checkout.Checkout(r.Context(), claims.UserID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, order)
}

func (s *Server) handleListOrders(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r.Context())

	orders, err := s.orders.ListForUser(r.Context(), claims.UserID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, orders)
}

func (s *Server) handleGetOrder(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r.Context())

	orderID, err := pathID(r, "orderID")
	if err != nil {
		respondError(w, err)
		return
	}

	order, err := s.orders.Get(r.Context(), orderID, claims.UserID, claims.Role)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, order)
}
