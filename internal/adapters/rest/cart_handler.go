package rest

import (
	"net/http"

	"github.com/arsicorp/zenith-lab-robotics/internal/domain"
)

type cartResponse struct {
	Items []domain.CartItem `json:"items"`
	Total float64           `json:"total"`
}

func toCartResponse(cart domain.Cart) cartResponse {
	resp := cartResponse{Items: []domain.CartItem{}, Total: cart.Total()}
	for _, item := range cart.Items {
		resp.Items = append(resp.Items, item)
	}
	return resp
}

type updateCartItemRequest struct {
	Quantity int32 `json:"quantity"`
}

func (s *Server) handleGetCart(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r.Context())

	cart, err := s.carts.Get(r.Context(), claims.UserID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toCartResponse(cart))
}

func (s *Server) handleAddCartItem(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r.Context())

	productID, err := pathID(r, "productID")
	if err != nil {
		respondError(w, err)
		return
	}

	cart, err := s.carts.AddItem(r.Context(), claims.UserID, productID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toCartResponse(cart))
}

func (s *Server) handleUpdateCartItem(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r.Context())

	productID, err := pathID(r, "productID")
	if err != nil {
		respondError(w, err)
		return
	}

	var req updateCartItemRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	cart, err := s.carts.UpdateItem(r.Context(), claims.UserID, productID, req.Quantity)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toCartResponse(cart))
}

func (s *Server) handleRemoveCartItem(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r.Context())

	productID, err := pathID(r, "productID")
	if err != nil {
		respondError(w, err)
		return
	}

	cart, err := s.carts.RemoveItem(r.Context(), claims.UserID, productID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toCartResponse(cart))
}

func (s *Server) handleClearCart(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r.Context())

	if err := s.carts.Clear(r.Context(), claims.UserID); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
