package application

import (
	"context"
	"fmt"
	"time"

	"github.com/arsicorp/zenith-lab-robotics/internal/domain"
	"github.com/arsicorp/zenith-lab-robotics/internal/ports"
)

// CheckoutService turns a user's cart into a persisted order. The order
// header, its line items and the cart clear are three independent writes;
// there is no surrounding transaction and no rollback of earlier writes
// when a later one fails.
type CheckoutService struct {
	carts     ports.CartStore
	profiles  ports.ProfileStore
	orders    ports.OrderStore
	lineItems ports.LineItemStore
	now       func() time.Time
}

func NewCheckoutService(carts ports.CartStore, profiles ports.ProfileStore, orders ports.OrderStore, lineItems ports.LineItemStore) *CheckoutService {
	return &CheckoutService{
		carts:     carts,
		profiles:  profiles,
		orders:    orders,
		lineItems: lineItems,
		now:       time.Now,
	}
}

// Checkout places an order for the given user.
//
// It fails with ErrEmptyCart when the cart has no items, ErrProfileMissing
// when the user has no profile, an EligibilityDeniedError when any cart
// item's product restricts purchase to an account type the user does not
// hold, and a PersistenceError when a storage write fails. Eligibility is
// checked for every item before anything is written; the first denial
// stops the checkout.
func (s *CheckoutService) Checkout(ctx context.Context, userID int64) (*domain.Order, error) {
	cart, err := s.carts.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	if len(cart.Items) == 0 {
		return nil, ErrEmptyCart
	}

	profile, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	if profile == nil {
		return nil, ErrProfileMissing
	}

	for _, item := range cart.Items {
		if err := EvaluateEligibility(item.Product, profile.AccountType); err != nil {
			return nil, err
		}
	}

	draft := AssembleOrder(cart, *profile, userID, s.now())

	orderID, err := s.orders.Create(ctx, draft.Header)
	if err != nil {
		return nil, &PersistenceError{Stage: StageOrder, Err: err}
	}
	draft.Header.OrderID = orderID

	for i := range draft.Lines {
		draft.Lines[i].OrderID = orderID
		if err := s.lineItems.Create(ctx, orderID, draft.Lines[i]); err != nil {
			return nil, &PersistenceError{Stage: StageLineItem, Err: err}
		}
	}

	if err := s.carts.ClearCart(ctx, userID); err != nil {
		return nil, &PersistenceError{Stage: StageCartClear, Err: err}
	}

	draft.Header.LineItems = draft.Lines
	return &draft.Header, nil
}
