package application

import (
	"time"

	"github.com/arsicorp/zenith-lab-robotics/internal/domain"
)

// OrderDraft is a fully priced order that has not been persisted yet.
// Header ids and line item ids are zero until the stores assign them.
type OrderDraft struct {
	Header domain.Order
	Lines  []domain.OrderLineItem
}

// AssembleOrder builds an order draft from a cart and the buyer's profile.
// The shipping address is copied from the profile, the order total is the
// cart total, and each line freezes the product's current price and
// discount so later catalog changes cannot alter the order.
func AssembleOrder(cart domain.Cart, profile domain.Profile, userID int64, now time.Time) OrderDraft {
	draft := OrderDraft{
		Header: domain.Order{
			UserID:         userID,
			Date:           now,
			Address:        profile.Address,
			City:           profile.City,
			State:          profile.State,
			Zip:            profile.Zip,
			ShippingAmount: 0,
			OrderTotal:     cart.Total(),
		},
	}
	for _, item := range cart.Items {
		draft.Lines = append(draft.Lines, domain.OrderLineItem{
			ProductID:  item.Product.ProductID,
			SalesPrice: item.Product.Price,
			Quantity:   item.Quantity,
			Discount:   item.DiscountPercent,
		})
	}
	return draft
}
