// internal/ports/ports.go
package ports

import (
	"context"

	"github.com/arsicorp/zenith-lab-robotics/internal/domain"
)

type UserStore interface {
	Create(ctx context.Context, username, hashedPassword, role string) (*domain.User, error)
	// GetByUsername returns (nil, nil) when no such user exists.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

type ProfileStore interface {
	Create(ctx context.Context, profile *domain.Profile) error
	// GetByUserID returns (nil, nil) when the user has no profile.
	GetByUserID(ctx context.Context, userID int64) (*domain.Profile, error)
	Update(ctx context.Context, profile *domain.Profile) error
}

type CatalogStore interface {
	List(ctx context.Context) ([]domain.Product, error)
	// GetByID returns (nil, nil) when no such product exists.
	GetByID(ctx context.Context, productID int64) (*domain.Product, error)
}

// CartStore persists per-user shopping carts. Implementations must provide
// read-then-clear consistency per user: two concurrent checkouts for the same
// user must not both observe and clear the same cart contents. The checkout
// engine relies on this and takes no locks of its own.
type CartStore interface {
	GetByUserID(ctx context.Context, userID int64) (domain.Cart, error)
	AddItem(ctx context.Context, userID, productID int64) error
	UpdateItem(ctx context.Context, userID, productID int64, quantity int32) error
	RemoveItem(ctx context.Context, userID, productID int64) error
	ClearCart(ctx context.Context, userID int64) error
}

type OrderStore interface {
	// Create persists the order header and returns the generated order id.
	Create(ctx context.Context, order domain.Order) (int64, error)
	ListByUserID(ctx context.Context, userID int64) ([]domain.Order, error)
	// GetByID returns (nil, nil) when no such order exists.
	GetByID(ctx context.Context, orderID int64) (*domain.Order, error)
	ListAll(ctx context.Context) ([]domain.Order, error)
}

type LineItemStore interface {
	Create(ctx context.Context, orderID int64, item domain.OrderLineItem) error
	ListByOrderID(ctx context.Context, orderID int64) ([]domain.OrderLineItem, error)
}

type JobStore interface {
	ListOpen(ctx context.Context) ([]domain.Job, error)
	// GetByID returns (nil, nil) when no such job exists.
	GetByID(ctx context.Context, jobID int64) (*domain.Job, error)
}

type JobApplicationStore interface {
	Create(ctx context.Context, application *domain.JobApplication) error
	ListAll(ctx context.Context) ([]domain.JobApplication, error)
}

type SalesInquiryStore interface {
	Create(ctx context.Context, inquiry *domain.SalesInquiry) error
	ListAll(ctx context.Context) ([]domain.SalesInquiry, error)
}

type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value interface{}) error
	DeleteByPrefix(ctx context.Context, prefix string) error
	Ping(ctx context.Context) error
}
