package application

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arsicorp/zenith-lab-robotics/internal/domain"
	"github.com/arsicorp/zenith-lab-robotics/internal/ports"
)

func TestCartAddItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	carts := ports.NewMockCartStore(ctrl)
	catalog := ports.NewMockCatalogStore(ctrl)

	product := &domain.Product{ProductID: 1, Name: "Servo Arm", Price: 10.00}
	updated := domain.NewCart()
	updated.Add(domain.CartItem{Product: *product, Quantity: 1})

	catalog.EXPECT().GetByID(gomock.Any(), int64(1)).Return(product, nil)
	carts.EXPECT().AddItem(gomock.Any(), int64(42), int64(1)).Return(nil)
	carts.EXPECT().GetByUserID(gomock.Any(), int64(42)).Return(updated, nil)

	svc := NewCartService(carts, catalog)
	cart, err := svc.AddItem(context.Background(), 42, 1)

	require.NoError(t, err)
	assert.Len(t, cart.Items, 1)
	assert.Equal(t, int32(1), cart.Items[1].Quantity)
}

func TestCartAddItem_UnknownProduct(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	carts := ports.NewMockCartStore(ctrl)
	catalog := ports.NewMockCatalogStore(ctrl)

	catalog.EXPECT().GetByID(gomock.Any(), int64(99)).Return(nil, nil)

	svc := NewCartService(carts, catalog)
	_, err := svc.AddItem(context.Background(), 42, 99)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCartUpdateItem_InvalidQuantity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewCartService(ports.NewMockCartStore(ctrl), ports.NewMockCatalogStore(ctrl))

	_, err := svc.UpdateItem(context.Background(), 42, 1, 0)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.UpdateItem(context.Background(), 42, 1, -3)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCartUpdateItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	carts := ports.NewMockCartStore(ctrl)
	catalog := ports.NewMockCatalogStore(ctrl)

	product := &domain.Product{ProductID: 1, Name: "Servo Arm", Price: 10.00}
	updated := domain.NewCart()
	updated.Add(domain.CartItem{Product: *product, Quantity: 5})

	catalog.EXPECT().GetByID(gomock.Any(), int64(1)).Return(product, nil)
	carts.EXPECT().UpdateItem(gomock.Any(), int64(42), int64(1), int32(5)).Return(nil)
	carts.EXPECT().GetByUserID(gomock.Any(), int64(42)).Return(updated, nil)

	svc := NewCartService(carts, catalog)
	cart, err := svc.UpdateItem(context.Background(), 42, 1, 5)

	require.NoError(t, err)
	assert.Equal(t, int32(5), cart.Items[1].Quantity)
}

func TestCartRemoveItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	carts := ports.NewMockCartStore(ctrl)
	catalog := ports.NewMockCatalogStore(ctrl)

	carts.EXPECT().RemoveItem(gomock.Any(), int64(42), int64(1)).Return(nil)
	carts.EXPECT().GetByUserID(gomock.Any(), int64(42)).Return(domain.NewCart(), nil)

	svc := NewCartService(carts, catalog)
	cart, err := svc.RemoveItem(context.Background(), 42, 1)

	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestCartClear(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	carts := ports.NewMockCartStore(ctrl)
	carts.EXPECT().ClearCart(gomock.Any(), int64(42)).Return(nil)

	svc := NewCartService(carts, ports.NewMockCatalogStore(ctrl))
	assert.NoError(t, svc.Clear(context.Background(), 42))
}
