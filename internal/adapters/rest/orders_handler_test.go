package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arsicorp/zenith-lab-robotics/internal/application"
	"github.com/arsicorp/zenith-lab-robotics/internal/domain"
	"github.com/arsicorp/zenith-lab-robotics/internal/ports"
	"github.com/arsicorp/zenith-lab-robotics/pkg/auth"
)

type checkoutStores struct {
	carts     *ports.MockCartStore
	profiles  *ports.MockProfileStore
	orders    *ports.MockOrderStore
	lineItems *ports.MockLineItemStore
}

func newCheckoutServer(t *testing.T) (*checkoutStores, http.Handler) {
	t.Helper()
	auth.SetSecret("test-secret")

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	stores := &checkoutStores{
		carts:     ports.NewMockCartStore(ctrl),
		profiles:  ports.NewMockProfileStore(ctrl),
		orders:    ports.NewMockOrderStore(ctrl),
		lineItems: ports.NewMockLineItemStore(ctrl),
	}

	checkout := application.NewCheckoutService(stores.carts, stores.profiles, stores.orders, stores.lineItems)
	orders := application.NewOrderService(stores.orders, stores.lineItems)
	server := NewServer(nil, nil, nil, nil, checkout, orders, nil, nil)
	return stores, server.Routes()
}

func bearerToken(t *testing.T, userID int64, role string) string {
	t.Helper()
	token, err := auth.GenerateToken("tester", userID, role)
	require.NoError(t, err)
	return "Bearer " + token
}

func restrictedCart() domain.Cart {
	cart := domain.NewCart()
	cart.Add(domain.CartItem{
		Product: domain.Product{
			ProductID:        9,
			Name:             "Industrial Welder",
			Price:            1800.00,
			BuyerRequirement: domain.AccountTypeBusiness,
		},
		Quantity: 1,
	})
	return cart
}

func TestCheckoutEndpoint_Success(t *testing.T) {
	stores, router := newCheckoutServer(t)

	cart := domain.NewCart()
	cart.Add(domain.CartItem{
		Product:  domain.Product{ProductID: 1, Name: "Servo Arm", Price: 10.00},
		Quantity: 2,
	})
	profile := &domain.Profile{UserID: 42, Address: "12 Foundry Row", AccountType: domain.AccountTypePersonal}

	stores.carts.EXPECT().GetByUserID(gomock.Any(), int64(42)).Return(cart, nil)
	stores.profiles.EXPECT().GetByUserID(gomock.Any(), int64(42)).Return(profile, nil)
	stores.orders.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(77), nil)
	stores.lineItems.EXPECT().Create(gomock.Any(), int64(77), gomock.Any()).Return(nil)
	stores.carts.EXPECT().ClearCart(gomock.Any(), int64(42)).Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/orders", nil)
	req.Header.Set("Authorization", bearerToken(t, 42, "USER"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var order domain.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &order))
	assert.Equal(t, int64(77), order.OrderID)
	assert.Equal(t, 20.00, order.OrderTotal)
	assert.Len(t, order.LineItems, 1)
}

func TestCheckoutEndpoint_EmptyCart(t *testing.T) {
	stores, router := newCheckoutServer(t)

	stores.carts.EXPECT().GetByUserID(gomock.Any(), int64(42)).Return(domain.NewCart(), nil)

	req := httptest.NewRequest(http.MethodPost, "/orders", nil)
	req.Header.Set("Authorization", bearerToken(t, 42, "USER"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "shopping cart is empty")
}

func TestCheckoutEndpoint_EligibilityDenied(t *testing.T) {
	stores, router := newCheckoutServer(t)

	profile := &domain.Profile{UserID: 42, AccountType: domain.AccountTypePersonal}
	stores.carts.EXPECT().GetByUserID(gomock.Any(), int64(42)).Return(restrictedCart(), nil)
	stores.profiles.EXPECT().GetByUserID(gomock.Any(), int64(42)).Return(profile, nil)

	req := httptest.NewRequest(http.MethodPost, "/orders", nil)
	req.Header.Set("Authorization", bearerToken(t, 42, "USER"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "BUSINESS")
}

func TestCheckoutEndpoint_PersistenceFailure(t *testing.T) {
	stores, router := newCheckoutServer(t)

	cart := domain.NewCart()
	cart.Add(domain.CartItem{Product: domain.Product{ProductID: 1, Price: 10.00}, Quantity: 1})
	profile := &domain.Profile{UserID: 42, AccountType: domain.AccountTypePersonal}

	stores.carts.EXPECT().GetByUserID(gomock.Any(), int64(42)).Return(cart, nil)
	stores.profiles.EXPECT().GetByUserID(gomock.Any(), int64(42)).Return(profile, nil)
	stores.orders.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("connection reset"))

	req := httptest.NewRequest(http.MethodPost, "/orders", nil)
	req.Header.Set("Authorization", bearerToken(t, 42, "USER"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Oops... our bad.")
	assert.NotContains(t, rec.Body.String(), "connection reset")
}

func TestCheckoutEndpoint_MissingToken(t *testing.T) {
	_, router := newCheckoutServer(t)

	req := httptest.NewRequest(http.MethodPost, "/orders", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetOrderEndpoint_ForbiddenForOtherUser(t *testing.T) {
	stores, router := newCheckoutServer(t)

	stores.orders.EXPECT().GetByID(gomock.Any(), int64(7)).
		Return(&domain.Order{OrderID: 7, UserID: 99}, nil)

	req := httptest.NewRequest(http.MethodGet, "/orders/7", nil)
	req.Header.Set("Authorization", bearerToken(t, 42, "USER"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAdminOrdersEndpoint_RequiresAdminRole(t *testing.T) {
	stores, router := newCheckoutServer(t)

	req := httptest.NewRequest(http.MethodGet, "/admin/orders", nil)
	req.Header.Set("Authorization", bearerToken(t, 42, "USER"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	stores.orders.EXPECT().ListAll(gomock.Any()).Return([]domain.Order{}, nil)
	req = httptest.NewRequest(http.MethodGet, "/admin/orders", nil)
	req.Header.Set("Authorization", bearerToken(t, 1, "ADMIN"))
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
