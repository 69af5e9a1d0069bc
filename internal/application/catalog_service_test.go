package application

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arsicorp/zenith-lab-robotics/internal/domain"
	"github.com/arsicorp/zenith-lab-robotics/internal/ports"
)

func TestCatalogList_CacheMiss(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	catalog := ports.NewMockCatalogStore(ctrl)
	cache := ports.NewMockCache(ctrl)

	products := []domain.Product{
		{ProductID: 1, Name: "Servo Arm", Price: 10.00},
		{ProductID: 2, Name: "Gripper Pad", Price: 5.00},
	}

	cache.EXPECT().Get(gomock.Any(), "products:list").Return(nil, errors.New("cache miss"))
	catalog.EXPECT().List(gomock.Any()).Return(products, nil)
	cache.EXPECT().Set(gomock.Any(), "products:list", products).Return(nil)

	svc := NewCatalogService(catalog, cache)
	got, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Equal(t, products, got)
}

func TestCatalogList_CacheHitSkipsStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	catalog := ports.NewMockCatalogStore(ctrl)
	cache := ports.NewMockCache(ctrl)

	products := []domain.Product{{ProductID: 1, Name: "Servo Arm", Price: 10.00}}
	data, err := json.Marshal(products)
	require.NoError(t, err)

	cache.EXPECT().Get(gomock.Any(), "products:list").Return(data, nil)

	svc := NewCatalogService(catalog, cache)
	got, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Equal(t, products, got)
}

func TestCatalogList_CacheSetFailureIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	catalog := ports.NewMockCatalogStore(ctrl)
	cache := ports.NewMockCache(ctrl)

	products := []domain.Product{{ProductID: 1, Name: "Servo Arm"}}

	cache.EXPECT().Get(gomock.Any(), "products:list").Return(nil, errors.New("cache down"))
	catalog.EXPECT().List(gomock.Any()).Return(products, nil)
	cache.EXPECT().Set(gomock.Any(), "products:list", products).Return(errors.New("cache down"))

	svc := NewCatalogService(catalog, cache)
	got, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Equal(t, products, got)
}

func TestCatalogGet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	catalog := ports.NewMockCatalogStore(ctrl)
	cache := ports.NewMockCache(ctrl)

	product := &domain.Product{ProductID: 7, Name: "Lab Autoclave", Price: 950.00, BuyerRequirement: domain.AccountTypeMedical}

	cache.EXPECT().Get(gomock.Any(), "products:7").Return(nil, errors.New("cache miss"))
	catalog.EXPECT().GetByID(gomock.Any(), int64(7)).Return(product, nil)
	cache.EXPECT().Set(gomock.Any(), "products:7", product).Return(nil)

	svc := NewCatalogService(catalog, cache)
	got, err := svc.Get(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, product, got)
}

func TestCatalogGet_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	catalog := ports.NewMockCatalogStore(ctrl)
	cache := ports.NewMockCache(ctrl)

	cache.EXPECT().Get(gomock.Any(), "products:99").Return(nil, errors.New("cache miss"))
	catalog.EXPECT().GetByID(gomock.Any(), int64(99)).Return(nil, nil)

	svc := NewCatalogService(catalog, cache)
	got, err := svc.Get(context.Background(), 99)

	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCatalog_NilCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	catalog := ports.NewMockCatalogStore(ctrl)
	catalog.EXPECT().List(gomock.Any()).Return([]domain.Product{}, nil)

	svc := NewCatalogService(catalog, nil)
	_, err := svc.List(context.Background())
	assert.NoError(t, err)
}
