package service

import (
	"testing"

	"go-parts-store/internal/apperr"
	"go-parts-store/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestClearReturnsDeletedCount(t *testing.T) {
	userID := uuid.New()

	cartRepo := new(cartRepoMock)
	cartRepo.On("DeleteByUser", userID).Return(int64(2), nil)

	svc := NewCartService(cartRepo, new(productRepoMock))
	cleared, err := svc.Clear(userID)

	require.NoError(t, err)
	assert.Equal(t, int64(2), cleared)
	cartRepo.AssertExpectations(t)
}

func TestClearEmptyCartIsNotAnError(t *testing.T) {
	userID := uuid.New()

	cartRepo := new(cartRepoMock)
	cartRepo.On("DeleteByUser", userID).Return(int64(0), nil)

	svc := NewCartService(cartRepo, new(productRepoMock))
	cleared, err := svc.Clear(userID)

	require.NoError(t, err)
	assert.Equal(t, int64(0), cleared)
}

func TestClearWithoutUserIDIsValidationError(t *testing.T) {
	cartRepo := new(cartRepoMock)

	svc := NewCartService(cartRepo, new(productRepoMock))
	_, err := svc.Clear(uuid.Nil)

	require.Error(t, err)
	appErr, ok := err.(*apperr.Error)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.Status())
	cartRepo.AssertNotCalled(t, "DeleteByUser")
}

func TestAddItemSnapshotsProduct(t *testing.T) {
	userID := uuid.New()
	sale := 74.99
	product := &model.Product{
		Name:      "Timing Belt Kit",
		Price:     89.50,
		SalePrice: &sale,
		Images:    []string{"/uploads/belt.jpg"},
		Stock:     35,
		IsActive:  true,
	}
	product.ID = uuid.New()

	productRepo := new(productRepoMock)
	productRepo.On("FindByID", product.ID).Return(product, nil)

	cartRepo := new(cartRepoMock)
	cartRepo.On("FindByUserAndProduct", userID, product.ID).Return(nil, gorm.ErrRecordNotFound)
	cartRepo.On("Create", mock.AnythingOfType("*model.CartItem")).Return(nil)

	svc := NewCartService(cartRepo, productRepo)
	item, err := svc.AddItem(&AddCartItemRequest{UserID: userID, ProductID: product.ID, Quantity: 2})

	require.NoError(t, err)
	assert.Equal(t, "Timing Belt Kit", item.ProductName)
	assert.Equal(t, 89.50, item.Price)
	assert.Equal(t, "/uploads/belt.jpg", item.Image)
	assert.Equal(t, 2*89.50, item.TotalPrice)
	require.NotNil(t, item.TotalSalePrice)
	assert.InDelta(t, 2*74.99, *item.TotalSalePrice, 0.001)
}

func TestAddItemMergesExistingRow(t *testing.T) {
	userID := uuid.New()
	product := &model.Product{Name: "Oil Filter", Price: 12.99, IsActive: true}
	product.ID = uuid.New()

	existing := &model.CartItem{
		UserID:      userID,
		ProductID:   product.ID,
		ProductName: product.Name,
		Price:       product.Price,
		Quantity:    1,
	}
	existing.RecalculateTotals()

	productRepo := new(productRepoMock)
	productRepo.On("FindByID", product.ID).Return(product, nil)

	cartRepo := new(cartRepoMock)
	cartRepo.On("FindByUserAndProduct", userID, product.ID).Return(existing, nil)
	cartRepo.On("Update", existing).Return(nil)

	svc := NewCartService(cartRepo, productRepo)
	item, err := svc.AddItem(&AddCartItemRequest{UserID: userID, ProductID: product.ID, Quantity: 3})

	require.NoError(t, err)
	assert.Equal(t, 4, item.Quantity)
	assert.InDelta(t, 4*12.99, item.TotalPrice, 0.001)
	cartRepo.AssertNotCalled(t, "Create")
}

func TestAddItemInactiveProductRejected(t *testing.T) {
	userID := uuid.New()
	product := &model.Product{Name: "Discontinued", Price: 10, IsActive: false}
	product.ID = uuid.New()

	productRepo := new(productRepoMock)
	productRepo.On("FindByID", product.ID).Return(product, nil)

	svc := NewCartService(new(cartRepoMock), productRepo)
	_, err := svc.AddItem(&AddCartItemRequest{UserID: userID, ProductID: product.ID, Quantity: 1})

	require.Error(t, err)
	appErr, ok := err.(*apperr.Error)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.Status())
}

func TestUpdateQuantityRecomputesTotals(t *testing.T) {
	item := &model.CartItem{ProductName: "Brake Rotor", Price: 62.75, Quantity: 1}
	item.ID = uuid.New()
	item.RecalculateTotals()

	cartRepo := new(cartRepoMock)
	cartRepo.On("FindByID", item.ID).Return(item, nil)
	cartRepo.On("Update", item).Return(nil)

	svc := NewCartService(cartRepo, new(productRepoMock))
	updated, err := svc.UpdateQuantity(item.ID, 3)

	require.NoError(t, err)
	assert.Equal(t, 3, updated.Quantity)
	assert.InDelta(t, 3*62.75, updated.TotalPrice, 0.001)
}

func TestUpdateQuantityRejectsNonPositive(t *testing.T) {
	svc := NewCartService(new(cartRepoMock), new(productRepoMock))

	for _, qty := range []int{0, -1} {
		_, err := svc.UpdateQuantity(uuid.New(), qty)
		require.Error(t, err)
		appErr, ok := err.(*apperr.Error)
		require.True(t, ok)
		assert.Equal(t, 400, appErr.Status())
	}
}
