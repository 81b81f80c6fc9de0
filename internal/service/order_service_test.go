package service

import (
	"testing"
	"time"

	"go-parts-store/internal/apperr"
	"go-parts-store/internal/model"
	"go-parts-store/internal/ws"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestOrderService(
	tx *txManagerMock,
	orderRepo *orderRepoMock,
	cartRepo *cartRepoMock,
	userRepo *userRepoMock,
	productRepo *productRepoMock,
) OrderService {
	hub := ws.NewHub()
	go hub.Run()
	return NewOrderService(tx, orderRepo, cartRepo, userRepo, productRepo, hub)
}

func TestOrderTotal(t *testing.T) {
	sale := 74.99
	items := []model.CartItem{
		{Price: 89.50, SalePrice: &sale, Quantity: 2},
		{Price: 12.99, Quantity: 1},
	}
	for i := range items {
		items[i].RecalculateTotals()
	}

	// Sale price wins where present
	assert.InDelta(t, 2*74.99+12.99, orderTotal(items, nil), 0.001)

	// User discount applies on top
	discount := 10.0
	assert.InDelta(t, (2*74.99+12.99)*0.9, orderTotal(items, &discount), 0.001)
}

func TestNewOrderNumberFormat(t *testing.T) {
	now := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)

	first := newOrderNumber(now)
	second := newOrderNumber(now)

	assert.Contains(t, first, "PS-20250314-")
	assert.NotEqual(t, first, second)
}

func TestBulkDeleteRequiresIDsOrFlag(t *testing.T) {
	tx := new(txManagerMock)
	orderRepo := new(orderRepoMock)

	svc := newTestOrderService(tx, orderRepo, new(cartRepoMock), new(userRepoMock), new(productRepoMock))

	for _, req := range []*BulkDeleteRequest{
		{},
		{OrderIDs: []uuid.UUID{}, DeleteAll: false},
	} {
		_, err := svc.BulkDelete(req)
		require.Error(t, err)
		appErr, ok := err.(*apperr.Error)
		require.True(t, ok)
		assert.Equal(t, 400, appErr.Status())
	}

	tx.AssertNotCalled(t, "WithinTx")
}

func TestBulkDeleteRemovesItemsBeforeOrders(t *testing.T) {
	ids := []uuid.UUID{uuid.New(), uuid.New()}

	tx := new(txManagerMock)
	tx.On("WithinTx").Return(nil)

	orderRepo := new(orderRepoMock)
	orderRepo.On("DeleteItemsByOrderIDsTx", ids).Return(nil)
	orderRepo.On("DeleteByIDsTx", ids).Return(int64(2), nil)

	svc := newTestOrderService(tx, orderRepo, new(cartRepoMock), new(userRepoMock), new(productRepoMock))
	deleted, err := svc.BulkDelete(&BulkDeleteRequest{OrderIDs: ids})

	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)
	assert.Equal(t, []string{"DeleteItems", "DeleteOrders"}, orderRepo.calls)
}

func TestBulkDeleteAllResolvesEveryOrder(t *testing.T) {
	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}

	tx := new(txManagerMock)
	tx.On("WithinTx").Return(nil)

	orderRepo := new(orderRepoMock)
	orderRepo.On("AllIDsTx").Return(ids, nil)
	orderRepo.On("DeleteItemsByOrderIDsTx", ids).Return(nil)
	orderRepo.On("DeleteByIDsTx", ids).Return(int64(3), nil)

	svc := newTestOrderService(tx, orderRepo, new(cartRepoMock), new(userRepoMock), new(productRepoMock))
	deleted, err := svc.BulkDelete(&BulkDeleteRequest{DeleteAll: true})

	require.NoError(t, err)
	assert.Equal(t, int64(3), deleted)
}

func TestBulkDeleteAllWithNoOrdersDeletesNothing(t *testing.T) {
	tx := new(txManagerMock)
	tx.On("WithinTx").Return(nil)

	orderRepo := new(orderRepoMock)
	orderRepo.On("AllIDsTx").Return([]uuid.UUID{}, nil)

	svc := newTestOrderService(tx, orderRepo, new(cartRepoMock), new(userRepoMock), new(productRepoMock))
	deleted, err := svc.BulkDelete(&BulkDeleteRequest{DeleteAll: true})

	require.NoError(t, err)
	assert.Equal(t, int64(0), deleted)
	orderRepo.AssertNotCalled(t, "DeleteItemsByOrderIDsTx")
	orderRepo.AssertNotCalled(t, "DeleteByIDsTx")
}

func TestCheckoutEmptyCartRejected(t *testing.T) {
	userID := uuid.New()
	user := &model.User{Email: "buyer@example.com", IsApproved: true, IsActive: true}
	user.ID = userID

	userRepo := new(userRepoMock)
	userRepo.On("FindByID", userID).Return(user, nil)

	cartRepo := new(cartRepoMock)
	cartRepo.On("FindByUser", userID).Return([]model.CartItem{}, nil)

	tx := new(txManagerMock)
	svc := newTestOrderService(tx, new(orderRepoMock), cartRepo, userRepo, new(productRepoMock))

	_, err := svc.Checkout(&CheckoutRequest{UserID: userID})

	require.Error(t, err)
	appErr, ok := err.(*apperr.Error)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.Status())
	tx.AssertNotCalled(t, "WithinTx")
}

func TestCheckoutCreatesOrderAndClearsCart(t *testing.T) {
	userID := uuid.New()
	productID := uuid.New()

	user := &model.User{Email: "buyer@example.com", IsApproved: true, IsActive: true}
	user.ID = userID

	item := model.CartItem{
		UserID:      userID,
		ProductID:   productID,
		ProductName: "Oil Filter",
		Price:       12.99,
		Quantity:    2,
	}
	item.RecalculateTotals()

	product := &model.Product{SKU: "ENG-0001", Name: "Oil Filter", Price: 12.99}
	product.ID = productID

	userRepo := new(userRepoMock)
	userRepo.On("FindByID", userID).Return(user, nil)

	cartRepo := new(cartRepoMock)
	cartRepo.On("FindByUser", userID).Return([]model.CartItem{item}, nil)
	cartRepo.On("DeleteByUserTx", userID).Return(int64(1), nil)

	productRepo := new(productRepoMock)
	productRepo.On("FindByID", productID).Return(product, nil)

	tx := new(txManagerMock)
	tx.On("WithinTx").Return(nil)

	orderRepo := new(orderRepoMock)
	orderRepo.On("CreateTx", mock.AnythingOfType("*model.Order")).Return(nil)

	svc := newTestOrderService(tx, orderRepo, cartRepo, userRepo, productRepo)
	order, err := svc.Checkout(&CheckoutRequest{UserID: userID, Notes: "leave at the gate"})

	require.NoError(t, err)
	assert.InDelta(t, 2*12.99, order.TotalAmount, 0.001)
	assert.Equal(t, model.OrderStatusPending, order.Status)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "ENG-0001", order.Items[0].SKU)
	assert.Equal(t, 2, order.Items[0].Quantity)
	cartRepo.AssertCalled(t, "DeleteByUserTx", userID)
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	orderRepo := new(orderRepoMock)
	svc := newTestOrderService(new(txManagerMock), orderRepo, new(cartRepoMock), new(userRepoMock), new(productRepoMock))

	_, err := svc.UpdateStatus(uuid.New(), model.OrderStatus("REFUNDED"))

	require.Error(t, err)
	appErr, ok := err.(*apperr.Error)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.Status())
	orderRepo.AssertNotCalled(t, "UpdateStatus")
}

func TestUpdateStatusMarksOrderShipped(t *testing.T) {
	orderID := uuid.New()
	order := &model.Order{OrderNumber: "PS-20250314-AB12", Status: model.OrderStatusPaid}
	order.ID = orderID

	orderRepo := new(orderRepoMock)
	orderRepo.On("FindByID", orderID).Return(order, nil)
	orderRepo.On("UpdateStatus", orderID, model.OrderStatusShipped).Return(nil)

	svc := newTestOrderService(new(txManagerMock), orderRepo, new(cartRepoMock), new(userRepoMock), new(productRepoMock))
	updated, err := svc.UpdateStatus(orderID, model.OrderStatusShipped)

	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusShipped, updated.Status)
	orderRepo.AssertCalled(t, "UpdateStatus", orderID, model.OrderStatusShipped)
}

func TestUpdateStatusMissingOrderIs404(t *testing.T) {
	orderID := uuid.New()

	orderRepo := new(orderRepoMock)
	orderRepo.On("FindByID", orderID).Return(nil, gorm.ErrRecordNotFound)

	svc := newTestOrderService(new(txManagerMock), orderRepo, new(cartRepoMock), new(userRepoMock), new(productRepoMock))
	_, err := svc.UpdateStatus(orderID, model.OrderStatusCancelled)

	require.Error(t, err)
	appErr, ok := err.(*apperr.Error)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.Status())
	orderRepo.AssertNotCalled(t, "UpdateStatus")
}
