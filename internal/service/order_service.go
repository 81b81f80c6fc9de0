package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"go-parts-store/internal/apperr"
	"go-parts-store/internal/model"
	"go-parts-store/internal/repository"
	"go-parts-store/internal/ws"
	"go-parts-store/pkg/metrics"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderService interface {
	Checkout(req *CheckoutRequest) (*model.Order, error)
	ListByUser(userID uuid.UUID) ([]model.Order, error)
	ListAll() ([]model.Order, error)
	GetByID(id uuid.UUID) (*model.Order, error)
	// UpdateStatus moves an order along its lifecycle
	// (PENDING, PAID, SHIPPED, CANCELLED)
	UpdateStatus(id uuid.UUID, status model.OrderStatus) (*model.Order, error)
	// BulkDelete removes the given orders (or all of them) together with
	// their item rows, in one transaction, and returns how many orders
	// were deleted.
	BulkDelete(req *BulkDeleteRequest) (int64, error)
}

type CheckoutRequest struct {
	UserID uuid.UUID `json:"userId" validate:"uuid_required"`
	Notes  string    `json:"notes"`
}

type BulkDeleteRequest struct {
	OrderIDs  []uuid.UUID `json:"orderIds"`
	DeleteAll bool        `json:"deleteAll"`
}

type orderService struct {
	tx          repository.TxManager
	orderRepo   repository.OrderRepository
	cartRepo    repository.CartRepository
	userRepo    repository.UserRepository
	productRepo repository.ProductRepository
	hub         *ws.Hub
}

func NewOrderService(
	tx repository.TxManager,
	orderRepo repository.OrderRepository,
	cartRepo repository.CartRepository,
	userRepo repository.UserRepository,
	productRepo repository.ProductRepository,
	hub *ws.Hub,
) OrderService {
	return &orderService{
		tx:          tx,
		orderRepo:   orderRepo,
		cartRepo:    cartRepo,
		userRepo:    userRepo,
		productRepo: productRepo,
		hub:         hub,
	}
}

// orderTotal sums the effective line totals and applies the user discount
func orderTotal(items []model.CartItem, discountPercent *float64) float64 {
	var total float64
	for _, item := range items {
		total += item.EffectiveTotal()
	}
	if discountPercent != nil && *discountPercent > 0 {
		total = total * (1 - *discountPercent/100)
	}
	return total
}

// newOrderNumber builds a human-readable, collision-resistant order number
func newOrderNumber(now time.Time) string {
	suffix := strings.Split(uuid.NewString(), "-")[0]
	return fmt.Sprintf("PS-%s-%s", now.Format("20060102"), strings.ToUpper(suffix))
}

func (s *orderService) Checkout(req *CheckoutRequest) (*model.Order, error) {
	if req.UserID == uuid.Nil {
		return nil, apperr.Validation("userId is required")
	}

	user, err := s.userRepo.FindByID(req.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("user not found")
		}
		return nil, apperr.FromDB(err)
	}

	items, err := s.cartRepo.FindByUser(req.UserID)
	if err != nil {
		return nil, apperr.FromDB(err)
	}
	if len(items) == 0 {
		return nil, apperr.Validation("cart is empty")
	}

	order := &model.Order{
		OrderNumber: newOrderNumber(time.Now()),
		UserID:      req.UserID,
		TotalAmount: orderTotal(items, user.DiscountPercent),
		Status:      model.OrderStatusPending,
		Notes:       req.Notes,
	}
	for _, item := range items {
		unitPrice := item.Price
		if item.SalePrice != nil {
			unitPrice = *item.SalePrice
		}

		// SKU and category come from the catalog; a product deleted since
		// add-to-cart just leaves them blank on the snapshot
		sku, categoryName := "", ""
		if product, err := s.productRepo.FindByID(item.ProductID); err == nil {
			sku = product.SKU
			if product.Category != nil {
				categoryName = product.Category.Name
			}
		}

		order.Items = append(order.Items, model.OrderItem{
			ProductID:    item.ProductID,
			ProductName:  item.ProductName,
			SKU:          sku,
			CategoryName: categoryName,
			Quantity:     item.Quantity,
			UnitPrice:    unitPrice,
			LineTotal:    item.EffectiveTotal(),
		})
	}

	// Order creation and cart clearing commit or roll back together
	err = s.tx.WithinTx(func(tx *gorm.DB) error {
		if err := s.orderRepo.CreateTx(tx, order); err != nil {
			return err
		}
		if _, err := s.cartRepo.DeleteByUserTx(tx, req.UserID); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, apperr.FromDB(err)
	}

	metrics.OrdersCreatedTotal.Inc()
	go s.hub.BroadcastEvent(ws.Event{
		Type: "order_created",
		Data: map[string]interface{}{
			"orderId":     order.ID,
			"orderNumber": order.OrderNumber,
			"userId":      order.UserID,
			"totalAmount": order.TotalAmount,
		},
	})

	return order, nil
}

func (s *orderService) ListByUser(userID uuid.UUID) ([]model.Order, error) {
	if userID == uuid.Nil {
		return nil, apperr.Validation("userId is required")
	}
	orders, err := s.orderRepo.FindByUser(userID)
	if err != nil {
		return nil, apperr.FromDB(err)
	}
	return orders, nil
}

func (s *orderService) ListAll() ([]model.Order, error) {
	orders, err := s.orderRepo.FindAll()
	if err != nil {
		return nil, apperr.FromDB(err)
	}
	return orders, nil
}

func (s *orderService) GetByID(id uuid.UUID) (*model.Order, error) {
	order, err := s.orderRepo.FindByID(id)
	if err != nil {
		return nil, apperr.FromDB(err)
	}
	return order, nil
}

func (s *orderService) UpdateStatus(id uuid.UUID, status model.OrderStatus) (*model.Order, error) {
	if !status.Valid() {
		return nil, apperr.Validation("invalid order status")
	}

	order, err := s.orderRepo.FindByID(id)
	if err != nil {
		return nil, apperr.FromDB(err)
	}

	if err := s.orderRepo.UpdateStatus(id, status); err != nil {
		return nil, apperr.FromDB(err)
	}
	order.Status = status

	go s.hub.BroadcastEvent(ws.Event{
		Type: "order_status_changed",
		Data: map[string]interface{}{
			"orderId":     order.ID,
			"orderNumber": order.OrderNumber,
			"status":      order.Status,
		},
	})

	return order, nil
}

func (s *orderService) BulkDelete(req *BulkDeleteRequest) (int64, error) {
	if !req.DeleteAll && len(req.OrderIDs) == 0 {
		return 0, apperr.Validation("orderIds or deleteAll is required")
	}

	var deleted int64
	err := s.tx.WithinTx(func(tx *gorm.DB) error {
		ids := req.OrderIDs
		if req.DeleteAll {
			var err error
			ids, err = s.orderRepo.AllIDsTx(tx)
			if err != nil {
				return err
			}
		}
		if len(ids) == 0 {
			return nil
		}

		// Children first; the transaction guarantees no orphaned orders
		// survive a failure between the two deletes
		if err := s.orderRepo.DeleteItemsByOrderIDsTx(tx, ids); err != nil {
			return err
		}
		var err error
		deleted, err = s.orderRepo.DeleteByIDsTx(tx, ids)
		return err
	})
	if err != nil {
		return 0, apperr.FromDB(err)
	}

	metrics.OrdersDeletedTotal.Add(float64(deleted))
	return deleted, nil
}
