package repository

import (
	"go-parts-store/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderRepository interface {
	CreateTx(tx *gorm.DB, order *model.Order) error
	FindByID(id uuid.UUID) (*model.Order, error)
	FindByUser(userID uuid.UUID) ([]model.Order, error)
	FindAll() ([]model.Order, error)
	UpdateStatus(id uuid.UUID, status model.OrderStatus) error
	// AllIDsTx resolves every order id inside the transaction, for deleteAll
	AllIDsTx(tx *gorm.DB) ([]uuid.UUID, error)
	// DeleteItemsByOrderIDsTx removes the child rows. Callers must run this
	// before DeleteByIDsTx, inside the same transaction.
	DeleteItemsByOrderIDsTx(tx *gorm.DB, orderIDs []uuid.UUID) error
	// DeleteByIDsTx removes the parent rows and reports how many went away
	DeleteByIDsTx(tx *gorm.DB, orderIDs []uuid.UUID) (int64, error)
}

type orderRepo struct {
	db *gorm.DB
}

func NewOrderRepo(db *gorm.DB) OrderRepository {
	return &orderRepo{db}
}

func (r *orderRepo) CreateTx(tx *gorm.DB, order *model.Order) error {
	return tx.Create(order).Error
}

func (r *orderRepo) FindByID(id uuid.UUID) (*model.Order, error) {
	var order model.Order
	err := r.db.Preload("Items").First(&order, "id = ?", id).Error
	return &order, err
}

func (r *orderRepo) FindByUser(userID uuid.UUID) ([]model.Order, error) {
	var orders []model.Order
	err := r.db.Preload("Items").Where("user_id = ?", userID).Order("created_at DESC").Find(&orders).Error
	return orders, err
}

func (r *orderRepo) FindAll() ([]model.Order, error) {
	var orders []model.Order
	err := r.db.Preload("Items").Order("created_at DESC").Find(&orders).Error
	return orders, err
}

func (r *orderRepo) UpdateStatus(id uuid.UUID, status model.OrderStatus) error {
	return r.db.Model(&model.Order{}).Where("id = ?", id).Update("status", status).Error
}

func (r *orderRepo) AllIDsTx(tx *gorm.DB) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := tx.Model(&model.Order{}).Pluck("id", &ids).Error
	return ids, err
}

func (r *orderRepo) DeleteItemsByOrderIDsTx(tx *gorm.DB, orderIDs []uuid.UUID) error {
	return tx.Where("order_id IN ?", orderIDs).Delete(&model.OrderItem{}).Error
}

func (r *orderRepo) DeleteByIDsTx(tx *gorm.DB, orderIDs []uuid.UUID) (int64, error) {
	res := tx.Where("id IN ?", orderIDs).Delete(&model.Order{})
	return res.RowsAffected, res.Error
}
