package repository

import (
	"go-parts-store/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CartRepository interface {
	FindByUser(userID uuid.UUID) ([]model.CartItem, error)
	FindByID(id uuid.UUID) (*model.CartItem, error)
	FindByUserAndProduct(userID, productID uuid.UUID) (*model.CartItem, error)
	Create(item *model.CartItem) error
	Update(item *model.CartItem) error
	Delete(id uuid.UUID) error
	// DeleteByUser removes every row owned by the user and reports how many
	// existed. Zero rows is a success, not an error.
	DeleteByUser(userID uuid.UUID) (int64, error)
	// DeleteByUserTx is DeleteByUser running inside a caller-owned
	// transaction, used by checkout.
	DeleteByUserTx(tx *gorm.DB, userID uuid.UUID) (int64, error)
}

type cartRepo struct {
	db *gorm.DB
}

func NewCartRepo(db *gorm.DB) CartRepository {
	return &cartRepo{db}
}

func (r *cartRepo) FindByUser(userID uuid.UUID) ([]model.CartItem, error) {
	var items []model.CartItem
	err := r.db.Where("user_id = ?", userID).Order("created_at ASC").Find(&items).Error
	return items, err
}

func (r *cartRepo) FindByID(id uuid.UUID) (*model.CartItem, error) {
	var item model.CartItem
	err := r.db.First(&item, "id = ?", id).Error
	return &item, err
}

func (r *cartRepo) FindByUserAndProduct(userID, productID uuid.UUID) (*model.CartItem, error) {
	var item model.CartItem
	err := r.db.First(&item, "user_id = ? AND product_id = ?", userID, productID).Error
	return &item, err
}

func (r *cartRepo) Create(item *model.CartItem) error {
	return r.db.Create(item).Error
}

func (r *cartRepo) Update(item *model.CartItem) error {
	return r.db.Save(item).Error
}

func (r *cartRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.CartItem{}, "id = ?", id).Error
}

func (r *cartRepo) DeleteByUser(userID uuid.UUID) (int64, error) {
	return r.DeleteByUserTx(r.db, userID)
}

func (r *cartRepo) DeleteByUserTx(tx *gorm.DB, userID uuid.UUID) (int64, error) {
	res := tx.Where("user_id = ?", userID).Delete(&model.CartItem{})
	return res.RowsAffected, res.Error
}
