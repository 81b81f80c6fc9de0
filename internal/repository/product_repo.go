package repository

import (
	"errors"

	"go-parts-store/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductRepository interface {
	Create(product *model.Product) error
	FindAll(filter model.ProductFilter) ([]model.Product, error)
	FindByID(id uuid.UUID) (*model.Product, error)
	FindBySKU(sku string) (*model.Product, error)
	Update(product *model.Product) error
	Delete(id uuid.UUID) error
	// UpsertBySKU creates the product or updates the existing row with the
	// same SKU. Used by bulk import so re-running a file is safe.
	UpsertBySKU(product *model.Product) error
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) Create(product *model.Product) error {
	return r.db.Create(product).Error
}

func (r *productRepo) FindAll(filter model.ProductFilter) ([]model.Product, error) {
	var products []model.Product
	q := filter.Apply(r.db.Preload("Category"))
	err := q.Order("created_at DESC").Find(&products).Error
	return products, err
}

func (r *productRepo) FindByID(id uuid.UUID) (*model.Product, error) {
	var product model.Product
	err := r.db.Preload("Category").First(&product, "id = ?", id).Error
	return &product, err
}

func (r *productRepo) FindBySKU(sku string) (*model.Product, error) {
	var product model.Product
	err := r.db.First(&product, "sku = ?", sku).Error
	return &product, err
}

func (r *productRepo) Update(product *model.Product) error {
	return r.db.Save(product).Error
}

func (r *productRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.Product{}, "id = ?", id).Error
}

func (r *productRepo) UpsertBySKU(product *model.Product) error {
	var existing model.Product
	err := r.db.First(&existing, "sku = ?", product.SKU).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.Create(product).Error
	}
	if err != nil {
		return err
	}

	existing.Name = product.Name
	existing.Description = product.Description
	existing.Price = product.Price
	existing.SalePrice = product.SalePrice
	existing.Stock = product.Stock
	// Re-importing a SKU reactivates the row; the feed is authoritative
	existing.IsActive = product.IsActive
	if product.CategoryID != nil {
		existing.CategoryID = product.CategoryID
	}
	return r.db.Save(&existing).Error
}
