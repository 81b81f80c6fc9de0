package service

import (
	"errors"

	"go-parts-store/internal/apperr"
	"go-parts-store/internal/model"
	"go-parts-store/internal/repository"
	"go-parts-store/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CatalogService owns products and categories
type CatalogService interface {
	ListProducts(filter model.ProductFilter) ([]model.Product, error)
	GetProduct(id uuid.UUID) (*model.Product, error)
	CreateProduct(req *model.Product) (*model.Product, error)
	UpdateProduct(id uuid.UUID, req *UpdateProductRequest) (*model.Product, error)
	DeleteProduct(id uuid.UUID) error

	ListCategories() ([]model.Category, error)
	GetCategory(id uuid.UUID) (*model.Category, error)
	CreateCategory(req *model.Category) (*model.Category, error)
	UpdateCategory(id uuid.UUID, req *model.Category) (*model.Category, error)
	DeleteCategory(id uuid.UUID) error
}

// UpdateProductRequest carries a partial update; nil fields stay untouched
type UpdateProductRequest struct {
	SKU         *string    `json:"sku"`
	Name        *string    `json:"name"`
	Description *string    `json:"description"`
	Price       *float64   `json:"price"`
	SalePrice   *float64   `json:"salePrice"`
	Images      []string   `json:"images"`
	Stock       *int       `json:"stock"`
	IsActive    *bool      `json:"isActive"`
	IsFeatured  *bool      `json:"isFeatured"`
	CategoryID  *uuid.UUID `json:"categoryId"`
}

type catalogService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

func NewCatalogService(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository) CatalogService {
	return &catalogService{productRepo: productRepo, categoryRepo: categoryRepo}
}

// checkSalePrice enforces that a sale price never exceeds the regular price
func checkSalePrice(price float64, salePrice *float64) error {
	if salePrice != nil && *salePrice > price {
		return apperr.Validation("salePrice must not exceed price")
	}
	return nil
}

func (s *catalogService) ListProducts(filter model.ProductFilter) ([]model.Product, error) {
	products, err := s.productRepo.FindAll(filter)
	if err != nil {
		return nil, apperr.FromDB(err)
	}
	return products, nil
}

func (s *catalogService) GetProduct(id uuid.UUID) (*model.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		return nil, apperr.FromDB(err)
	}
	return product, nil
}

func (s *catalogService) CreateProduct(req *model.Product) (*model.Product, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.Validation(validator.FormatErrors(errs))
	}
	if err := checkSalePrice(req.Price, req.SalePrice); err != nil {
		return nil, err
	}

	existing, err := s.productRepo.FindBySKU(req.SKU)
	if err == nil && existing.ID != uuid.Nil {
		return nil, apperr.Validation("SKU already exists")
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.FromDB(err)
	}

	if err := s.productRepo.Create(req); err != nil {
		return nil, apperr.FromDB(err)
	}
	return req, nil
}

func (s *catalogService) UpdateProduct(id uuid.UUID, req *UpdateProductRequest) (*model.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		return nil, apperr.FromDB(err)
	}

	if req.SKU != nil {
		product.SKU = *req.SKU
	}
	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.SalePrice != nil {
		product.SalePrice = req.SalePrice
	}
	if req.Images != nil {
		product.Images = req.Images
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}
	if req.IsFeatured != nil {
		product.IsFeatured = *req.IsFeatured
	}
	if req.CategoryID != nil {
		product.CategoryID = req.CategoryID
	}

	if err := checkSalePrice(product.Price, product.SalePrice); err != nil {
		return nil, err
	}

	if err := s.productRepo.Update(product); err != nil {
		return nil, apperr.FromDB(err)
	}
	return product, nil
}

func (s *catalogService) DeleteProduct(id uuid.UUID) error {
	if _, err := s.productRepo.FindByID(id); err != nil {
		return apperr.FromDB(err)
	}
	if err := s.productRepo.Delete(id); err != nil {
		return apperr.FromDB(err)
	}
	return nil
}

func (s *catalogService) ListCategories() ([]model.Category, error) {
	categories, err := s.categoryRepo.FindAll()
	if err != nil {
		return nil, apperr.FromDB(err)
	}
	return categories, nil
}

func (s *catalogService) GetCategory(id uuid.UUID) (*model.Category, error) {
	category, err := s.categoryRepo.FindByID(id)
	if err != nil {
		return nil, apperr.FromDB(err)
	}
	return category, nil
}

func (s *catalogService) CreateCategory(req *model.Category) (*model.Category, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.Validation(validator.FormatErrors(errs))
	}
	if err := s.categoryRepo.Create(req); err != nil {
		return nil, apperr.FromDB(err)
	}
	return req, nil
}

func (s *catalogService) UpdateCategory(id uuid.UUID, req *model.Category) (*model.Category, error) {
	category, err := s.categoryRepo.FindByID(id)
	if err != nil {
		return nil, apperr.FromDB(err)
	}

	if req.Name != "" {
		category.Name = req.Name
	}
	if req.Description != "" {
		category.Description = req.Description
	}
	if req.Image != "" {
		category.Image = req.Image
	}

	if err := s.categoryRepo.Update(category); err != nil {
		return nil, apperr.FromDB(err)
	}
	return category, nil
}

func (s *catalogService) DeleteCategory(id uuid.UUID) error {
	if _, err := s.categoryRepo.FindByID(id); err != nil {
		return apperr.FromDB(err)
	}
	if err := s.categoryRepo.Delete(id); err != nil {
		return apperr.FromDB(err)
	}
	return nil
}
