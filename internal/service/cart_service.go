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

type CartService interface {
	ListItems(userID uuid.UUID) ([]model.CartItem, error)
	AddItem(req *AddCartItemRequest) (*model.CartItem, error)
	UpdateQuantity(itemID uuid.UUID, quantity int) (*model.CartItem, error)
	RemoveItem(itemID uuid.UUID) error
	// Clear removes every row owned by the user and returns how many were
	// there. Clearing an already-empty cart returns 0 and succeeds.
	Clear(userID uuid.UUID) (int64, error)
}

type AddCartItemRequest struct {
	UserID    uuid.UUID `json:"userId" validate:"uuid_required"`
	ProductID uuid.UUID `json:"productId" validate:"uuid_required"`
	Quantity  int       `json:"quantity" validate:"required,gt=0"`
}

type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository) CartService {
	return &cartService{cartRepo: cartRepo, productRepo: productRepo}
}

func (s *cartService) ListItems(userID uuid.UUID) ([]model.CartItem, error) {
	if userID == uuid.Nil {
		return nil, apperr.Validation("userId is required")
	}
	items, err := s.cartRepo.FindByUser(userID)
	if err != nil {
		return nil, apperr.FromDB(err)
	}
	return items, nil
}

func (s *cartService) AddItem(req *AddCartItemRequest) (*model.CartItem, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.Validation(validator.FormatErrors(errs))
	}

	product, err := s.productRepo.FindByID(req.ProductID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("product not found")
		}
		return nil, apperr.FromDB(err)
	}
	if !product.IsActive {
		return nil, apperr.Validation("product is not available")
	}

	// Same product already in the cart: merge quantities instead of a
	// second row
	existing, err := s.cartRepo.FindByUserAndProduct(req.UserID, req.ProductID)
	if err == nil {
		existing.Quantity += req.Quantity
		existing.RecalculateTotals()
		if err := s.cartRepo.Update(existing); err != nil {
			return nil, apperr.FromDB(err)
		}
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.FromDB(err)
	}

	image := ""
	if len(product.Images) > 0 {
		image = product.Images[0]
	}

	item := &model.CartItem{
		UserID:      req.UserID,
		ProductID:   product.ID,
		ProductName: product.Name,
		Price:       product.Price,
		SalePrice:   product.SalePrice,
		Image:       image,
		Stock:       product.Stock,
		Quantity:    req.Quantity,
	}
	item.RecalculateTotals()

	if err := s.cartRepo.Create(item); err != nil {
		return nil, apperr.FromDB(err)
	}
	return item, nil
}

func (s *cartService) UpdateQuantity(itemID uuid.UUID, quantity int) (*model.CartItem, error) {
	if quantity <= 0 {
		return nil, apperr.Validation("quantity must be greater than zero")
	}

	item, err := s.cartRepo.FindByID(itemID)
	if err != nil {
		return nil, apperr.FromDB(err)
	}

	item.Quantity = quantity
	item.RecalculateTotals()
	if err := s.cartRepo.Update(item); err != nil {
		return nil, apperr.FromDB(err)
	}
	return item, nil
}

func (s *cartService) RemoveItem(itemID uuid.UUID) error {
	if _, err := s.cartRepo.FindByID(itemID); err != nil {
		return apperr.FromDB(err)
	}
	if err := s.cartRepo.Delete(itemID); err != nil {
		return apperr.FromDB(err)
	}
	return nil
}

func (s *cartService) Clear(userID uuid.UUID) (int64, error) {
	if userID == uuid.Nil {
		return 0, apperr.Validation("userId is required")
	}
	cleared, err := s.cartRepo.DeleteByUser(userID)
	if err != nil {
		return 0, apperr.FromDB(err)
	}
	return cleared, nil
}
