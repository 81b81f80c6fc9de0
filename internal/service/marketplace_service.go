package service

import (
	"go-parts-store/internal/apperr"
	"go-parts-store/internal/model"
	"go-parts-store/internal/repository"
	"go-parts-store/pkg/validator"

	"github.com/google/uuid"
)

type MarketplaceService interface {
	List() ([]model.Marketplace, error)
	Get(id uuid.UUID) (*model.Marketplace, error)
	Create(req *model.Marketplace) (*model.Marketplace, error)
	Update(id uuid.UUID, req *UpdateMarketplaceRequest) (*model.Marketplace, error)
	Delete(id uuid.UUID) error
}

// UpdateMarketplaceRequest carries a partial update; nil fields stay untouched
type UpdateMarketplaceRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	URL         *string `json:"url"`
	IsActive    *bool   `json:"isActive"`
}

type marketplaceService struct {
	repo repository.MarketplaceRepository
}

func NewMarketplaceService(repo repository.MarketplaceRepository) MarketplaceService {
	return &marketplaceService{repo: repo}
}

func (s *marketplaceService) List() ([]model.Marketplace, error) {
	marketplaces, err := s.repo.FindAll()
	if err != nil {
		return nil, apperr.FromDB(err)
	}
	return marketplaces, nil
}

func (s *marketplaceService) Get(id uuid.UUID) (*model.Marketplace, error) {
	marketplace, err := s.repo.FindByID(id)
	if err != nil {
		return nil, apperr.FromDB(err)
	}
	return marketplace, nil
}

func (s *marketplaceService) Create(req *model.Marketplace) (*model.Marketplace, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.Validation(validator.FormatErrors(errs))
	}
	if err := s.repo.Create(req); err != nil {
		return nil, apperr.FromDB(err)
	}
	return req, nil
}

func (s *marketplaceService) Update(id uuid.UUID, req *UpdateMarketplaceRequest) (*model.Marketplace, error) {
	marketplace, err := s.repo.FindByID(id)
	if err != nil {
		return nil, apperr.FromDB(err)
	}

	if req.Name != nil {
		marketplace.Name = *req.Name
	}
	if req.Description != nil {
		marketplace.Description = *req.Description
	}
	if req.URL != nil {
		marketplace.URL = *req.URL
	}
	if req.IsActive != nil {
		marketplace.IsActive = *req.IsActive
	}

	if err := s.repo.Update(marketplace); err != nil {
		return nil, apperr.FromDB(err)
	}
	return marketplace, nil
}

func (s *marketplaceService) Delete(id uuid.UUID) error {
	if _, err := s.repo.FindByID(id); err != nil {
		return apperr.FromDB(err)
	}
	if err := s.repo.Delete(id); err != nil {
		return apperr.FromDB(err)
	}
	return nil
}
