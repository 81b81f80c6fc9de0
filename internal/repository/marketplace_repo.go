package repository

import (
	"go-parts-store/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MarketplaceRepository interface {
	Create(marketplace *model.Marketplace) error
	FindAll() ([]model.Marketplace, error)
	FindByID(id uuid.UUID) (*model.Marketplace, error)
	Update(marketplace *model.Marketplace) error
	Delete(id uuid.UUID) error
}

type marketplaceRepo struct {
	db *gorm.DB
}

func NewMarketplaceRepo(db *gorm.DB) MarketplaceRepository {
	return &marketplaceRepo{db}
}

func (r *marketplaceRepo) Create(marketplace *model.Marketplace) error {
	return r.db.Create(marketplace).Error
}

func (r *marketplaceRepo) FindAll() ([]model.Marketplace, error) {
	var marketplaces []model.Marketplace
	err := r.db.Order("name ASC").Find(&marketplaces).Error
	return marketplaces, err
}

func (r *marketplaceRepo) FindByID(id uuid.UUID) (*model.Marketplace, error) {
	var marketplace model.Marketplace
	err := r.db.First(&marketplace, "id = ?", id).Error
	return &marketplace, err
}

func (r *marketplaceRepo) Update(marketplace *model.Marketplace) error {
	return r.db.Save(marketplace).Error
}

func (r *marketplaceRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.Marketplace{}, "id = ?", id).Error
}
