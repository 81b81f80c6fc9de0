package repository

import (
	"go-parts-store/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ImportJobRepository interface {
	Create(job *model.ImportJob) error
	FindAll() ([]model.ImportJob, error)
	FindByID(id uuid.UUID) (*model.ImportJob, error)
	Update(job *model.ImportJob) error
}

type importJobRepo struct {
	db *gorm.DB
}

func NewImportJobRepo(db *gorm.DB) ImportJobRepository {
	return &importJobRepo{db}
}

func (r *importJobRepo) Create(job *model.ImportJob) error {
	return r.db.Create(job).Error
}

func (r *importJobRepo) FindAll() ([]model.ImportJob, error) {
	var jobs []model.ImportJob
	err := r.db.Order("created_at DESC").Find(&jobs).Error
	return jobs, err
}

func (r *importJobRepo) FindByID(id uuid.UUID) (*model.ImportJob, error) {
	var job model.ImportJob
	err := r.db.First(&job, "id = ?", id).Error
	return &job, err
}

func (r *importJobRepo) Update(job *model.ImportJob) error {
	return r.db.Save(job).Error
}
