package service

import (
	"go-parts-store/internal/apperr"
	"go-parts-store/internal/model"
	"go-parts-store/internal/repository"

	"github.com/google/uuid"
)

// UserService covers the admin back-office view of accounts
type UserService interface {
	List() ([]model.UserResponse, error)
	Get(id uuid.UUID) (*model.UserResponse, error)
	Update(id uuid.UUID, req *UpdateUserRequest) (*model.UserResponse, error)
	SetApproval(id uuid.UUID, approved bool) (*model.UserResponse, error)
	Delete(id uuid.UUID) error
}

// UpdateUserRequest carries a partial profile update; nil fields stay untouched
type UpdateUserRequest struct {
	FullName        *string  `json:"fullName"`
	Address         *string  `json:"address"`
	PhoneNumber     *string  `json:"phoneNumber"`
	IsAdmin         *bool    `json:"isAdmin"`
	IsActive        *bool    `json:"isActive"`
	DiscountPercent *float64 `json:"discountPercent"`
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) List() ([]model.UserResponse, error) {
	users, err := s.userRepo.FindAll()
	if err != nil {
		return nil, apperr.FromDB(err)
	}
	responses := make([]model.UserResponse, len(users))
	for i, u := range users {
		responses[i] = u.ToResponse()
	}
	return responses, nil
}

func (s *userService) Get(id uuid.UUID) (*model.UserResponse, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, apperr.FromDB(err)
	}
	resp := user.ToResponse()
	return &resp, nil
}

func (s *userService) Update(id uuid.UUID, req *UpdateUserRequest) (*model.UserResponse, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, apperr.FromDB(err)
	}

	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.Address != nil {
		user.Address = *req.Address
	}
	if req.PhoneNumber != nil {
		user.PhoneNumber = *req.PhoneNumber
	}
	if req.IsAdmin != nil {
		user.IsAdmin = *req.IsAdmin
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	if req.DiscountPercent != nil {
		if *req.DiscountPercent < 0 || *req.DiscountPercent > 100 {
			return nil, apperr.Validation("discountPercent must be between 0 and 100")
		}
		user.DiscountPercent = req.DiscountPercent
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, apperr.FromDB(err)
	}
	resp := user.ToResponse()
	return &resp, nil
}

func (s *userService) SetApproval(id uuid.UUID, approved bool) (*model.UserResponse, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, apperr.FromDB(err)
	}

	if err := s.userRepo.SetApproval(id, approved); err != nil {
		return nil, apperr.FromDB(err)
	}

	user.IsApproved = approved
	resp := user.ToResponse()
	return &resp, nil
}

func (s *userService) Delete(id uuid.UUID) error {
	if _, err := s.userRepo.FindByID(id); err != nil {
		return apperr.FromDB(err)
	}
	if err := s.userRepo.Delete(id); err != nil {
		return apperr.FromDB(err)
	}
	return nil
}
