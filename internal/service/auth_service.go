package service

import (
	"errors"

	"go-parts-store/internal/apperr"
	"go-parts-store/internal/model"
	"go-parts-store/internal/repository"
	"go-parts-store/pkg/jwt"
	"go-parts-store/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// One message for unknown email and wrong password so login failures
// don't leak which accounts exist.
var (
	ErrInvalidCredentials = apperr.Auth("invalid email or password")
	ErrAccountNotApproved = apperr.Auth("account is awaiting approval")
	ErrAccountInactive    = apperr.Auth("account is inactive")
	ErrEmailTaken         = apperr.Validation("email is already registered")
)

type AuthService interface {
	Register(req *RegisterRequest) (*model.UserResponse, error)
	Login(email, password string) (*LoginResponse, error)
	GetCurrentUser(userID uuid.UUID) (*model.UserResponse, error)
}

type RegisterRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	FullName    string `json:"fullName" validate:"required"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phoneNumber"`
}

type LoginResponse struct {
	Token string             `json:"token"`
	User  model.UserResponse `json:"user"`
}

type authService struct {
	userRepo repository.UserRepository
}

func NewAuthService(userRepo repository.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

func (s *authService) Register(req *RegisterRequest) (*model.UserResponse, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.Validation(validator.FormatErrors(errs))
	}

	existing, err := s.userRepo.FindByEmail(req.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.FromDB(err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	user := &model.User{
		Email:       req.Email,
		FullName:    req.FullName,
		Address:     req.Address,
		PhoneNumber: req.PhoneNumber,
		IsApproved:  false, // Admin approves before first login
		IsActive:    true,
	}
	if err := user.SetPassword(req.Password); err != nil {
		return nil, apperr.Persistence(err)
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, apperr.FromDB(err)
	}

	resp := user.ToResponse()
	return &resp, nil
}

func (s *authService) Login(email, password string) (*LoginResponse, error) {
	if email == "" || password == "" {
		return nil, apperr.Validation("email and password are required")
	}

	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, apperr.FromDB(err)
	}

	if !user.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}

	if !user.IsApproved {
		return nil, ErrAccountNotApproved
	}
	if !user.IsActive {
		return nil, ErrAccountInactive
	}

	token, err := jwt.GenerateToken(user.ID, user.Email, user.FullName, user.IsAdmin)
	if err != nil {
		return nil, apperr.Persistence(err)
	}

	return &LoginResponse{
		Token: token,
		User:  user.ToResponse(),
	}, nil
}

func (s *authService) GetCurrentUser(userID uuid.UUID) (*model.UserResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, apperr.FromDB(err)
	}
	resp := user.ToResponse()
	return &resp, nil
}
