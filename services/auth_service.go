package services

import (
	"errors"
	"strings"
	"time"

	"github.com/Hamdan-B/FoodiesHub/entity"
	"github.com/Hamdan-B/FoodiesHub/pkg/apperr"
	"github.com/Hamdan-B/FoodiesHub/repository"
	"github.com/Hamdan-B/FoodiesHub/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	DB     *gorm.DB
	Users  *repository.UserRepository
	Riders *repository.RiderRepository

	JWTSecret string
	JWTTTL    time.Duration
}

func NewAuthService(db *gorm.DB, users *repository.UserRepository, riders *repository.RiderRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{DB: db, Users: users, Riders: riders, JWTSecret: secret, JWTTTL: ttl}
}

type RegisterReq struct {
	Email       string   `json:"email" binding:"required,email"`
	Password    string   `json:"password" binding:"required,min=6"`
	DisplayName string   `json:"displayName"`
	Roles       []string `json:"roles" binding:"required,min=1"`
}

type AuthRes struct {
	Token string       `json:"token"`
	User  *entity.User `json:"user"`
}

func (s *AuthService) Register(req *RegisterReq) (*AuthRes, error) {
	roles, err := entity.ParseRoles(req.Roles)
	if err != nil {
		return nil, apperr.Validation(err.Error())
	}
	roles = roles.Normalized()
	if roles == 0 {
		return nil, apperr.Validation("select at least one role")
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	taken, err := s.Users.EmailTaken(email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperr.Auth("an account with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := entity.User{
		Email:       email,
		Password:    string(hash),
		DisplayName: req.DisplayName,
		Roles:       roles,
	}
	// seller/rider start unapproved; absent roles stay null
	if roles.Has(entity.RoleSeller) {
		f := false
		user.SellerApproved = &f
	}
	if roles.Has(entity.RoleRider) {
		f := false
		user.RiderApproved = &f
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Users.Create(tx, &user); err != nil {
			return err
		}
		if roles.Has(entity.RoleRider) {
			rider := entity.Rider{
				UserID:       user.ID,
				Status:       entity.RiderOffline,
				Availability: entity.RiderAvailable,
			}
			if err := s.Riders.Create(tx, &rider); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	token, err := utils.GenerateToken(&user, s.JWTSecret, s.JWTTTL)
	if err != nil {
		return nil, err
	}
	return &AuthRes{Token: token, User: &user}, nil
}

func (s *AuthService) Login(email, password string) (*AuthRes, error) {
	user, err := s.Users.GetByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Auth("invalid email or password")
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, apperr.Auth("invalid email or password")
	}

	token, err := utils.GenerateToken(user, s.JWTSecret, s.JWTTTL)
	if err != nil {
		return nil, err
	}
	return &AuthRes{Token: token, User: user}, nil
}

func (s *AuthService) Me(userID uint) (*entity.User, error) {
	u, err := s.Users.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("user not found")
		}
		return nil, err
	}
	return u, nil
}
