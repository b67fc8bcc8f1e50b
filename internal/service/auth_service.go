package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"cinemotion-be/internal/dto"
	"cinemotion-be/internal/entity"
	"cinemotion-be/internal/repository/specification"
	"cinemotion-be/internal/repository/unitofwork"

	"cinemotion-be/pkg/events"
	pktNats "cinemotion-be/pkg/nats"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
}

type authService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher *pktNats.Publisher
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, eventPublisher *pktNats.Publisher) IAuthService {
	return &authService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
	}
}

func generateToken(userId uuid.UUID) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userId.String(),
		"exp":     time.Now().Add(time.Hour * 24 * 7).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "default_secret"
	}
	return token.SignedString([]byte(secret))
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	// 1. Check for existing user
	existing, _ := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if existing != nil {
		return nil, errors.New("user already exists")
	}

	// 2. Hash password
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	// 3. Create User Entity (defaults mirror the product's launch market)
	user := &entity.User{
		Id:               uuid.New(),
		Email:            req.Email,
		Name:             req.Name,
		PasswordHash:     string(hash),
		Locale:           "vi",
		Region:           "VN",
		ComfortOnDefault: true,
		VibesPref:        []string{},
		CreatedAt:        time.Now(),
	}

	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return nil, err
	}

	// 4. Generate JWT
	token, err := generateToken(user.Id)
	if err != nil {
		return nil, err
	}

	// PUBLISH EVENT (best effort)
	if s.eventPublisher != nil {
		evt := events.NewUserRegistered(user.Id, user.Email)
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			fmt.Printf("[WARN] Failed to publish USER_REGISTERED event: %v\n", err)
		}
	}

	return &dto.AuthResponse{
		User:  dto.AuthUser{Id: user.Id, Email: user.Email, Name: user.Name},
		Token: token,
	}, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, errors.New("invalid credentials")
	}
	if user == nil {
		return nil, errors.New("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errors.New("invalid credentials")
	}

	token, err := generateToken(user.Id)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		User:  dto.AuthUser{Id: user.Id, Email: user.Email, Name: user.Name},
		Token: token,
	}, nil
}
