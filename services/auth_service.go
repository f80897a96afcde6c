package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"assignment-tracker/config"
	"assignment-tracker/models"
	"assignment-tracker/repositories"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken          = errors.New("email already registered")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrTokenMissingSubject = errors.New("token has no subject claim")
)

type IAuthService interface {
	Signup(name string, email string, password string, role string) error
	Login(email string, password string) (*string, error)
	GetUserFromToken(tokenString string) (*models.User, error)
}

type AuthService struct {
	repository repositories.IAuthRepository
	cfg        *config.Config
}

func NewAuthService(repository repositories.IAuthRepository, cfg *config.Config) IAuthService {
	return &AuthService{
		repository: repository,
		cfg:        cfg,
	}
}

func (s *AuthService) Signup(name string, email string, password string, role string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := models.User{
		Name:     name,
		Email:    email,
		Password: string(hashedPassword),
		Role:     role,
	}
	if err := s.repository.CreateUser(user); err != nil {
		// 一意制約違反はドライバごとにエラー型が異なるためメッセージで判定する
		if strings.Contains(err.Error(), "duplicate") || strings.Contains(err.Error(), "UNIQUE constraint") {
			return ErrEmailTaken
		}
		return err
	}
	return nil
}

func (s *AuthService) Login(email string, password string) (*string, error) {
	foundUser, err := s.repository.FindUserByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(foundUser.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.CreateToken(foundUser.ID)
	if err != nil {
		return nil, err
	}

	return token, nil
}

func (s *AuthService) CreateToken(userID uint) (*string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": userID,
		"exp": time.Now().Add(s.cfg.TokenTTL).Unix(),
	})

	tokenString, err := token.SignedString([]byte(s.cfg.SecretKey))
	if err != nil {
		return nil, err
	}
	return &tokenString, nil
}

func (s *AuthService) GetUserFromToken(tokenString string) (*models.User, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.SecretKey), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, jwt.ErrTokenMalformed
	}

	if exp, ok := claims["exp"].(float64); ok {
		if float64(time.Now().Unix()) > exp {
			return nil, jwt.ErrTokenExpired
		}
	}

	sub, ok := claims["sub"].(float64)
	if !ok {
		return nil, ErrTokenMissingSubject
	}

	user, err := s.repository.FindUserByID(uint(sub))
	if err != nil {
		return nil, err
	}
	return user, nil
}
