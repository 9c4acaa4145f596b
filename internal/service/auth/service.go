// Package auth issues and checks the signed tokens that gate the
// operator-facing façade endpoints.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
	"golang.org/x/crypto/bcrypt"

	"com.hawanagroup.socialbridge/internal/boot"
	"com.hawanagroup.socialbridge/internal/model"
)

type OperatorStore interface {
	Create(operator *model.Operator) error
	FetchByEmail(email string) (*model.Operator, error)
}

type service struct {
	config    *boot.Config
	operators OperatorStore
}

func New(config *boot.Config, operators OperatorStore) (*service, error) {
	s := &service{config, operators}
	if err := s.seed(); err != nil {
		return nil, fmt.Errorf("seeding operator: %w", err)
	}
	return s, nil
}

// seed creates the bootstrap operator from config, once.
func (s *service) seed() error {
	email := s.config.Auth.OperatorEmail
	password := s.config.Auth.OperatorPassword
	if email == "" || password == "" {
		return nil
	}

	_, err := s.operators.FetchByEmail(email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, model.ErrorOperatorNotFound) {
		return err
	}

	passwordBytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	if err != nil {
		return fmt.Errorf("generating encoded password: %w", err)
	}

	return s.operators.Create(&model.Operator{
		ID:        model.OperatorID(model.CreateID()),
		CreatedAt: time.Now().UTC(),
		Status:    model.OperatorStatusActive,
		Handle:    s.config.Auth.OperatorHandle,
		Email:     email,
		Password:  string(passwordBytes),
	})
}

func (s *service) Login(params *model.LoginParams) (string, error) {
	operator, err := s.operators.FetchByEmail(params.Email)
	if err != nil {
		if errors.Is(err, model.ErrorOperatorNotFound) {
			return "", model.ErrorInvalidCredentials
		}
		return "", fmt.Errorf("fetching operator: %w", err)
	}

	if operator.Status != model.OperatorStatusActive {
		return "", model.ErrorInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(operator.Password), []byte(params.Password)); err != nil {
		return "", model.ErrorInvalidCredentials
	}

	now := time.Now().UTC()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":    string(operator.ID),
		"handle": operator.Handle,
		"iat":    now.Unix(),
		"exp":    now.Add(s.config.Auth.TokenTTL).Unix(),
	})

	signed, err := token.SignedString([]byte(s.config.Auth.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return signed, nil
}

// Verify checks a bearer token and returns the operator it was issued to.
func (s *service) Verify(tokenString string) (model.OperatorID, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.Auth.JWTSecret), nil
	})
	if err != nil {
		return "", fmt.Errorf("parsing token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", model.ErrorInvalidCredentials
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return "", model.ErrorInvalidCredentials
	}

	return model.OperatorID(sub), nil
}
