package identity

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var sessionKey = []byte("retail-session-key")

type service struct {
	repo Repository
}

// NewService creates a new identity service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Register(ctx context.Context, name, password string, latitude, longitude float64) (*User, error) {
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if latitude < 0 || latitude > 100 || longitude < 0 || longitude > 100 {
		return nil, fmt.Errorf("latitude and longitude must be in [0,100]")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &User{
		Name:         name,
		PasswordHash: string(hashed),
		Latitude:     latitude,
		Longitude:    longitude,
		Role:         RoleCustomer,
	}
	if err := s.repo.CreateUser(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *service) Authenticate(ctx context.Context, name, password string) (*User, error) {
	users, err := s.repo.UsersByName(ctx, name)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil {
			return u, nil
		}
	}
	return nil, ErrInvalidCredentials
}

func (s *service) Login(ctx context.Context, name, password string) (string, error) {
	u, err := s.Authenticate(ctx, name, password)
	if err != nil {
		return "", err
	}

	claims := &jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(u.ID, 10),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(sessionKey)
}

func (s *service) Subject(tokenString string) (int64, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		return sessionKey, nil
	})
	if err != nil {
		return 0, err
	}
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return 0, fmt.Errorf("session token has no subject")
	}
	return strconv.ParseInt(claims.Subject, 10, 64)
}
