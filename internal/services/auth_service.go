package services

import (
	"crypto/subtle"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const TokenTTL = 24 * time.Hour

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

type AuthUser struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

type Claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// AuthService guards the API with a single configured credential pair.
// The password is kept only as a bcrypt hash.
type AuthService struct {
	username     string
	passwordHash []byte
	secret       []byte
	now          func() time.Time
}

func NewAuthService(username, password, secret string) (*AuthService, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &AuthService{
		username:     username,
		passwordHash: hash,
		secret:       []byte(secret),
		now:          time.Now,
	}, nil
}

// Login checks the credentials and issues a signed HS256 token valid for
// TokenTTL.
func (s *AuthService) Login(username, password string) (string, AuthUser, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1
	passErr := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password))
	if !userOK || passErr != nil {
		return "", AuthUser{}, ErrInvalidCredentials
	}

	user := AuthUser{Username: s.username, Role: "admin"}
	now := s.now()
	claims := Claims{
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", AuthUser{}, err
	}
	return token, user, nil
}

// Verify parses a token issued by Login.
func (s *AuthService) Verify(raw string) (Claims, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(raw, &claims, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now), jwt.WithExpirationRequired())
	if err != nil {
		return Claims{}, errors.Join(ErrInvalidToken, err)
	}
	return claims, nil
}
