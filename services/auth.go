package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"sgac_app_go/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	// BcryptCost is the cost factor for bcrypt hashing
	BcryptCost = 10

	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"

	tokenIssuer = "sgac-api"
)

// Auth errors
var (
	ErrInvalidCredentials = errors.New("No active account found with the given credentials")
	ErrInvalidToken       = errors.New("Token is invalid or expired")
	ErrInactiveUser       = errors.New("User is inactive")
)

// Global auth collaborators, set up by InitAuth
var (
	Tokens      *TokenIssuer
	Revocations RevocationStore
)

// InitAuth installs the token issuer and the revocation store
func InitAuth(issuer *TokenIssuer, store RevocationStore) {
	Tokens = issuer
	Revocations = store
}

// HashPassword hashes a password using bcrypt
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(bytes), nil
}

// CheckPassword verifies a password against a hash
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// TokenClaims are the claims carried by access and refresh tokens
type TokenClaims struct {
	UserID    uint   `json:"user_id"`
	Username  string `json:"username"`
	IsStaff   bool   `json:"is_staff"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// TokenPair is the result of a successful login
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// TokenIssuer signs and verifies HS256 tokens
type TokenIssuer struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewTokenIssuer(secret string, accessTTL, refreshTTL time.Duration) *TokenIssuer {
	return &TokenIssuer{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

func (t *TokenIssuer) sign(user *models.User, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &TokenClaims{
		UserID:    user.ID,
		Username:  user.Username,
		IsStaff:   user.IsStaff,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Subject:   fmt.Sprintf("%d", user.ID),
			Issuer:    tokenIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

// Issue creates a new access/refresh pair for user
func (t *TokenIssuer) Issue(user *models.User) (*TokenPair, error) {
	access, err := t.sign(user, TokenTypeAccess, t.accessTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}
	refresh, err := t.sign(user, TokenTypeRefresh, t.refreshTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to sign refresh token: %w", err)
	}
	return &TokenPair{Access: access, Refresh: refresh}, nil
}

// AccessFor creates a new access token only
func (t *TokenIssuer) AccessFor(user *models.User) (string, error) {
	return t.sign(user, TokenTypeAccess, t.accessTTL)
}

// Parse verifies signature, expiry and token type
func (t *TokenIssuer) Parse(tokenString, tokenType string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return t.secret, nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.TokenType != tokenType || claims.ID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// BearerToken extracts the token of an "Authorization: Bearer <token>" header
func BearerToken(header string) (string, bool) {
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	return strings.TrimSpace(header[len(prefix):]), true
}

// Authenticate checks username and password of an active account
func Authenticate(db *gorm.DB, username, password string) (*models.User, error) {
	var user models.User
	if err := db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !user.IsActive || !CheckPassword(password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	now := time.Now()
	user.LastLoginAt = &now
	if err := db.Model(&user).Update("last_login_at", now).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Login authenticates and issues a token pair
func Login(db *gorm.DB, username, password string) (*models.User, *TokenPair, error) {
	user, err := Authenticate(db, username, password)
	if err != nil {
		return nil, nil, err
	}
	pair, err := Tokens.Issue(user)
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

// RefreshAccess issues a new access token from a refresh token that was not revoked
func RefreshAccess(ctx context.Context, db *gorm.DB, refresh string) (string, error) {
	claims, err := Tokens.Parse(refresh, TokenTypeRefresh)
	if err != nil {
		return "", err
	}

	revoked, err := Revocations.IsRevoked(ctx, claims.ID)
	if err != nil {
		return "", err
	}
	if revoked {
		return "", ErrInvalidToken
	}

	user, err := ActiveUser(db, claims.UserID)
	if err != nil {
		return "", err
	}
	return Tokens.AccessFor(user)
}

// RevokeRefresh blacklists a refresh token until it expires
func RevokeRefresh(ctx context.Context, refresh string) (*TokenClaims, error) {
	claims, err := Tokens.Parse(refresh, TokenTypeRefresh)
	if err != nil {
		return nil, err
	}
	if err := Revocations.Revoke(ctx, claims.ID, claims.UserID, claims.ExpiresAt.Time); err != nil {
		return nil, err
	}
	return claims, nil
}

// ActiveUser loads a user and rejects inactive accounts
func ActiveUser(db *gorm.DB, id uint) (*models.User, error) {
	var user models.User
	if err := db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, ErrInactiveUser
	}
	return &user, nil
}

// CreateUser hashes password and stores a new account
func CreateUser(db *gorm.DB, username, email, password string, isStaff bool) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, errors.New("username is required")
	}
	if err := ValidatePassword(password, username); err != nil {
		return nil, err
	}

	hashed, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Username: username,
		Email:    strings.TrimSpace(email),
		Password: hashed,
		IsStaff:  isStaff,
		IsActive: true,
	}
	if err := db.Create(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}
