package services

import (
	"errors"
	"fmt"
	"time"

	"slotb/internal/config"
	"slotb/internal/models"
	"slotb/internal/store"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrInvalidIDNumber    = errors.New("ID number must be up to 10 digits")
)

// Claims is the authenticated caller identity carried by a bearer token.
type Claims struct {
	UserID   uint
	Username string
	Role     string
}

type AuthService struct {
	cfg   *config.Config
	store *store.Store
}

func NewAuthService(cfg *config.Config, st *store.Store) *AuthService {
	return &AuthService{cfg: cfg, store: st}
}

// HashPassword hashes a password using bcrypt
func (s *AuthService) HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), s.cfg.Security.BcryptCost)
	return string(bytes), err
}

// VerifyPassword verifies a password against a hash
func (s *AuthService) VerifyPassword(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}

// Register creates a new user account and returns it with a fresh token.
// The first account ever registered becomes the admin; everyone after that
// is a regular user.
func (s *AuthService) Register(username, email, password, firstName, lastName, idNumber string) (*models.User, string, error) {
	if !ValidIDNumber(idNumber) {
		return nil, "", ErrInvalidIDNumber
	}

	hashedPassword, err := s.HashPassword(password)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	count, err := s.store.CountUsers()
	if err != nil {
		return nil, "", fmt.Errorf("failed to determine user role: %w", err)
	}

	role := models.RoleUser
	if count == 0 {
		role = models.RoleAdmin
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         role,
		FirstName:    firstName,
		LastName:     lastName,
		IDNumber:     idNumber,
	}

	if err := s.store.CreateUser(user); err != nil {
		return nil, "", err
	}

	token, err := s.IssueToken(user)
	if err != nil {
		return nil, "", err
	}

	user.Sanitize()
	return user, token, nil
}

// Authenticate verifies credentials and returns the user. The identifier
// matches either username or email, ignoring case.
func (s *AuthService) Authenticate(identifier, password string) (*models.User, error) {
	user, err := s.store.GetUserByIdentifier(identifier)
	if err != nil {
		if store.IsNotFound(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.VerifyPassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	if user.Role == "" {
		user.Role = models.RoleUser
	}

	return user, nil
}

// IssueToken signs a bearer token for the user, valid for the configured
// duration (24h by default).
func (s *AuthService) IssueToken(user *models.User) (string, error) {
	expiresIn, err := time.ParseDuration(s.cfg.JWT.ExpiresIn)
	if err != nil || expiresIn <= 0 {
		expiresIn = 24 * time.Hour
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"role":     user.Role,
		"exp":      now.Add(expiresIn).Unix(),
		"iat":      now.Unix(),
		"iss":      s.cfg.JWT.Issuer,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secret()))
}

// VerifyToken validates a bearer token and resolves the caller's identity.
// Signature or expiry failures return ErrInvalidToken. Tokens issued before
// the role claim existed are resolved against storage so role changes take
// effect without forcing a new login; if that lookup fails the error is
// surfaced as-is rather than falling back to a default role.
func (s *AuthService) VerifyToken(tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.secret()), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	userID, ok := mapClaims["user_id"].(float64)
	if !ok {
		return nil, ErrInvalidToken
	}

	claims := &Claims{UserID: uint(userID)}
	claims.Username, _ = mapClaims["username"].(string)

	if role, ok := mapClaims["role"].(string); ok && role != "" {
		claims.Role = role
		return claims, nil
	}

	user, err := s.store.GetUserByID(claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve user role: %w", err)
	}

	claims.Role = user.Role
	if claims.Role == "" {
		claims.Role = models.RoleUser
	}

	return claims, nil
}

func (s *AuthService) secret() string {
	if s.cfg.JWT.Secret != "" {
		return s.cfg.JWT.Secret
	}
	return "slotb-default-secret-change-in-production"
}
