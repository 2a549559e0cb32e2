package services

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"time"

	"slotb/internal/config"
	"slotb/internal/models"
	"slotb/internal/store"

	"github.com/disintegration/imaging"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrMissingName   = errors.New("first name and last name are required")
	ErrWrongPassword = errors.New("current password is incorrect")
	ErrInvalidImage  = errors.New("invalid image payload")
)

const avatarSize = 256

var dataURLPattern = regexp.MustCompile(`^data:image/\w+;base64,(.+)$`)

// UserService handles the caller's own profile: viewing, editing, password
// changes and avatar uploads.
type UserService struct {
	cfg         *config.Config
	store       *store.Store
	authService *AuthService
}

func NewUserService(cfg *config.Config, st *store.Store) *UserService {
	return &UserService{
		cfg:         cfg,
		store:       st,
		authService: NewAuthService(cfg, st),
	}
}

// GetProfile returns the user without credential fields.
func (s *UserService) GetProfile(userID uint) (*models.User, error) {
	user, err := s.store.GetUserByID(userID)
	if err != nil {
		if store.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	user.Sanitize()
	return user, nil
}

// UpdateProfile replaces the user's name and ID number and returns the
// updated record.
func (s *UserService) UpdateProfile(userID uint, firstName, lastName, idNumber string) (*models.User, error) {
	if firstName == "" || lastName == "" {
		return nil, ErrMissingName
	}
	if !ValidIDNumber(idNumber) {
		return nil, ErrInvalidIDNumber
	}

	err := s.store.UpdateUserProfile(userID, map[string]interface{}{
		"first_name": firstName,
		"last_name":  lastName,
		"id_number":  idNumber,
	})
	if err != nil {
		return nil, err
	}

	return s.GetProfile(userID)
}

// ChangePassword replaces the user's password after verifying the current
// one.
func (s *UserService) ChangePassword(userID uint, currentPassword, newPassword string) error {
	user, err := s.store.GetUserByID(userID)
	if err != nil {
		if store.IsNotFound(err) {
			return ErrUserNotFound
		}
		return err
	}

	if !s.authService.VerifyPassword(user.PasswordHash, currentPassword) {
		return ErrWrongPassword
	}

	hashed, err := s.authService.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return s.store.UpdateUserPassword(userID, hashed)
}

// SaveAvatar decodes a base64 data-URL image, crops it to a square
// thumbnail in the uploads directory and stores its path on the user row.
// Returns the updated user.
func (s *UserService) SaveAvatar(userID uint, dataURL string) (*models.User, error) {
	matches := dataURLPattern.FindStringSubmatch(dataURL)
	if matches == nil {
		return nil, ErrInvalidImage
	}

	raw, err := base64.StdEncoding.DecodeString(matches[1])
	if err != nil {
		return nil, ErrInvalidImage
	}

	img, err := imaging.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, ErrInvalidImage
	}

	thumb := imaging.Fill(img, avatarSize, avatarSize, imaging.Center, imaging.Lanczos)

	fileName := fmt.Sprintf("user-%d-%d.jpg", userID, time.Now().UnixMilli())
	outputPath := filepath.Join(s.cfg.Paths.Uploads, fileName)
	if err := imaging.Save(thumb, outputPath, imaging.JPEGQuality(75)); err != nil {
		return nil, fmt.Errorf("failed to save avatar: %w", err)
	}

	err = s.store.UpdateUserProfile(userID, map[string]interface{}{
		"profile_picture": "/uploads/" + fileName,
	})
	if err != nil {
		return nil, err
	}

	return s.GetProfile(userID)
}
