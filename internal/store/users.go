package store

import (
	"errors"

	"slotb/internal/models"

	"gorm.io/gorm"
)

var (
	ErrUsernameTaken = errors.New("username already exists")
	ErrEmailTaken    = errors.New("email already exists")
)

// CreateUser inserts a new user. Username and email uniqueness is checked
// case-insensitively and surfaced as a distinct error per field.
func (s *Store) CreateUser(user *models.User) error {
	var count int64
	if err := s.db.Model(&models.User{}).
		Where("LOWER(username) = LOWER(?)", user.Username).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrUsernameTaken
	}

	if err := s.db.Model(&models.User{}).
		Where("LOWER(email) = LOWER(?)", user.Email).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrEmailTaken
	}

	return s.db.Create(user).Error
}

// GetUserByIdentifier looks up a user by username or email, ignoring case.
func (s *Store) GetUserByIdentifier(identifier string) (*models.User, error) {
	var user models.User
	err := s.db.
		Where("LOWER(username) = LOWER(?) OR LOWER(email) = LOWER(?)", identifier, identifier).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Store) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Store) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Store) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Store) CountUsers() (int64, error) {
	var count int64
	err := s.db.Model(&models.User{}).Count(&count).Error
	return count, err
}

// ListUsers returns all users, newest first.
func (s *Store) ListUsers() ([]models.User, error) {
	var users []models.User
	if err := s.db.Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateUserProfile applies a partial update to the given user's profile
// columns. An empty field set is a no-op.
func (s *Store) UpdateUserProfile(userID uint, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return s.db.Model(&models.User{}).Where("id = ?", userID).Updates(fields).Error
}

func (s *Store) UpdateUserPassword(userID uint, passwordHash string) error {
	return s.db.Model(&models.User{}).Where("id = ?", userID).
		Update("password_hash", passwordHash).Error
}

// AdminUpdateUser applies a partial update to name, id number or role and
// reports how many rows matched. Zero rows means the user does not exist.
func (s *Store) AdminUpdateUser(userID uint, fields map[string]interface{}) (int64, error) {
	if len(fields) == 0 {
		return 0, nil
	}
	tx := s.db.Model(&models.User{}).Where("id = ?", userID).Updates(fields)
	return tx.RowsAffected, tx.Error
}

// IsNotFound reports whether err is the database's record-not-found error.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
