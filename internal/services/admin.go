package services

import (
	"slotb/internal/models"
	"slotb/internal/store"
)

// AdminService covers the admin-only user management surface.
type AdminService struct {
	store *store.Store
}

func NewAdminService(st *store.Store) *AdminService {
	return &AdminService{store: st}
}

// ListUsers returns all users, newest first, with credential fields
// stripped.
func (s *AdminService) ListUsers() ([]models.User, error) {
	users, err := s.store.ListUsers()
	if err != nil {
		return nil, err
	}

	for i := range users {
		users[i].Sanitize()
	}

	return users, nil
}

// AdminUserUpdate carries the fields an admin may change on a user. Nil
// fields are left untouched.
type AdminUserUpdate struct {
	FirstName *string
	LastName  *string
	IDNumber  *string
	Role      *string
}

// UpdateUser applies a partial update to a user and returns the updated
// record. Returns ErrUserNotFound when the id does not exist.
func (s *AdminService) UpdateUser(id uint, update AdminUserUpdate) (*models.User, error) {
	if update.IDNumber != nil && !ValidIDNumber(*update.IDNumber) {
		return nil, ErrInvalidIDNumber
	}

	fields := map[string]interface{}{}
	if update.FirstName != nil {
		fields["first_name"] = *update.FirstName
	}
	if update.LastName != nil {
		fields["last_name"] = *update.LastName
	}
	if update.IDNumber != nil {
		fields["id_number"] = *update.IDNumber
	}
	if update.Role != nil {
		fields["role"] = *update.Role
	}

	affected, err := s.store.AdminUpdateUser(id, fields)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrUserNotFound
	}

	user, err := s.store.GetUserByID(id)
	if err != nil {
		return nil, err
	}

	user.Sanitize()
	return user, nil
}
