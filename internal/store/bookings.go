package store

import (
	"slotb/internal/models"
)

func (s *Store) CreateBooking(booking *models.Booking) error {
	return s.db.Create(booking).Error
}

// BookingsByUser returns all bookings owned by the user, earliest first.
func (s *Store) BookingsByUser(userID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.db.Where("user_id = ?", userID).
		Order("date, start_time").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

// BookingsByDate returns every user's bookings for a calendar date together
// with the owner's username. The date is matched verbatim against the
// stored yyyy-mm-dd string.
func (s *Store) BookingsByDate(date string) ([]models.DateBooking, error) {
	var bookings []models.DateBooking
	err := s.db.Model(&models.Booking{}).
		Select("bookings.id, bookings.user_id, bookings.title, bookings.date, bookings.start_time, bookings.end_time, bookings.description, bookings.created_at, users.username").
		Joins("JOIN users ON users.id = bookings.user_id").
		Where("bookings.date = ?", date).
		Order("bookings.start_time").
		Scan(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

// RecentBookingsByUser returns the user's most recent bookings, newest
// first, capped at limit.
func (s *Store) RecentBookingsByUser(userID uint, limit int) ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.db.Where("user_id = ?", userID).
		Order("date DESC, start_time DESC").
		Limit(limit).
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

// UpdateBooking updates a booking scoped by id and owner in one predicate.
// Zero rows affected means the booking does not exist or belongs to someone
// else; the two cases are deliberately indistinguishable. An empty field
// set is a no-op.
func (s *Store) UpdateBooking(id, userID uint, fields map[string]interface{}) (int64, error) {
	if len(fields) == 0 {
		return 0, nil
	}
	tx := s.db.Model(&models.Booking{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(fields)
	return tx.RowsAffected, tx.Error
}

// DeleteBooking deletes a booking scoped by id and owner under the same
// zero-rows rule as UpdateBooking.
func (s *Store) DeleteBooking(id, userID uint) (int64, error) {
	tx := s.db.Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Booking{})
	return tx.RowsAffected, tx.Error
}
