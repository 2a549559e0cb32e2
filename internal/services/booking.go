package services

import (
	"errors"

	"slotb/internal/models"
	"slotb/internal/store"
)

const recentBookingLimit = 10

var (
	// ErrBookingNotFound covers both an unknown booking id and a booking
	// owned by someone else. Ownership failures must not be
	// distinguishable from missing rows.
	ErrBookingNotFound = errors.New("booking not found or unauthorized")

	ErrMissingBookingFields = errors.New("title, date, start time, and end time are required")
	ErrInvalidTimeRange     = errors.New("start time must be before end time")
)

type BookingService struct {
	store *store.Store
}

func NewBookingService(st *store.Store) *BookingService {
	return &BookingService{store: st}
}

// validateBooking checks the required fields and the time range. Times are
// zero-padded HH:MM strings, so lexicographic order matches clock order.
func validateBooking(title, date, startTime, endTime string) error {
	if title == "" || date == "" || startTime == "" || endTime == "" {
		return ErrMissingBookingFields
	}
	if startTime >= endTime {
		return ErrInvalidTimeRange
	}
	return nil
}

// Create persists a new booking owned by the given user.
func (s *BookingService) Create(userID uint, title, date, startTime, endTime, description string) (*models.Booking, error) {
	if err := validateBooking(title, date, startTime, endTime); err != nil {
		return nil, err
	}

	booking := &models.Booking{
		UserID:      userID,
		Title:       title,
		Date:        date,
		StartTime:   startTime,
		EndTime:     endTime,
		Description: description,
	}

	if err := s.store.CreateBooking(booking); err != nil {
		return nil, err
	}

	return booking, nil
}

// List returns the user's bookings, earliest first.
func (s *BookingService) List(userID uint) ([]models.Booking, error) {
	return s.store.BookingsByUser(userID)
}

// ListByDate returns every user's bookings for a calendar date, with the
// owner's username attached.
func (s *BookingService) ListByDate(date string) ([]models.DateBooking, error) {
	return s.store.BookingsByDate(date)
}

// Recent returns up to ten of the user's most recent bookings.
func (s *BookingService) Recent(userID uint) ([]models.Booking, error) {
	return s.store.RecentBookingsByUser(userID, recentBookingLimit)
}

// Update rewrites a booking owned by the caller. A booking that does not
// exist or is owned by another user yields ErrBookingNotFound.
func (s *BookingService) Update(id, userID uint, title, date, startTime, endTime, description string) error {
	if err := validateBooking(title, date, startTime, endTime); err != nil {
		return err
	}

	affected, err := s.store.UpdateBooking(id, userID, map[string]interface{}{
		"title":       title,
		"date":        date,
		"start_time":  startTime,
		"end_time":    endTime,
		"description": description,
	})
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrBookingNotFound
	}
	return nil
}

// Delete removes a booking owned by the caller under the same not-found
// rule as Update.
func (s *BookingService) Delete(id, userID uint) error {
	affected, err := s.store.DeleteBooking(id, userID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrBookingNotFound
	}
	return nil
}
