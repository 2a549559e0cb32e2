package store

import (
	"path/filepath"
	"testing"

	"slotb/internal/config"
	"slotb/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	return &config.Config{
		Database: config.DatabaseConfig{
			Type: "sqlite",
			SQLite: config.SQLiteConfig{
				Path: filepath.Join(t.TempDir(), "slotb_test.db"),
			},
		},
	}
}

func openTestStore(t *testing.T) *Store {
	st, err := Open(testConfig(t))
	require.NoError(t, err)
	require.NoError(t, st.EnsureSchema())
	t.Cleanup(func() { st.Close() })
	return st
}

func mustCreateUser(t *testing.T, st *Store, username, email string) *models.User {
	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: "x",
		Role:         models.RoleUser,
	}
	require.NoError(t, st.CreateUser(user))
	return user
}

func TestEnsureSchemaIdempotent(t *testing.T) {
	cfg := testConfig(t)
	st, err := Open(cfg)
	require.NoError(t, err)
	defer st.Close()

	require.NoError(t, st.EnsureSchema())
	require.NoError(t, st.EnsureSchema())

	// Still fully usable after the second run
	mustCreateUser(t, st, "alice", "alice@example.com")
	users, err := st.ListUsers()
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestEnsureSchemaAddsColumnsToLegacyTable(t *testing.T) {
	cfg := testConfig(t)
	st, err := Open(cfg)
	require.NoError(t, err)
	defer st.Close()

	// A users table from before the profile fields existed, already
	// holding a row.
	err = st.db.Exec(`CREATE TABLE users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username varchar(255) UNIQUE NOT NULL,
		email varchar(255) UNIQUE NOT NULL,
		password_hash varchar(255) NOT NULL,
		created_at datetime
	)`).Error
	require.NoError(t, err)
	err = st.db.Exec(
		`INSERT INTO users (username, email, password_hash) VALUES (?, ?, ?)`,
		"legacy", "legacy@example.com", "x",
	).Error
	require.NoError(t, err)

	require.NoError(t, st.EnsureSchema())

	m := st.db.Migrator()
	for _, field := range []string{"Role", "FirstName", "LastName", "IDNumber", "ProfilePicture"} {
		assert.True(t, m.HasColumn(&models.User{}, field), "missing column for %s", field)
	}

	// The pre-existing row survived the migration
	user, err := st.GetUserByUsername("legacy")
	require.NoError(t, err)
	assert.Equal(t, "legacy@example.com", user.Email)
}

func TestCreateUserDuplicates(t *testing.T) {
	st := openTestStore(t)
	mustCreateUser(t, st, "Alice", "alice@example.com")

	err := st.CreateUser(&models.User{Username: "alice", Email: "other@example.com", PasswordHash: "x"})
	assert.ErrorIs(t, err, ErrUsernameTaken)

	err = st.CreateUser(&models.User{Username: "bob", Email: "ALICE@example.com", PasswordHash: "x"})
	assert.ErrorIs(t, err, ErrEmailTaken)

	err = st.CreateUser(&models.User{Username: "bob", Email: "bob@example.com", PasswordHash: "x"})
	assert.NoError(t, err)
}

func TestGetUserByIdentifier(t *testing.T) {
	st := openTestStore(t)
	created := mustCreateUser(t, st, "Carol", "carol@example.com")

	for _, identifier := range []string{"Carol", "carol", "CAROL@EXAMPLE.COM", "carol@example.com"} {
		user, err := st.GetUserByIdentifier(identifier)
		require.NoError(t, err, "identifier %q", identifier)
		assert.Equal(t, created.ID, user.ID)
	}

	_, err := st.GetUserByIdentifier("nobody")
	assert.True(t, IsNotFound(err))
}

func TestBookingOwnershipScoping(t *testing.T) {
	st := openTestStore(t)
	owner := mustCreateUser(t, st, "owner", "owner@example.com")
	other := mustCreateUser(t, st, "other", "other@example.com")

	booking := &models.Booking{
		UserID:    owner.ID,
		Title:     "Shoot",
		Date:      "2024-05-01",
		StartTime: "10:00",
		EndTime:   "11:00",
	}
	require.NoError(t, st.CreateBooking(booking))

	// Another user's id affects zero rows for both update and delete
	affected, err := st.UpdateBooking(booking.ID, other.ID, map[string]interface{}{"title": "Hijacked"})
	require.NoError(t, err)
	assert.Zero(t, affected)

	affected, err = st.DeleteBooking(booking.ID, other.ID)
	require.NoError(t, err)
	assert.Zero(t, affected)

	// The booking is untouched
	bookings, err := st.BookingsByUser(owner.ID)
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, "Shoot", bookings[0].Title)

	// The owner succeeds
	affected, err = st.UpdateBooking(booking.ID, owner.ID, map[string]interface{}{"title": "Rescheduled"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, affected)

	affected, err = st.DeleteBooking(booking.ID, owner.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, affected)
}

func TestBookingOrderings(t *testing.T) {
	st := openTestStore(t)
	user := mustCreateUser(t, st, "dora", "dora@example.com")

	seed := []models.Booking{
		{UserID: user.ID, Title: "b", Date: "2024-05-02", StartTime: "09:00", EndTime: "10:00"},
		{UserID: user.ID, Title: "a", Date: "2024-05-01", StartTime: "14:00", EndTime: "15:00"},
		{UserID: user.ID, Title: "c", Date: "2024-05-02", StartTime: "08:00", EndTime: "08:30"},
	}
	for i := range seed {
		require.NoError(t, st.CreateBooking(&seed[i]))
	}

	bookings, err := st.BookingsByUser(user.ID)
	require.NoError(t, err)
	require.Len(t, bookings, 3)
	assert.Equal(t, []string{"a", "c", "b"}, []string{bookings[0].Title, bookings[1].Title, bookings[2].Title})

	recent, err := st.RecentBookingsByUser(user.ID, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "b", recent[0].Title)
	assert.Equal(t, "c", recent[1].Title)
}

func TestBookingsByDateJoinsOwner(t *testing.T) {
	st := openTestStore(t)
	alice := mustCreateUser(t, st, "alice", "alice@example.com")
	bob := mustCreateUser(t, st, "bob", "bob@example.com")

	require.NoError(t, st.CreateBooking(&models.Booking{
		UserID: bob.ID, Title: "Bob's slot", Date: "2024-06-01", StartTime: "12:00", EndTime: "13:00",
	}))
	require.NoError(t, st.CreateBooking(&models.Booking{
		UserID: alice.ID, Title: "Alice's slot", Date: "2024-06-01", StartTime: "09:00", EndTime: "10:00",
	}))
	require.NoError(t, st.CreateBooking(&models.Booking{
		UserID: alice.ID, Title: "Other day", Date: "2024-06-02", StartTime: "09:00", EndTime: "10:00",
	}))

	bookings, err := st.BookingsByDate("2024-06-01")
	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.Equal(t, "alice", bookings[0].Username)
	assert.Equal(t, "Alice's slot", bookings[0].Title)
	assert.Equal(t, "bob", bookings[1].Username)
}

func TestAdminUpdateUser(t *testing.T) {
	st := openTestStore(t)
	user := mustCreateUser(t, st, "erin", "erin@example.com")

	affected, err := st.AdminUpdateUser(user.ID, map[string]interface{}{"role": models.RoleAdmin, "first_name": "Erin"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, affected)

	updated, err := st.GetUserByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, updated.Role)
	assert.Equal(t, "Erin", updated.FirstName)

	affected, err = st.AdminUpdateUser(9999, map[string]interface{}{"role": models.RoleUser})
	require.NoError(t, err)
	assert.Zero(t, affected)

	// No fields supplied is a no-op that reports zero rows
	affected, err = st.AdminUpdateUser(user.ID, nil)
	require.NoError(t, err)
	assert.Zero(t, affected)
}

func TestListUsersNewestFirst(t *testing.T) {
	st := openTestStore(t)

	first := mustCreateUser(t, st, "first", "first@example.com")
	second := mustCreateUser(t, st, "second", "second@example.com")

	// created_at has second precision on sqlite, so force distinct times
	err := st.db.Exec(`UPDATE users SET created_at = datetime('now', '-1 hour') WHERE id = ?`, first.ID).Error
	require.NoError(t, err)

	users, err := st.ListUsers()
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, second.ID, users[0].ID)
	assert.Equal(t, first.ID, users[1].ID)
}
