package services

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"slotb/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUserService(t *testing.T) (*UserService, *AuthService, *config.Config) {
	cfg := testConfig(t)
	st := newTestStore(t, cfg)
	return NewUserService(cfg, st), NewAuthService(cfg, st), cfg
}

func TestUpdateProfile(t *testing.T) {
	svc, auth, _ := newTestUserService(t)
	user := registerUser(t, auth, "alice")

	_, err := svc.UpdateProfile(user.ID, "", "Anders", "")
	assert.ErrorIs(t, err, ErrMissingName)

	_, err = svc.UpdateProfile(user.ID, "Alice", "Anders", "not-digits")
	assert.ErrorIs(t, err, ErrInvalidIDNumber)

	updated, err := svc.UpdateProfile(user.ID, "Alicia", "Andersen", "0123456789")
	require.NoError(t, err)
	assert.Equal(t, "Alicia", updated.FirstName)
	assert.Equal(t, "Andersen", updated.LastName)
	assert.Equal(t, "0123456789", updated.IDNumber)
	assert.Empty(t, updated.PasswordHash)
}

func TestChangePassword(t *testing.T) {
	svc, auth, _ := newTestUserService(t)
	user := registerUser(t, auth, "alice")

	err := svc.ChangePassword(user.ID, "wrong", "newpw")
	assert.ErrorIs(t, err, ErrWrongPassword)

	require.NoError(t, svc.ChangePassword(user.ID, "pw", "newpw"))

	_, err = auth.Authenticate("alice", "pw")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = auth.Authenticate("alice", "newpw")
	assert.NoError(t, err)
}

func pngDataURL(t *testing.T) string {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

func TestSaveAvatar(t *testing.T) {
	svc, auth, cfg := newTestUserService(t)
	user := registerUser(t, auth, "alice")

	updated, err := svc.SaveAvatar(user.ID, pngDataURL(t))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(updated.ProfilePicture, "/uploads/user-"), "unexpected path %q", updated.ProfilePicture)

	// The thumbnail exists on disk
	fileName := strings.TrimPrefix(updated.ProfilePicture, "/uploads/")
	_, err = os.Stat(filepath.Join(cfg.Paths.Uploads, fileName))
	assert.NoError(t, err)
}

func TestSaveAvatarRejectsBadPayloads(t *testing.T) {
	svc, auth, _ := newTestUserService(t)
	user := registerUser(t, auth, "alice")

	for _, payload := range []string{
		"",
		"plainstring",
		"data:text/plain;base64,aGVsbG8=",
		"data:image/png;base64,!!!not-base64!!!",
		"data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("not an image")),
	} {
		_, err := svc.SaveAvatar(user.ID, payload)
		assert.ErrorIs(t, err, ErrInvalidImage, "payload %q", payload)
	}
}
