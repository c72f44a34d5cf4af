package services_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/vyapari/app/services"
	"github.com/shashiranjanraj/vyapari/pkg/auth"
)

func TestRegisterAndLogin(t *testing.T) {
	db := newTestDB(t)
	r := newRepos(db)
	svc := services.NewAuthService(r.users)

	user, err := svc.Register("Asha", "asha@example.com", "secret-pass")
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.NotEqual(t, "secret-pass", user.Password, "password must be stored hashed")

	token, logged, err := svc.Login("asha@example.com", "secret-pass")
	require.NoError(t, err)
	assert.Equal(t, user.ID, logged.ID)

	claims, err := auth.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	r := newRepos(db)
	svc := services.NewAuthService(r.users)

	_, err := svc.Register("One", "dup@example.com", "secret-pass")
	require.NoError(t, err)

	_, err = svc.Register("Two", "dup@example.com", "other-pass")
	assert.ErrorIs(t, err, services.ErrConflict)
}

func TestLoginBadCredentials(t *testing.T) {
	db := newTestDB(t)
	r := newRepos(db)
	svc := services.NewAuthService(r.users)

	_, err := svc.Register("Asha", "asha@example.com", "secret-pass")
	require.NoError(t, err)

	// Wrong password and unknown email fail identically.
	_, _, err = svc.Login("asha@example.com", "wrong")
	assert.ErrorIs(t, err, services.ErrUnauthorized)

	_, _, err = svc.Login("nobody@example.com", "secret-pass")
	assert.ErrorIs(t, err, services.ErrUnauthorized)
}

func TestResetPassword(t *testing.T) {
	db := newTestDB(t)
	r := newRepos(db)
	svc := services.NewAuthService(r.users)

	_, err := svc.Register("Asha", "asha@example.com", "old-password")
	require.NoError(t, err)

	require.NoError(t, svc.ResetPassword("asha@example.com", "new-password"))

	_, _, err = svc.Login("asha@example.com", "old-password")
	assert.ErrorIs(t, err, services.ErrUnauthorized)

	_, _, err = svc.Login("asha@example.com", "new-password")
	assert.NoError(t, err)

	err = svc.ResetPassword("nobody@example.com", "whatever-pass")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestChangePassword(t *testing.T) {
	db := newTestDB(t)
	r := newRepos(db)
	svc := services.NewAuthService(r.users)

	user, err := svc.Register("Asha", "asha@example.com", "old-password")
	require.NoError(t, err)

	err = svc.ChangePassword(user.ID, "wrong-old", "new-password")
	var ve *services.ValidationError
	require.True(t, errors.As(err, &ve), "expected validation error, got %v", err)
	assert.Contains(t, ve.Fields, "old_password")

	require.NoError(t, svc.ChangePassword(user.ID, "old-password", "new-password"))

	_, _, err = svc.Login("asha@example.com", "new-password")
	assert.NoError(t, err)
}

func TestChangeNameAndImage(t *testing.T) {
	db := newTestDB(t)
	r := newRepos(db)
	svc := services.NewAuthService(r.users)

	user, err := svc.Register("Asha", "asha@example.com", "secret-pass")
	require.NoError(t, err)

	renamed, err := svc.ChangeName(user.ID, "Asha Traders")
	require.NoError(t, err)
	assert.Equal(t, "Asha Traders", renamed.Name)

	updated, err := svc.ChangeImage(user.ID, "media/1/abc.png")
	require.NoError(t, err)
	assert.Equal(t, "media/1/abc.png", updated.ProfileImage)
}
