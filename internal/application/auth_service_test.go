package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/founditapp/foundit-backend/pkg/helpers"
)

func newAuthService(users *fakeUserRepo, sessions *fakeSessionStore) *AuthService {
	jwt := helpers.NewJWTManager("access-secret", "refresh-secret", time.Hour, 24*time.Hour)
	return NewAuthService(users, sessions, jwt, nil, nil)
}

func TestSignupEstablishesSessionAndHashesPassword(t *testing.T) {
	ctx := context.Background()
	users := &fakeUserRepo{}
	sessions := newFakeSessionStore()
	svc := newAuthService(users, sessions)

	sess, pair, err := svc.Signup(ctx, "ravi", "hunter2secret", "")
	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.Equal(t, "ravi", sess.Username)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)

	u, err := users.GetByUsername(ctx, "ravi")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.NotEqual(t, "hunter2secret", u.PasswordHash)
	assert.True(t, helpers.CheckPassword(u.PasswordHash, "hunter2secret"))

	stored, err := sessions.Get(ctx, u.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, sess.SID, stored.SID)
}

func TestSignupDuplicateUsernameMutatesNothing(t *testing.T) {
	ctx := context.Background()
	users := &fakeUserRepo{}
	sessions := newFakeSessionStore()
	svc := newAuthService(users, sessions)

	_, _, err := svc.Signup(ctx, "ravi", "hunter2secret", "")
	require.NoError(t, err)
	usersBefore := users.count()
	sessionsBefore := sessions.count()

	_, _, err = svc.Signup(ctx, "ravi", "otherpassword", "")
	require.ErrorIs(t, err, ErrUsernameTaken)
	assert.Equal(t, usersBefore, users.count())
	assert.Equal(t, sessionsBefore, sessions.count())
}

func TestLoginWrongPasswordNeverEstablishesSession(t *testing.T) {
	ctx := context.Background()
	users := &fakeUserRepo{}
	sessions := newFakeSessionStore()
	svc := newAuthService(users, sessions)

	sess, _, err := svc.Signup(ctx, "ravi", "hunter2secret", "")
	require.NoError(t, err)
	require.NoError(t, svc.Logout(ctx, sess))

	got, _, err := svc.Login(ctx, "ravi", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Nil(t, got)
	assert.Zero(t, sessions.count())
}

func TestLoginUnknownUserSameErrorAsWrongPassword(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService(&fakeUserRepo{}, newFakeSessionStore())

	_, _, err := svc.Login(ctx, "nobody", "whatever123")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogoutDeletesSessionOnly(t *testing.T) {
	ctx := context.Background()
	users := &fakeUserRepo{}
	sessions := newFakeSessionStore()
	svc := newAuthService(users, sessions)

	sess, _, err := svc.Signup(ctx, "ravi", "hunter2secret", "")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, sess))
	assert.Zero(t, sessions.count())
	assert.Equal(t, 1, users.count())

	require.ErrorIs(t, svc.Logout(ctx, nil), ErrNoSession)
}

func TestRefreshRotatesSessionID(t *testing.T) {
	ctx := context.Background()
	users := &fakeUserRepo{}
	sessions := newFakeSessionStore()
	svc := newAuthService(users, sessions)

	sess, pair, err := svc.Signup(ctx, "ravi", "hunter2secret", "")
	require.NoError(t, err)

	rotated, newPair, err := svc.Refresh(ctx, pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, sess.UserID, rotated.UserID)
	assert.NotEqual(t, sess.SID, rotated.SID)
	assert.NotEmpty(t, newPair.AccessToken)

	// The old refresh token's sid no longer matches the stored session.
	_, _, err = svc.Refresh(ctx, pair.RefreshToken)
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestCurrentUserUnknownID(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService(&fakeUserRepo{}, newFakeSessionStore())

	_, err := svc.CurrentUser(ctx, "missing")
	require.ErrorIs(t, err, ErrUserNotFound)
}
