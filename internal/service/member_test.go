package service

import (
	"context"
	"testing"
	"time"

	"aquarium-storefront/internal/auth"
	"aquarium-storefront/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testIdpSecret = "idp-test-secret"

func newMemberService(t *testing.T, provider auth.Provider) MemberService {
	t.Helper()
	f := newFixture(t)
	return NewMemberService(
		provider,
		auth.NewSessions("session-test-secret", time.Hour),
		repository.NewMemberRepository(f.db),
	)
}

func TestMemberDemoLogin(t *testing.T) {
	ctx := context.Background()
	members := newMemberService(t, auth.NewDemoProvider())

	result, err := members.Login(ctx, "google", "")
	require.NoError(t, err)

	assert.Equal(t, "demo", result.Provider)
	assert.Equal(t, "demo", members.ProviderName())
	assert.Regexp(t, `^demo_`, result.Member.UID)
	assert.Equal(t, "google_user@example.com", result.Member.Email)
	assert.Equal(t, "Demo Google User", result.Member.DisplayName)
	assert.Equal(t, "google", result.Member.ProviderID)

	memberID, err := members.Authenticate(result.Token)
	require.NoError(t, err)
	assert.Equal(t, result.Member.UID, memberID)

	profile, err := members.Profile(ctx, memberID)
	require.NoError(t, err)
	assert.Equal(t, result.Member.Email, profile.Email)
}

func TestMemberTokenLogin(t *testing.T) {
	ctx := context.Background()
	members := newMemberService(t, auth.NewTokenProvider([]byte(testIdpSecret)))

	credential, err := auth.IssueIdentityToken([]byte(testIdpSecret), &auth.Identity{
		UID:         "line-42",
		Email:       "fish@example.com",
		DisplayName: "Fish Fan",
		Method:      auth.MethodLine,
	}, time.Minute)
	require.NoError(t, err)

	result, err := members.Login(ctx, "line", credential)
	require.NoError(t, err)
	assert.Equal(t, "token", result.Provider)
	assert.Equal(t, "line-42", result.Member.UID)
	assert.Equal(t, "Fish Fan", result.Member.DisplayName)

	_, err = members.Login(ctx, "google", credential)
	assert.ErrorIs(t, err, ErrInvalidCredential)

	_, err = members.Login(ctx, "line", "not-a-token")
	assert.ErrorIs(t, err, ErrInvalidCredential)
}

func TestMemberLoginUnsupportedMethod(t *testing.T) {
	members := newMemberService(t, auth.NewDemoProvider())

	_, err := members.Login(context.Background(), "myspace", "")
	assert.ErrorIs(t, err, ErrUnsupportedLoginMethod)
}

func TestMemberProfileRequiresLogin(t *testing.T) {
	members := newMemberService(t, auth.NewDemoProvider())

	_, err := members.Profile(context.Background(), "")
	assert.ErrorIs(t, err, ErrNotLoggedIn)

	_, err = members.Profile(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrNotLoggedIn)

	_, err = members.Authenticate("garbage")
	assert.ErrorIs(t, err, auth.ErrInvalidSession)
}
