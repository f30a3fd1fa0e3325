package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"messages/internal/repository/memory"
)

func newAuthFixture(ttl time.Duration) (*memory.Store, AuthService) {
	store := memory.NewStore()
	svc := NewAuthService(store.Users, ttl, discardLogger())
	return store, svc
}

func TestAuthService_RegisterAndLogin(t *testing.T) {
	req := require.New(t)
	_, svc := newAuthFixture(time.Hour)

	user, err := svc.Register("maria", "secret")
	req.NoError(err)
	req.NotZero(user.ID)
	req.Equal("maria", user.Username)

	session, err := svc.Login("maria", "secret")
	req.NoError(err)
	req.NotEmpty(session.Token)
	req.Equal("maria", session.Username)

	identity, err := svc.ResolveToken(session.Token)
	req.NoError(err)
	req.NotNil(identity)
	req.Equal(user.ID, identity.UserID)
}

func TestAuthService_Register_DuplicateUsername(t *testing.T) {
	req := require.New(t)
	_, svc := newAuthFixture(time.Hour)

	_, err := svc.Register("maria", "secret")
	req.NoError(err)

	_, err = svc.Register("maria", "other")
	var conflict *ConflictError
	req.ErrorAs(err, &conflict)
}

func TestAuthService_Register_InvalidPayload(t *testing.T) {
	req := require.New(t)
	_, svc := newAuthFixture(time.Hour)

	var validation *ValidationError

	_, err := svc.Register("", "secret")
	req.ErrorAs(err, &validation)

	_, err = svc.Register("maria", "x")
	req.ErrorAs(err, &validation)
}

func TestAuthService_Login_WrongCredentials(t *testing.T) {
	req := require.New(t)
	_, svc := newAuthFixture(time.Hour)

	_, err := svc.Register("maria", "secret")
	req.NoError(err)

	_, err = svc.Login("maria", "wrong")
	req.ErrorIs(err, ErrInvalidCredentials)

	_, err = svc.Login("ghost", "secret")
	req.ErrorIs(err, ErrInvalidCredentials)
}

func TestAuthService_ResolveToken_Unknown(t *testing.T) {
	req := require.New(t)
	_, svc := newAuthFixture(time.Hour)

	identity, err := svc.ResolveToken("nope")
	req.NoError(err)
	req.Nil(identity)

	identity, err = svc.ResolveToken("")
	req.NoError(err)
	req.Nil(identity)
}

func TestAuthService_ResolveToken_Expired(t *testing.T) {
	req := require.New(t)
	_, svc := newAuthFixture(-time.Minute)

	_, err := svc.Register("maria", "secret")
	req.NoError(err)

	session, err := svc.Login("maria", "secret")
	req.NoError(err)

	identity, err := svc.ResolveToken(session.Token)
	req.NoError(err)
	req.Nil(identity)
}

func TestAuthService_Logout(t *testing.T) {
	req := require.New(t)
	_, svc := newAuthFixture(time.Hour)

	_, err := svc.Register("maria", "secret")
	req.NoError(err)
	session, err := svc.Login("maria", "secret")
	req.NoError(err)

	req.NoError(svc.Logout(session.Token))

	identity, err := svc.ResolveToken(session.Token)
	req.NoError(err)
	req.Nil(identity)
}
