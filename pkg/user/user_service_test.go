package user

import (
	"Smart-Fridge-Backend/domain"
	"Smart-Fridge-Backend/pkg/jwt"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() UserService {
	return NewUserService(NewMemoryUserRepository(), jwt.NewJWTService())
}

func TestRegisterAndLogin(t *testing.T) {
	service := newTestService()

	registered, err := service.Register(context.Background(), domain.RegisterRequest{
		Name:     "Somchai",
		Email:    "somchai@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, registered.ID)
	assert.Equal(t, "somchai@example.com", registered.Email)

	login, err := service.Login(context.Background(), domain.LoginRequest{
		Email:    "somchai@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, login.Token)
	assert.Equal(t, domain.RoleUser, login.Role)

	me, err := service.Me(context.Background(), registered.ID)
	require.NoError(t, err)
	assert.Equal(t, "Somchai", me.Name)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	service := newTestService()

	_, err := service.Register(context.Background(), domain.RegisterRequest{
		Name:     "Somchai",
		Email:    "somchai@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)

	_, err = service.Register(context.Background(), domain.RegisterRequest{
		Name:     "Somsak",
		Email:    "somchai@example.com",
		Password: "anothersecret",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLoginInvalidCredentials(t *testing.T) {
	service := newTestService()

	_, err := service.Register(context.Background(), domain.RegisterRequest{
		Name:     "Somchai",
		Email:    "somchai@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)

	_, err = service.Login(context.Background(), domain.LoginRequest{
		Email:    "somchai@example.com",
		Password: "wrongpassword",
	})
	assert.ErrorIs(t, err, domain.ErrCredentialsInvalid)

	_, err = service.Login(context.Background(), domain.LoginRequest{
		Email:    "nobody@example.com",
		Password: "supersecret",
	})
	assert.ErrorIs(t, err, domain.ErrCredentialsInvalid)
}
