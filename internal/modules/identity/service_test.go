package identity

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestRegisterThenLogin(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	ctx := context.Background()

	u, err := svc.Register(ctx, "Alice", "pw1", 10.0, 10.0)
	require.NoError(t, err)
	assert.Equal(t, RoleCustomer, u.Role)
	assert.NotEqual(t, "pw1", u.PasswordHash, "password must be hashed at rest")

	got, err := svc.Authenticate(ctx, "Alice", "pw1")
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.Name)
	assert.Equal(t, u.ID, got.ID)

	token, err := svc.Login(ctx, "Alice", "pw1")
	require.NoError(t, err)
	subject, err := svc.Subject(token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, subject)
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	ctx := context.Background()

	_, err := svc.Register(ctx, "Alice", "pw1", 10, 10)
	require.NoError(t, err)

	_, err = svc.Login(ctx, "Alice", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownUser(t *testing.T) {
	svc := NewService(newFakeRepo())

	_, err := svc.Login(context.Background(), "nobody", "pw")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterRejectsOutOfRangeCoordinates(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()

	cases := []struct{ lat, long float64 }{
		{-1, 10},
		{10, -1},
		{100.5, 10},
		{10, 100.5},
	}
	for _, c := range cases {
		_, err := svc.Register(ctx, "bob", "pw", c.lat, c.long)
		assert.Error(t, err)
	}
}

func TestAuthenticateDuplicateNames(t *testing.T) {
	repo := newFakeRepo()
	hash1, _ := bcrypt.GenerateFromPassword([]byte("first"), bcrypt.MinCost)
	hash2, _ := bcrypt.GenerateFromPassword([]byte("second"), bcrypt.MinCost)
	a := repo.addUser("dup", string(hash1), RoleCustomer, 1, 1)
	b := repo.addUser("dup", string(hash2), RoleCustomer, 2, 2)
	svc := NewService(repo)
	ctx := context.Background()

	got, err := svc.Authenticate(ctx, "dup", "second")
	require.NoError(t, err)
	assert.Equal(t, b.ID, got.ID)

	got, err = svc.Authenticate(ctx, "dup", "first")
	require.NoError(t, err)
	assert.Equal(t, a.ID, got.ID)
}

func TestSubjectRejectsGarbageToken(t *testing.T) {
	svc := NewService(newFakeRepo())

	_, err := svc.Subject("not-a-token")
	assert.Error(t, err)
}
