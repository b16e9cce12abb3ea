package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/user/bloglist-go/apperror"
)

type fakeUsers struct {
	byName map[string]*User
	nextID int64

	createCalls int
	createErr   error
	getErr      error
}

var _ UserRepository = (*fakeUsers)(nil)

func (f *fakeUsers) Create(_ context.Context, u *User) error {
	f.createCalls++
	if f.createErr != nil {
		return f.createErr
	}
	if f.byName == nil {
		f.byName = map[string]*User{}
	}
	if _, exists := f.byName[u.Username]; exists {
		return apperror.NewDuplicateKeyError("expected `username` to be unique", nil)
	}
	f.nextID++
	u.ID = f.nextID
	u.CreatedAt = time.Now()
	cpy := *u
	f.byName[u.Username] = &cpy
	return nil
}

func (f *fakeUsers) GetByUsername(_ context.Context, username string) (*User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	u, ok := f.byName[username]
	if !ok {
		return nil, apperror.NewNotFoundError("user not found", nil)
	}
	cpy := *u
	return &cpy, nil
}

func newTestService(users *fakeUsers) *Service {
	return NewService(users, NewTokenAuthority("test-secret", time.Hour), zap.NewNop())
}

func TestRegister_ShortUsername(t *testing.T) {
	t.Parallel()

	users := &fakeUsers{}
	s := newTestService(users)

	_, err := s.Register(context.Background(), RegisterRequest{
		Username: "ro", Name: "Robert", Password: "sekret",
	})
	require.Error(t, err)
	require.True(t, apperror.IsValidationError(err))
	require.Contains(t, err.Error(), "username")
	require.Zero(t, users.createCalls, "validation must run before any store access")
}

func TestRegister_ShortPassword(t *testing.T) {
	t.Parallel()

	users := &fakeUsers{}
	s := newTestService(users)

	_, err := s.Register(context.Background(), RegisterRequest{
		Username: "robert", Name: "Robert", Password: "sa",
	})
	require.Error(t, err)
	require.True(t, apperror.IsValidationError(err))
	require.Contains(t, err.Error(), "password must be long")
	require.Zero(t, users.createCalls)
}

func TestRegister_Success(t *testing.T) {
	t.Parallel()

	users := &fakeUsers{}
	s := newTestService(users)

	user, err := s.Register(context.Background(), RegisterRequest{
		Username: "mluukkai", Name: "Matti Luukkainen", Password: "salainen",
	})
	require.NoError(t, err)
	require.NotZero(t, user.ID)
	require.Equal(t, "mluukkai", user.Username)
	require.Empty(t, user.PasswordHash, "returned user must not carry the hash")

	// The stored hash verifies against the original password and is not the
	// plaintext itself.
	stored := users.byName["mluukkai"]
	require.NotEqual(t, "salainen", stored.PasswordHash)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("salainen")))
}

func TestRegister_DuplicateUsername(t *testing.T) {
	t.Parallel()

	users := &fakeUsers{}
	s := newTestService(users)

	_, err := s.Register(context.Background(), RegisterRequest{
		Username: "root", Name: "Superuser", Password: "sekret",
	})
	require.NoError(t, err)

	_, err = s.Register(context.Background(), RegisterRequest{
		Username: "root", Name: "Impostor", Password: "sekret2",
	})
	require.Error(t, err)
	require.True(t, apperror.IsDuplicateKey(err))
	require.Contains(t, err.Error(), "expected `username` to be unique")
	require.Len(t, users.byName, 1, "failed registration leaves the store unchanged")
}

func TestLogin_UnknownUserAndWrongPasswordLookAlike(t *testing.T) {
	t.Parallel()

	users := &fakeUsers{}
	s := newTestService(users)

	_, err := s.Register(context.Background(), RegisterRequest{
		Username: "alice", Name: "Alice", Password: "correct"})
	require.NoError(t, err)

	_, errUnknown := s.Login(context.Background(), LoginRequest{Username: "nobody", Password: "x"})
	_, errWrongPwd := s.Login(context.Background(), LoginRequest{Username: "alice", Password: "wrong"})

	require.Error(t, errUnknown)
	require.Error(t, errWrongPwd)
	require.True(t, apperror.IsAuthenticationError(errUnknown))
	require.True(t, apperror.IsAuthenticationError(errWrongPwd))

	// The two causes must be indistinguishable to the caller.
	appUnknown, _ := apperror.FromError(errUnknown)
	appWrongPwd, _ := apperror.FromError(errWrongPwd)
	require.Equal(t, "invalid username or password", appUnknown.Message)
	require.Equal(t, appUnknown.Message, appWrongPwd.Message)
}

func TestLogin_Success(t *testing.T) {
	t.Parallel()

	users := &fakeUsers{}
	tokens := NewTokenAuthority("test-secret", time.Hour)
	s := NewService(users, tokens, zap.NewNop())

	registered, err := s.Register(context.Background(), RegisterRequest{
		Username: "alice", Name: "Alice Example", Password: "correct"})
	require.NoError(t, err)

	resp, err := s.Login(context.Background(), LoginRequest{Username: "alice", Password: "correct"})
	require.NoError(t, err)
	require.Equal(t, "alice", resp.Username)
	require.Equal(t, "Alice Example", resp.Name)
	require.NotEmpty(t, resp.Token)

	// The token binds the account identity.
	claims, err := tokens.Verify(resp.Token)
	require.NoError(t, err)
	require.Equal(t, registered.ID, claims.UserID)
	require.Equal(t, "alice", claims.Username)
}
