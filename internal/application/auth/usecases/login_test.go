package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"siloops/internal/application/auth/dto"
	"siloops/internal/domain/user"
	appErrors "siloops/internal/shared/errors"
	"siloops/internal/shared/logger"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	if u := args.Get(0); u != nil {
		return u.(*user.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetBySID(ctx context.Context, sid string) (*user.User, error) {
	args := m.Called(ctx, sid)
	if u := args.Get(0); u != nil {
		return u.(*user.User), args.Error(1)
	}
	return nil, args.Error(1)
}

type stubIssuer struct {
	token string
	err   error
}

func (s stubIssuer) Generate(u *user.User) (string, time.Time, error) {
	if s.err != nil {
		return "", time.Time{}, s.err
	}
	return s.token, time.Now().Add(time.Hour), nil
}

type testLogger struct{}

func (testLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (testLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (testLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (testLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (l testLogger) With(args ...any) logger.Interface             { return l }
func (l testLogger) Named(name string) logger.Interface            { return l }

func memberUser(t *testing.T, email, password string) *user.User {
	t.Helper()
	u, err := user.NewUser(email, password, "cmp_test123", user.RoleMember, 4)
	require.NoError(t, err)
	require.NoError(t, u.SetID(1))
	return u
}

func TestLogin_Success(t *testing.T) {
	repo := new(mockUserRepo)
	u := memberUser(t, "silos@acopio.example", "correct-horse")
	repo.On("GetByEmail", mock.Anything, "silos@acopio.example").Return(u, nil)

	uc := NewLoginUseCase(repo, stubIssuer{token: "signed-token"}, testLogger{})
	result, err := uc.Execute(context.Background(), &dto.LoginDTO{Email: "silos@acopio.example", Password: "correct-horse"})

	require.NoError(t, err)
	assert.Equal(t, "signed-token", result.Token)
	assert.Equal(t, "cmp_test123", result.User.CompanyID)
	assert.Equal(t, "member", result.User.Role)
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := new(mockUserRepo)
	u := memberUser(t, "silos@acopio.example", "correct-horse")
	repo.On("GetByEmail", mock.Anything, "silos@acopio.example").Return(u, nil)

	uc := NewLoginUseCase(repo, stubIssuer{token: "signed-token"}, testLogger{})
	result, err := uc.Execute(context.Background(), &dto.LoginDTO{Email: "silos@acopio.example", Password: "wrong"})

	require.Error(t, err)
	assert.Nil(t, result)
	appErr := appErrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, appErrors.ErrorTypeUnauthorized, appErr.Type)
}

// Unknown emails produce the same error as wrong passwords.
func TestLogin_UnknownEmail(t *testing.T) {
	repo := new(mockUserRepo)
	repo.On("GetByEmail", mock.Anything, "nobody@acopio.example").Return(nil, nil)

	uc := NewLoginUseCase(repo, stubIssuer{token: "signed-token"}, testLogger{})
	_, err := uc.Execute(context.Background(), &dto.LoginDTO{Email: "nobody@acopio.example", Password: "whatever"})

	require.Error(t, err)
	appErr := appErrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, appErrors.ErrorTypeUnauthorized, appErr.Type)
}

func TestRegisterUser_DuplicateEmail(t *testing.T) {
	repo := new(mockUserRepo)
	u := memberUser(t, "silos@acopio.example", "correct-horse")
	repo.On("GetByEmail", mock.Anything, "silos@acopio.example").Return(u, nil)

	uc := NewRegisterUserUseCase(repo, 4, testLogger{})
	_, err := uc.Execute(context.Background(), &dto.RegisterUserDTO{
		Email: "silos@acopio.example", Password: "another-pass", CompanyID: "cmp_test123", Role: "member",
	})

	require.Error(t, err)
	appErr := appErrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, appErrors.ErrorTypeConflict, appErr.Type)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegisterUser_TokenIssuerFailureSurfaced(t *testing.T) {
	repo := new(mockUserRepo)
	u := memberUser(t, "silos@acopio.example", "correct-horse")
	repo.On("GetByEmail", mock.Anything, "silos@acopio.example").Return(u, nil)

	uc := NewLoginUseCase(repo, stubIssuer{err: errors.New("bad key")}, testLogger{})
	_, err := uc.Execute(context.Background(), &dto.LoginDTO{Email: "silos@acopio.example", Password: "correct-horse"})

	require.Error(t, err)
}
