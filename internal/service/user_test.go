package service

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Skotchmaster/marketplace/internal/apperr"
	"github.com/Skotchmaster/marketplace/internal/models"
	"github.com/Skotchmaster/marketplace/internal/repo"
	"github.com/Skotchmaster/marketplace/internal/tokens"
)

func newTestRepo(t *testing.T) *repo.GormRepo {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to connect to in-memory db: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Product{}); err != nil {
		t.Fatalf("failed to migrate tables: %v", err)
	}

	return &repo.GormRepo{DB: db}
}

func newUserService(t *testing.T) *UserService {
	return &UserService{
		Repo:      newTestRepo(t),
		JWTSecret: []byte("test-jwt-secret"),
	}
}

func TestUserService_Register(t *testing.T) {
	t.Parallel()

	svc := newUserService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, "Alice", "a@x.com", "secret1")
	require.NoError(t, err)
	require.NotZero(t, user.ID)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.Equal(t, models.StatusActive, user.Status)
	assert.NotEqual(t, "secret1", user.PasswordHash)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	t.Parallel()

	svc := newUserService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "Alice", "a@x.com", "secret1")
	require.NoError(t, err)

	// Different name and password must not matter, only the email.
	_, err = svc.Register(ctx, "Alicia", "a@x.com", "other-secret")
	require.ErrorIs(t, err, apperr.ErrDuplicateEmail)
}

func TestUserService_Login_InvalidCredentialsIndistinguishable(t *testing.T) {
	t.Parallel()

	svc := newUserService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "Alice", "a@x.com", "secret1")
	require.NoError(t, err)

	_, errWrongPassword := svc.Login(ctx, "a@x.com", "wrong")
	_, errUnknownEmail := svc.Login(ctx, "nobody@x.com", "secret1")

	require.ErrorIs(t, errWrongPassword, apperr.ErrInvalidCredentials)
	require.ErrorIs(t, errUnknownEmail, apperr.ErrInvalidCredentials)
	assert.Equal(t, errWrongPassword.Error(), errUnknownEmail.Error())
}

func TestUserService_Login_Success(t *testing.T) {
	t.Parallel()

	svc := newUserService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, "Alice", "a@x.com", "secret1")
	require.NoError(t, err)

	result, err := svc.Login(ctx, "a@x.com", "secret1")
	require.NoError(t, err)
	require.NotEmpty(t, result.Token)
	assert.Equal(t, user.ID, result.User.ID)

	claims, err := tokens.Parse(result.Token, svc.JWTSecret)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Equal(t, models.RoleUser, claims.Role)
}

func TestUserService_Login_BannedBeforeCredentials(t *testing.T) {
	t.Parallel()

	svc := newUserService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, "Alice", "a@x.com", "secret1")
	require.NoError(t, err)
	require.NoError(t, svc.Ban(ctx, user.ID))

	// With the right password the ban wins.
	_, err = svc.Login(ctx, "a@x.com", "secret1")
	require.ErrorIs(t, err, apperr.ErrAccountBanned)

	// With a wrong password the ban still wins: the password check never
	// gets to speak for a banned account.
	_, err = svc.Login(ctx, "a@x.com", "wrong")
	require.ErrorIs(t, err, apperr.ErrAccountBanned)
}

func TestUserService_Ban_AdminAlwaysFails(t *testing.T) {
	t.Parallel()

	svc := newUserService(t)
	ctx := context.Background()

	admin := models.User{
		Name:         "Admin User",
		Email:        "admin@example.com",
		PasswordHash: "x",
		Role:         models.RoleAdmin,
		Status:       models.StatusActive,
	}
	require.NoError(t, svc.Repo.DB.Create(&admin).Error)

	err := svc.Ban(ctx, admin.ID)
	require.ErrorIs(t, err, apperr.ErrCannotBanUser)

	got, err := svc.GetByID(ctx, admin.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusActive, got.Status)
}

func TestUserService_Ban_MissingUser(t *testing.T) {
	t.Parallel()

	svc := newUserService(t)

	err := svc.Ban(context.Background(), 9999)
	require.ErrorIs(t, err, apperr.ErrCannotBanUser)
}

func TestUserService_Ban_Idempotent(t *testing.T) {
	t.Parallel()

	svc := newUserService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, "Alice", "a@x.com", "secret1")
	require.NoError(t, err)

	require.NoError(t, svc.Ban(ctx, user.ID))
	require.NoError(t, svc.Ban(ctx, user.ID))

	got, err := svc.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusBanned, got.Status)
}

func TestUserService_RegisterBanLoginScenario(t *testing.T) {
	t.Parallel()

	svc := newUserService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, "Alice", "a@x.com", "secret1")
	require.NoError(t, err)

	result, err := svc.Login(ctx, "a@x.com", "secret1")
	require.NoError(t, err)
	require.NotEmpty(t, result.Token)

	require.NoError(t, svc.Ban(ctx, user.ID))

	_, err = svc.Login(ctx, "a@x.com", "secret1")
	require.ErrorIs(t, err, apperr.ErrAccountBanned)
}

func TestUserService_Unban(t *testing.T) {
	t.Parallel()

	svc := newUserService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, "Alice", "a@x.com", "secret1")
	require.NoError(t, err)
	require.NoError(t, svc.Ban(ctx, user.ID))
	require.NoError(t, svc.Unban(ctx, user.ID))

	_, err = svc.Login(ctx, "a@x.com", "secret1")
	require.NoError(t, err)

	require.ErrorIs(t, svc.Unban(ctx, 9999), apperr.ErrUserNotFound)
}

func TestUserService_ListAll_NewestFirst(t *testing.T) {
	t.Parallel()

	svc := newUserService(t)
	ctx := context.Background()

	first, err := svc.Register(ctx, "Alice", "a@x.com", "secret1")
	require.NoError(t, err)
	second, err := svc.Register(ctx, "Bob", "b@x.com", "secret1")
	require.NoError(t, err)

	users, err := svc.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)

	// Same-second timestamps fall back to the id tiebreak.
	assert.Equal(t, second.ID, users[0].ID)
	assert.Equal(t, first.ID, users[1].ID)
}

func TestUserService_GetByID_Missing(t *testing.T) {
	t.Parallel()

	svc := newUserService(t)

	_, err := svc.GetByID(context.Background(), 9999)
	require.ErrorIs(t, err, apperr.ErrUserNotFound)
}
