package service

import (
	"context"
	"errors"

	"github.com/Skotchmaster/marketplace/internal/apperr"
	"github.com/Skotchmaster/marketplace/internal/hash"
	"github.com/Skotchmaster/marketplace/internal/logging"
	"github.com/Skotchmaster/marketplace/internal/models"
	"github.com/Skotchmaster/marketplace/internal/repo"
	"github.com/Skotchmaster/marketplace/internal/tokens"
)

type UserService struct {
	Repo      *repo.GormRepo
	JWTSecret []byte
}

type LoginResult struct {
	User  *models.User
	Token string
}

func (s *UserService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	l := logging.FromContext(ctx).With("svc", "user.register")

	pwHash, err := hash.HashPassword(password)
	if err != nil {
		l.Error("register_failed", "status", 500, "reason", "cannot hash the password", "error", err)
		return nil, err
	}

	user := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: pwHash,
		Role:         models.RoleUser,
		Status:       models.StatusActive,
	}

	if err := s.Repo.CreateUser(ctx, &user); err != nil {
		if errors.Is(err, apperr.ErrDuplicateEmail) {
			l.Warn("register_failed", "status", 400, "reason", "email already registered")
			return nil, err
		}
		l.Error("register_failed", "status", 500, "reason", "db_error", "error", err)
		return nil, err
	}

	l.Info("register_success", "user_id", user.ID)
	return &user, nil
}

// Login checks ban status strictly before the password comparison result is
// exposed: a banned user learns they are banned, not whether the password was
// right. Unknown email and wrong password return the same error.
func (s *UserService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	l := logging.FromContext(ctx).With("svc", "user.login")

	user, err := s.Repo.UserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperr.ErrUserNotFound) {
			l.Warn("login_failed", "status", 401, "reason", "unknown email")
			return nil, apperr.ErrInvalidCredentials
		}
		l.Error("login_failed", "status", 500, "error", err)
		return nil, err
	}

	if user.Status == models.StatusBanned {
		l.Warn("login_failed", "status", 401, "reason", "account banned", "user_id", user.ID)
		return nil, apperr.ErrAccountBanned
	}

	if !hash.CheckPassword(user.PasswordHash, password) {
		l.Warn("login_failed", "status", 401, "reason", "wrong password", "user_id", user.ID)
		return nil, apperr.ErrInvalidCredentials
	}

	token, err := tokens.Sign(user.ID, user.Email, user.Role, s.JWTSecret)
	if err != nil {
		l.Error("login_failed", "status", 500, "reason", "cannot sign token", "error", err)
		return nil, err
	}

	l.Info("login_success", "user_id", user.ID)
	return &LoginResult{User: user, Token: token}, nil
}

func (s *UserService) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.Repo.UserByID(ctx, id)
}

func (s *UserService) ListAll(ctx context.Context) ([]models.User, error) {
	return s.Repo.ListUsers(ctx)
}

func (s *UserService) Ban(ctx context.Context, id uint) error {
	l := logging.FromContext(ctx).With("svc", "user.ban", "user_id", id)
	if err := s.Repo.BanUser(ctx, id); err != nil {
		if errors.Is(err, apperr.ErrCannotBanUser) {
			l.Warn("ban_failed", "status", 400, "reason", "not found or admin")
		} else {
			l.Error("ban_failed", "status", 500, "error", err)
		}
		return err
	}
	l.Info("ban_success")
	return nil
}

func (s *UserService) Unban(ctx context.Context, id uint) error {
	l := logging.FromContext(ctx).With("svc", "user.unban", "user_id", id)
	if err := s.Repo.UnbanUser(ctx, id); err != nil {
		if errors.Is(err, apperr.ErrUserNotFound) {
			l.Warn("unban_failed", "status", 400, "reason", "not found")
		} else {
			l.Error("unban_failed", "status", 500, "error", err)
		}
		return err
	}
	l.Info("unban_success")
	return nil
}
