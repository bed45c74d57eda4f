package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/ELEKTROTeam/AURAVINDEXAPI/internal/library/model"
	"github.com/ELEKTROTeam/AURAVINDEXAPI/internal/library/users"
	"github.com/ELEKTROTeam/AURAVINDEXAPI/internal/platform/apierr"
	"github.com/ELEKTROTeam/AURAVINDEXAPI/internal/platform/config"
	"github.com/ELEKTROTeam/AURAVINDEXAPI/internal/platform/mailer"
	"github.com/ELEKTROTeam/AURAVINDEXAPI/internal/platform/store"
)

type Service struct {
	cfg   *config.Config
	users *users.Service
	mail  *mailer.Mailer
}

func NewService(cfg *config.Config, usersSvc *users.Service, mail *mailer.Mailer) *Service {
	return &Service{cfg: cfg, users: usersSvc, mail: mail}
}

// Login verifies the credentials and issues a 24h bearer token carrying the
// user id and role id.
func (s *Service) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		return "", nil, apierr.InvalidLogin()
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, apierr.InvalidLogin()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  user.ID,
		"role": user.RoleID,
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", nil, err
	}
	return signed, user, nil
}

// RequestPasswordReset stores a one-hour token on the user and mails the
// reset link. An unknown email is reported as invalid to avoid revealing
// whether the account exists.
func (s *Service) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return apierr.InvalidLogin()
	}

	token := uuid.NewString()
	expires := time.Now().Add(config.PasswordResetTokenValidityHours * time.Hour)
	if _, err := s.users.Update(ctx, user.ID, map[string]any{
		"reset_token":         token,
		"reset_token_expires": expires,
	}); err != nil {
		return err
	}

	link := fmt.Sprintf("https://%s/reset-password?token=%s", s.cfg.AppMainDomain, token)
	html := fmt.Sprintf("<p>A password reset was requested for your account.</p><p><a href=%q>Reset your password</a></p>", link)
	if err := s.mail.Send(user.Email, "Password reset", html); err != nil {
		return apierr.FailedToSendEmail(user.Email)
	}
	return nil
}

// ResetPassword consumes a reset token and replaces the password.
func (s *Service) ResetPassword(ctx context.Context, token, newPassword string) error {
	if len(newPassword) < config.UserMinPasswordLength {
		return apierr.InvalidPasswordReset()
	}
	matches, err := s.users.Store().Filter(ctx,
		store.Cond{Query: "reset_token = ?", Args: []any{token}}, store.Query{Limit: 1})
	if err != nil {
		return err
	}
	if len(matches) == 0 {
		return apierr.InvalidOrExpiredToken()
	}
	user := matches[0]
	if user.ResetTokenExpires == nil || time.Now().After(*user.ResetTokenExpires) {
		return apierr.InvalidOrExpiredToken()
	}

	if _, err := s.users.Update(ctx, user.ID, map[string]any{
		"password":            newPassword,
		"reset_token":         nil,
		"reset_token_expires": nil,
	}); err != nil {
		return err
	}
	return nil
}
