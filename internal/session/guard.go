package session

import (
	"context"
	"log/slog"

	"github.com/poscatcafe/pos-terminal/internal/api"
	apperrors "github.com/poscatcafe/pos-terminal/internal/errors"
	"github.com/poscatcafe/pos-terminal/internal/models"
)

// Guard gates every page behind a live session. Any validation outcome other
// than an explicit "valid" - including network failure - clears the stored
// credentials, so the next start lands on login.
type Guard struct {
	store *Store
	auth  api.AuthAPI
}

func NewGuard(store *Store, auth api.AuthAPI) *Guard {
	return &Guard{store: store, auth: auth}
}

// Check validates the stored token against the server and returns the cached
// user on success. On any failure the credentials are cleared and an
// unauthorized error is returned.
func (g *Guard) Check(ctx context.Context) (*models.User, error) {

	if !g.store.HasCredentials() {
		return nil, apperrors.UnauthorizedError("No stored session")
	}

	valid, err := g.auth.Validate(ctx)
	if err != nil || !valid {

		if err != nil {
			slog.Error("Session validation failed", slog.String("error", err.Error()))
		}

		g.store.Clear()

		return nil, apperrors.UnauthorizedError("Session is invalid or expired")
	}

	return g.store.User(), nil
}

func (g *Guard) Login(ctx context.Context, username, password string) (*models.User, error) {

	resp, err := g.auth.Login(ctx, models.LoginRequest{Username: username, Password: password})
	if err != nil {
		return nil, err
	}

	if !resp.Success || resp.Token == "" || resp.User == nil {

		message := resp.Message
		if message == "" {
			message = "Login failed"
		}

		return nil, apperrors.UnauthorizedError(message)
	}

	if err := g.store.Save(resp.Token, *resp.User); err != nil {
		return nil, err
	}

	slog.Info("Logged in", slog.String("user", resp.User.Name), slog.String("role", resp.User.Role))

	return resp.User, nil
}

// Logout tells the server best-effort and always clears local credentials.
func (g *Guard) Logout(ctx context.Context) {

	if g.store.Token() != "" {
		if err := g.auth.Logout(ctx); err != nil {
			slog.Warn("Server logout failed", slog.String("error", err.Error()))
		}
	}

	g.store.Clear()
}

// RequireAdmin is the UX gate for the employee panel. It is cosmetic only;
// the server must enforce authorization on every request regardless.
func RequireAdmin(user *models.User) error {

	if user == nil || !user.IsAdmin() {
		return apperrors.ForbiddenError("This page requires an administrator account")
	}

	return nil
}
