package cli

import (
	"context"
	"errors"
	"os"

	"github.com/dkhromov/docboard/internal/common"
	"github.com/dkhromov/docboard/internal/users"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// authMessage maps a service error to the notification text the user sees.
// Callers cannot distinguish why an operation failed other than through this
// message; fallback covers unexpected failures.
func authMessage(err error, fallback string) string {
	switch {
	case errors.Is(err, common.ErrInvalidCredentials):
		return "Invalid email or password"
	case errors.Is(err, common.ErrDuplicateEmail):
		return "User with this email already exists"
	case errors.Is(err, common.ErrWeakPassword):
		return "Password must be at least 6 characters"
	case errors.Is(err, common.ErrNotFound):
		return "User not found"
	default:
		return fallback
	}
}

// Login prompts for credentials and attempts to authenticate. A service
// failure is converted into an error notification and consumed; the session
// is only replaced on success.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.users.Login(ctx, email, string(password))
	if err != nil {
		a.log.Debug(ctx, "login failed", "email", email, "err", err)
		a.notifier.Error(authMessage(err, "Login failed"))
		return nil
	}

	if err := a.session.Set(ctx, user); err != nil {
		// The login itself succeeded; a persistence failure only means the
		// session will not survive a restart.
		a.log.Warn(ctx, "could not persist session", "err", err)
	}

	a.notifier.Success("Welcome back, " + user.Email)
	return nil
}

// Signup prompts for the new-account form, validates it, and attempts to
// create the account. On success the user still has to log in; signup does
// not replace the session.
func (a *App) Signup(ctx context.Context) error {
	form, err := a.readSignupForm()
	if err != nil {
		return err
	}
	if verr := validateForm(form); verr != nil {
		a.notifier.Error(verr.Error())
		return nil
	}

	user, err := a.users.Signup(ctx, users.NewUser{
		Email:    form.Email,
		Password: form.Password,
		Role:     users.Role(form.Role),
	})
	if err != nil {
		a.log.Debug(ctx, "signup failed", "email", form.Email, "err", err)
		a.notifier.Error(authMessage(err, "Signup failed"))
		return nil
	}

	a.log.Info(ctx, "account created", "email", user.Email, "role", user.Role)
	a.notifier.Success("Account created successfully")
	return nil
}

func (a *App) readSignupForm() (*signupForm, error) {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return nil, err
	}
	role, err := getSimpleText(a.reader, "Enter role (user/admin)", os.Stdout)
	if err != nil {
		return nil, err
	}
	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return nil, err
	}
	defer common.WipeByteArray(password)
	confirm, err := getPassword("Confirm password", os.Stdout)
	if err != nil {
		return nil, err
	}
	defer common.WipeByteArray(confirm)

	return &signupForm{
		Email:           email,
		Role:            role,
		Password:        string(password),
		ConfirmPassword: string(confirm),
	}, nil
}

// Logout clears the session and removes the durable entry. It always
// succeeds from the user's point of view: a storage failure is logged but
// the in-memory session is gone either way.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Clear(ctx); err != nil {
		a.log.Warn(ctx, "could not remove stored session", "err", err)
	}
	a.notifier.Success("Logged out successfully")
	return nil
}

// WhoAmI prints the identity of the current session.
func (a *App) WhoAmI(ctx context.Context) error {
	cur := a.session.Current()
	if cur == nil {
		printlnFn("Not logged in")
		return nil
	}
	printlnFn("Logged in as", cur.Email, "("+string(cur.Role)+", "+string(cur.Status)+")")
	return nil
}
