package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dkhromov/docboard/internal/common"
	"github.com/dkhromov/docboard/internal/users"
)

// Users renders the user directory. Admin only.
func (a *App) Users(ctx context.Context) error {
	if err := a.requireAdmin(); err != nil {
		a.notifier.Error("Admin role required")
		return nil
	}
	return a.renderUsers(ctx)
}

// renderUsers fetches a fresh snapshot from the directory and prints it.
// The list is re-fetched after every mutation; the printed table is never
// a cached copy.
func (a *App) renderUsers(ctx context.Context) error {
	list, err := a.users.List(ctx)
	if err != nil {
		a.notifier.Error("Could not load users")
		return nil
	}

	printlnFn(fmt.Sprintf("%-36s  %-28s  %-6s  %-8s  %s", "ID", "EMAIL", "ROLE", "STATUS", "LAST LOGIN"))
	for _, u := range list {
		printlnFn(fmt.Sprintf("%-36s  %-28s  %-6s  %-8s  %s",
			u.ID, u.Email, u.Role, u.Status, u.LastLogin.Format("2006-01-02 15:04")))
	}
	return nil
}

// AddUser creates an account on behalf of an administrator. It shares the
// signup form (and its validation) with the self-service flow.
func (a *App) AddUser(ctx context.Context) error {
	if err := a.requireAdmin(); err != nil {
		a.notifier.Error("Admin role required")
		return nil
	}

	form, err := a.readSignupForm()
	if err != nil {
		return err
	}
	if verr := validateForm(form); verr != nil {
		a.notifier.Error(verr.Error())
		return nil
	}

	u, err := a.users.Signup(ctx, users.NewUser{
		Email:    form.Email,
		Password: form.Password,
		Role:     users.Role(form.Role),
	})
	if err != nil {
		a.notifier.Error(authMessage(err, "Could not create user"))
		return nil
	}

	a.log.Info(ctx, "user created by admin", "email", u.Email, "role", u.Role)
	a.notifier.Success("Account created successfully")
	return a.renderUsers(ctx)
}

// EditUser applies an administrative update (email/role/status, optional
// new password) to an existing record by id.
func (a *App) EditUser(ctx context.Context) error {
	if err := a.requireAdmin(); err != nil {
		a.notifier.Error("Admin role required")
		return nil
	}

	id, err := getSimpleText(a.reader, "Enter user id", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	role, err := getSimpleText(a.reader, "Enter role (user/admin)", os.Stdout)
	if err != nil {
		return err
	}
	status, err := getSimpleText(a.reader, "Enter status (active/inactive)", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword("Enter new password (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	var confirm []byte
	if len(password) > 0 {
		confirm, err = getPassword("Confirm new password", os.Stdout)
		if err != nil {
			return err
		}
		defer common.WipeByteArray(confirm)
	}

	form := &updateForm{
		ID:              id,
		Email:           email,
		Role:            role,
		Status:          status,
		Password:        string(password),
		ConfirmPassword: string(confirm),
	}
	if verr := validateForm(form); verr != nil {
		a.notifier.Error(verr.Error())
		return nil
	}

	u, err := a.users.Update(ctx, users.Update{
		ID:       id,
		Email:    email,
		Password: string(password),
		Role:     users.Role(role),
		Status:   users.Status(status),
	})
	if err != nil {
		a.notifier.Error(authMessage(err, "Could not update user"))
		return nil
	}

	a.log.Info(ctx, "user updated", "id", u.ID, "email", u.Email)
	a.notifier.Success("User updated successfully")
	return a.renderUsers(ctx)
}
