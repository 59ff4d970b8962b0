package cli

import (
	"context"
	"os"

	"github.com/beantz/labersaler/internal/client/models"
	"github.com/beantz/labersaler/internal/shared"
)

// Register creates a new account and leaves the user at the login prompt.
func (a *App) Register(ctx context.Context) error {

	name, err := GetSimpleText(a.reader, "Enter your name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := GetSimpleText(a.reader, "Enter e-mail", os.Stdout)
	if err != nil {
		return err
	}
	phone, err := GetSimpleText(a.reader, "Enter phone (WhatsApp)", os.Stdout)
	if err != nil {
		return err
	}
	password, err := GetPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer shared.WipeByteArray(password)

	reg := models.Registration{
		Name:     name,
		Email:    email,
		Phone:    phone,
		Password: string(password),
	}

	if err := a.auth.Register(ctx, reg); err != nil {
		a.notify(ctx, err)
		return err
	}

	printlnFn("Account created. You can log in now.")
	return nil
}

func (a *App) Login(ctx context.Context) error {

	email, err := GetSimpleText(a.reader, "Enter e-mail", os.Stdout)
	if err != nil {
		return err
	}
	password, err := GetPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer shared.WipeByteArray(password)

	session, err := a.auth.Login(ctx, email, string(password))
	if err != nil {
		a.notify(ctx, err)
		return err
	}

	a.session = session
	if session.Name != "" {
		printlnFn("Logged in as " + session.Name)
	} else {
		printlnFn("Logged in.")
	}
	return nil
}

// Logout drops the session both server-side and locally. The local state is
// cleared even when the server call fails.
func (a *App) Logout(ctx context.Context) error {
	err := a.auth.Logout(ctx)
	a.session = nil
	if err != nil {
		a.notify(ctx, err)
		return err
	}
	printlnFn("Logged out.")
	return nil
}
