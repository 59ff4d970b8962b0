package cli

import (
	"context"
	"os"

	"github.com/beantz/labersaler/internal/client/models"
)

// Profile prints the logged-in user's account data.
func (a *App) Profile(ctx context.Context) error {

	userID, ok := a.requireUserID()
	if !ok {
		return nil
	}

	user, err := a.profile.Get(ctx, userID)
	if err != nil {
		a.notify(ctx, err)
		return err
	}

	printlnFn("Name:  " + user.Name)
	printlnFn("Email: " + user.Email)
	printlnFn("Phone: " + user.Phone)
	return nil
}

// EditProfile updates the account fields. An empty answer keeps the current
// value.
func (a *App) EditProfile(ctx context.Context) error {

	userID, ok := a.requireUserID()
	if !ok {
		return nil
	}

	current, err := a.profile.Get(ctx, userID)
	if err != nil {
		a.notify(ctx, err)
		return err
	}

	name, err := GetSimpleText(a.reader, "Name ["+current.Name+"]", os.Stdout)
	if err != nil {
		return err
	}
	email, err := GetSimpleText(a.reader, "Email ["+current.Email+"]", os.Stdout)
	if err != nil {
		return err
	}
	phone, err := GetSimpleText(a.reader, "Phone ["+current.Phone+"]", os.Stdout)
	if err != nil {
		return err
	}

	update := models.ProfileUpdate{Name: current.Name, Email: current.Email, Phone: current.Phone}
	if name != "" {
		update.Name = name
	}
	if email != "" {
		update.Email = email
	}
	if phone != "" {
		update.Phone = phone
	}

	user, err := a.profile.Update(ctx, userID, update)
	if err != nil {
		a.notify(ctx, err)
		return err
	}

	if a.session != nil && user.Name != "" {
		a.session.Name = user.Name
	}
	printlnFn("Profile updated.")
	return nil
}
