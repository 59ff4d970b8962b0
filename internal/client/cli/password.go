package cli

import (
	"context"
	"os"

	"github.com/beantz/labersaler/internal/deeplink"
	"github.com/beantz/labersaler/internal/shared"
)

// ForgotPassword runs the recovery loop: request a code by e-mail, validate
// it, then set the new password. The user may paste either the bare code or
// the full reset link from the e-mail.
func (a *App) ForgotPassword(ctx context.Context) error {

	email, err := GetSimpleText(a.reader, "Enter the account e-mail", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.auth.RequestPasswordReset(ctx, email); err != nil {
		a.notify(ctx, err)
		return err
	}
	printlnFn("Check your inbox for the recovery code.")

	input, err := GetSimpleText(a.reader, "Paste the code or the reset link", os.Stdout)
	if err != nil {
		return err
	}
	code := input
	if token, ok := deeplink.ResetToken(input); ok {
		code = token
	}

	if err := a.auth.ValidateResetCode(ctx, email, code); err != nil {
		a.notify(ctx, err)
		return err
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer shared.WipeByteArray(password)

	if err := a.auth.ResetPassword(ctx, code, string(password)); err != nil {
		a.notify(ctx, err)
		return err
	}

	printlnFn("Password changed. You can log in now.")
	return nil
}
