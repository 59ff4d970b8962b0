package cli

import (
	"context"
	"os"

	"github.com/beantz/labersaler/internal/client/models"
)

// AddReview rates a book on behalf of the logged-in user.
func (a *App) AddReview(ctx context.Context) error {

	bookID, err := GetInt(a.reader, "Enter book id", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	rating, err := GetInt(a.reader, "Rating (1-5)", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	comment, err := GetSimpleText(a.reader, "Comment", os.Stdout)
	if err != nil {
		return err
	}

	review := models.NewReview{BookID: bookID, Rating: rating, Comment: comment}
	if err := a.reviews.Create(ctx, review); err != nil {
		a.notify(ctx, err)
		return err
	}

	printlnFn("Review published.")
	return nil
}

// DeleteReview removes one of the user's own reviews.
func (a *App) DeleteReview(ctx context.Context) error {

	id, err := GetInt(a.reader, "Enter the id of the review to delete", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	if err := a.reviews.Delete(ctx, id); err != nil {
		a.notify(ctx, err)
		return err
	}

	printlnFn("Review deleted.")
	return nil
}
