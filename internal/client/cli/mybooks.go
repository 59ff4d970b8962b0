package cli

import (
	"context"
	"fmt"
	"os"
)

// MyBooks lists the listings published by the logged-in user.
func (a *App) MyBooks(ctx context.Context) error {

	userID, ok := a.requireUserID()
	if !ok {
		return nil
	}

	books, err := a.books.Mine(ctx, userID)
	if err != nil {
		a.notify(ctx, err)
		return err
	}

	if len(books) == 0 {
		printlnFn("You have no listings.")
		return nil
	}
	for _, b := range books {
		printlnFn(fmt.Sprintf("[%d] %s — %s (R$ %.2f)", b.ID, b.Title, b.Author, b.Price))
	}
	return nil
}

// DeleteBook removes one of the user's own listings.
func (a *App) DeleteBook(ctx context.Context) error {

	id, err := GetInt(a.reader, "Enter the id of the listing to delete", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	if err := a.books.Delete(ctx, id); err != nil {
		a.notify(ctx, err)
		return err
	}

	printlnFn("Listing deleted.")
	return nil
}
