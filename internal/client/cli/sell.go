package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/beantz/labersaler/internal/client/models"
	"github.com/beantz/labersaler/internal/client/services"
)

// Sell publishes a new listing. The photo is read from a local file and
// travels with the text fields in one multipart request.
func (a *App) Sell(ctx context.Context) error {

	title, err := GetSimpleText(a.reader, "Title", os.Stdout)
	if err != nil {
		return err
	}
	author, err := GetSimpleText(a.reader, "Author", os.Stdout)
	if err != nil {
		return err
	}
	price, err := GetSimpleText(a.reader, "Price (e.g. 35.90)", os.Stdout)
	if err != nil {
		return err
	}
	condition, err := GetSimpleText(a.reader, "Condition ("+strings.Join(models.BookConditions, " / ")+")", os.Stdout)
	if err != nil {
		return err
	}
	description, err := GetSimpleText(a.reader, "Description", os.Stdout)
	if err != nil {
		return err
	}

	categories, err := a.books.Categories(ctx)
	if err != nil {
		a.notify(ctx, err)
		return err
	}
	for _, c := range categories {
		printlnFn(fmt.Sprintf("  %s — %s", c.ID, c.Name))
	}
	categoryID, err := GetSimpleText(a.reader, "Category id", os.Stdout)
	if err != nil {
		return err
	}

	imagePath, err := GetSimpleText(a.reader, "Path of the photo file", os.Stdout)
	if err != nil {
		return err
	}
	f, err := os.Open(imagePath)
	if err != nil {
		printlnFn("Cannot open photo: " + err.Error())
		return err
	}
	defer f.Close()

	book := models.NewBook{
		Title:       title,
		Author:      author,
		Price:       price,
		Condition:   condition,
		Description: description,
		CategoryID:  categoryID,
	}

	msg, err := a.books.Create(ctx, book, services.Image{Name: imagePath, Data: f})
	if err != nil {
		a.notify(ctx, err)
		return err
	}

	if msg == "" {
		msg = "Listing published."
	}
	printlnFn(msg)
	return nil
}
