package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/beantz/labersaler/internal/client/models"
)

// Browse fetches the categories and the full catalog concurrently and
// prints both. The fetches fail independently; a shared cause (for example
// the backend being down) surfaces as a single alert thanks to the
// notifier's throttle.
func (a *App) Browse(ctx context.Context) error {

	var (
		wg         sync.WaitGroup
		categories []models.Category
		books      []models.Book
		catErr     error
		bookErr    error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		categories, catErr = a.books.Categories(ctx)
	}()
	go func() {
		defer wg.Done()
		books, bookErr = a.books.List(ctx)
	}()
	wg.Wait()

	if catErr != nil {
		a.notify(ctx, catErr)
	}
	if bookErr != nil {
		a.notify(ctx, bookErr)
	}
	if catErr != nil && bookErr != nil {
		return bookErr
	}

	if catErr == nil {
		names := make([]string, 0, len(categories))
		for _, c := range categories {
			names = append(names, c.Name)
		}
		printlnFn("Categories: " + strings.Join(names, ", "))
	}
	if bookErr == nil {
		for _, b := range books {
			printlnFn(fmt.Sprintf("[%d] %s — %s (R$ %.2f)", b.ID, b.Title, b.Author, b.Price))
		}
		if len(books) == 0 {
			printlnFn("No listings yet.")
		}
	}
	return nil
}

// ShowBook prints a single listing together with its reviews.
func (a *App) ShowBook(ctx context.Context) error {

	id, err := GetInt(a.reader, "Enter book id", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	book, err := a.books.Get(ctx, id)
	if err != nil {
		a.notify(ctx, err)
		return err
	}

	printlnFn(fmt.Sprintf("%s — %s", book.Title, book.Author))
	printlnFn(fmt.Sprintf("Price: R$ %.2f | Condition: %s", book.Price, book.Condition))
	if book.Description != "" {
		printlnFn(book.Description)
	}
	if book.SellerPhone != "" {
		printlnFn("Seller (WhatsApp): " + book.SellerPhone)
	}
	if book.Image.URL != "" {
		printlnFn("Photo: " + book.Image.URL)
	}

	reviews, err := a.reviews.ListByBook(ctx, id)
	if err != nil {
		a.notify(ctx, err)
		return err
	}
	if len(reviews) == 0 {
		printlnFn("No reviews yet.")
		return nil
	}
	for _, r := range reviews {
		printlnFn(fmt.Sprintf("[%d] %s (%d/5): %s", r.ID, r.User, r.Rating, r.Comment))
	}
	return nil
}
