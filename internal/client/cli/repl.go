package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	ForgotPassword(ctx context.Context) error
	Browse(ctx context.Context) error
	ShowBook(ctx context.Context) error
	Sell(ctx context.Context) error
	MyBooks(ctx context.Context) error
	DeleteBook(ctx context.Context) error
	AddReview(ctx context.Context) error
	DeleteReview(ctx context.Context) error
	Profile(ctx context.Context) error
	EditProfile(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the Labersaler CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - register       — create an account
//	  - login          — authenticate
//	  - forgot         — recover a forgotten password
//	  - books | browse — browse the catalog
//	  - show           — show a listing with its reviews
//	  - exit | quit    — leave the program
//
//	Logged in, additionally:
//	  - sell           — publish a listing with a photo
//	  - mybooks        — list own listings
//	  - delbook        — delete an own listing
//	  - review         — review a book
//	  - delreview      — delete an own review
//	  - profile        — show the account profile
//	  - edit           — edit the account profile
//	  - logout         — log out
//
// Any errors returned by command handlers are ignored here; handlers alert
// the user themselves. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("ls> %s ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: (b)ooks, show, sell, mybooks, delbook, review, delreview, profile, edit, logout, exit")
			} else {
				printlnFn("Available commands: register, login, forgot, (b)ooks, show, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "forgot":
			_ = a.ForgotPassword(ctx)

		case "b", "books", "browse":
			_ = a.Browse(ctx)

		case "show":
			_ = a.ShowBook(ctx)

		case "sell":
			_ = a.Sell(ctx)

		case "mybooks":
			_ = a.MyBooks(ctx)

		case "delbook":
			_ = a.DeleteBook(ctx)

		case "review":
			_ = a.AddReview(ctx)

		case "delreview":
			_ = a.DeleteReview(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "edit":
			_ = a.EditProfile(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
