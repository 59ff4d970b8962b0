package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/beantz/labersaler/internal/client/alert"
	"github.com/beantz/labersaler/internal/client/api"
	"github.com/beantz/labersaler/internal/client/config"
	"github.com/beantz/labersaler/internal/client/models"
	"github.com/beantz/labersaler/internal/client/services"
	"github.com/beantz/labersaler/internal/client/storage"
	"github.com/beantz/labersaler/internal/client/tokenstore"
	"github.com/beantz/labersaler/internal/logging"

	_ "modernc.org/sqlite"
)

// App ties the services together and holds the interactive session state.
type App struct {
	config  *config.Config
	log     logging.Logger
	db      *sql.DB
	alerts  *alert.Notifier
	auth    services.AuthService
	books   services.BookService
	reviews services.ReviewService
	profile services.ProfileService
	session *models.Session
	reader  *bufio.Reader
}

// NewApp builds the full client stack: local database, token store, API
// client, and the domain services on top.
func NewApp(c *config.Config, log logging.Logger) (*App, error) {

	ctx := context.Background()

	db, err := storage.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	tokens := tokenstore.NewSQLiteStore(db)

	apiClient := api.New(api.Config{
		BaseURL: c.BaseURL,
		Timeout: c.RequestTimeout,
	}, tokens, log)

	return &App{
		config:  c,
		log:     log,
		db:      db,
		alerts:  alert.NewNotifier(alert.DefaultWindow, func(msg string) { fmt.Println(msg) }),
		auth:    services.NewAuthService(apiClient, tokens),
		books:   services.NewBookService(apiClient),
		reviews: services.NewReviewService(apiClient),
		profile: services.NewProfileService(apiClient),
		reader:  bufio.NewReader(os.Stdin),
	}, nil
}

// Run starts the REPL and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.db.Close()
	printlnFn("Welcome to Labersaler CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) isLoggedIn() bool {
	return a.session != nil
}

func (a *App) getStatus() string {
	if a.session == nil {
		return ""
	}
	if a.session.Name != "" {
		return fmt.Sprintf("(%s)", a.session.Name)
	}
	return "(logged in)"
}

// notify routes an error through the throttled alert pipeline. An
// authentication failure additionally drops the in-memory session, so the
// REPL falls back to the logged-out prompt.
func (a *App) notify(ctx context.Context, err error) {
	a.alerts.Notify(err)
	if api.IsAuth(err) && a.session != nil {
		a.session = nil
		a.log.Debug(ctx, "session dropped after auth failure")
	}
}

// requireUserID returns the id of the logged-in user. Some backend payloads
// omit the user object on login; those sessions cannot run owner-scoped
// commands.
func (a *App) requireUserID() (int, bool) {
	if a.session == nil || a.session.UserID == 0 {
		a.alerts.NotifyMessage("Dados do usuário indisponíveis nesta sessão. Faça login novamente.")
		return 0, false
	}
	return a.session.UserID, true
}
