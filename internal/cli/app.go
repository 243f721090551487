package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"

	"nextin/internal/client"
	"nextin/internal/model"
)

const (
	DefaultAPI = "http://localhost:4000"
	EnvAPI     = "NEXTIN_API"
	EnvToken   = "NEXTIN_TOKEN"
)

// App carries what the commands share. API and Board are built in the
// root command's pre-run once flags are parsed.
type App struct {
	BaseURL string
	Token   string
	Print   *Printer

	API   *client.API
	Board *client.Adapter
}

func NewApp(out, errOut io.Writer) *App {
	return &App{
		BaseURL: envOr(EnvAPI, DefaultAPI),
		Token:   os.Getenv(EnvToken),
		Print:   &Printer{Out: out, Err: errOut},
	}
}

func (app *App) connect() {
	logger := log.New()
	logger.SetOutput(app.Print.Err)
	logger.SetLevel(log.ErrorLevel)

	var opts []client.APIOption
	if app.Token != "" {
		opts = append(opts, client.WithToken(app.Token))
	}
	app.API = client.NewAPI(app.BaseURL, opts...)
	app.Board = client.NewAdapter(app.API,
		client.WithAdapterLogger(logger),
		client.OnNotice(func(err error) { app.Print.Warning("%v", err) }),
	)
}

// load fetches the board into the adapter.
func (app *App) load(ctx context.Context) (*model.Board, error) {
	if err := app.Board.Refresh(ctx); err != nil {
		return nil, app.Print.Error("Could not reach the board", err,
			fmt.Sprintf("Check that the server is running at %s (set %s to change it).", app.BaseURL, EnvAPI))
	}
	return app.Board.Board(), nil
}

// resolveID accepts a full issue id or a unique prefix of one.
func resolveID(b *model.Board, ref string) (string, error) {
	if _, ok := b.Issues[ref]; ok {
		return ref, nil
	}
	var found []string
	for id := range b.Issues {
		if strings.HasPrefix(id, ref) {
			found = append(found, id)
		}
	}
	switch len(found) {
	case 0:
		return "", fmt.Errorf("no issue matches %q", ref)
	case 1:
		return found[0], nil
	default:
		return "", fmt.Errorf("%q is ambiguous (%d issues)", ref, len(found))
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
