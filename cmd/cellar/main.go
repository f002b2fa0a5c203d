// Command cellar is the command-line front end of the collection tracker.
// It lists and filters the collection, adds records through the add-record
// form and looks up the reference catalogs.
//
// Configuration comes from CELLAR_CONFIG (default ./cellar.yaml) and CELLAR_*
// environment variables; --endpoint and --token override them.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/cellar-backend/internal/adapter/datastore"
	"github.com/heartmarshall/cellar-backend/internal/app"
	"github.com/heartmarshall/cellar-backend/internal/config"
	"github.com/heartmarshall/cellar-backend/internal/domain"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand(defaultDeps()).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "cellar: %v\n", err)
		os.Exit(1)
	}
}

type recordStore interface {
	List(ctx context.Context, kind domain.Kind) ([]domain.Record, error)
	Create(ctx context.Context, rec domain.Record) (domain.Record, error)
	Delete(ctx context.Context, kind domain.Kind, id uuid.UUID) error
}

// deps are the collaborators the commands are built from.
type deps struct {
	loadConfig func() (*config.ClientConfig, error)
	openStore  func(log *slog.Logger, cfg config.ClientConfig) (recordStore, error)
	clock      clockwork.Clock
}

func defaultDeps() deps {
	return deps{
		loadConfig: config.LoadClient,
		openStore: func(log *slog.Logger, cfg config.ClientConfig) (recordStore, error) {
			c, err := datastore.New(log, cfg, nil)
			if err != nil {
				return nil, err
			}
			return c, nil
		},
		clock: clockwork.NewRealClock(),
	}
}

type globalOptions struct {
	endpoint string
	token    string
}

// session is a loaded configuration with a logger and an open store.
type session struct {
	cfg   *config.ClientConfig
	log   *slog.Logger
	store recordStore
}

func (d deps) connect(cmd *cobra.Command, g *globalOptions) (*session, error) {
	cfg, err := d.loadConfig()
	if err != nil {
		return nil, err
	}
	if g.endpoint != "" {
		cfg.Endpoint = g.endpoint
	}
	if g.token != "" {
		cfg.Token = g.token
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	log := app.NewLoggerTo(cmd.ErrOrStderr(), cfg.Log)
	store, err := d.openStore(log, *cfg)
	if err != nil {
		return nil, err
	}
	return &session{cfg: cfg, log: log, store: store}, nil
}

func newRootCommand(d deps) *cobra.Command {
	var g globalOptions
	cmd := &cobra.Command{
		Use:   "cellar",
		Short: "Track a wine and spirit collection",
		Long: `cellar talks to the record service to list, filter and add wines and spirits.
Use "cellar fields <kind>" to see which fields "cellar add" accepts.`,
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVar(&g.endpoint, "endpoint", "", "record service URL (overrides CELLAR_ENDPOINT)")
	cmd.PersistentFlags().StringVar(&g.token, "token", "", "bearer token (overrides CELLAR_TOKEN)")
	cmd.AddCommand(
		newListCmd(d, &g),
		newAddCmd(d, &g),
		newDeleteCmd(d, &g),
		newFieldsCmd(d),
		newCatalogCmd(),
		newDevTokenCmd(d),
	)
	return cmd
}

// parseKind accepts "wine", "wines", "spirit" and "spirits" in any case.
func parseKind(s string) (domain.Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "wine", "wines":
		return domain.KindWine, nil
	case "spirit", "spirits":
		return domain.KindSpirit, nil
	}
	return "", fmt.Errorf("unknown record kind %q (want wine or spirit)", s)
}
