package main

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/tbourn/go-docsearch-backend/internal/config"
	"github.com/tbourn/go-docsearch-backend/internal/search"
	"github.com/tbourn/go-docsearch-backend/internal/sysutil"
)

// app carries state resolved once before any subcommand runs.
type app struct {
	cfg config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}
	cmd := &cobra.Command{
		Use:           "docsearch",
		Short:         "Page-aware exact and fuzzy search over extracted document text.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// .env is optional; real environment variables win.
			_ = godotenv.Load()
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			a.cfg = cfg
			sysutil.SetupLogger(cfg.LogLevel, cfg.LogPretty)
			return nil
		},
	}

	cmd.AddCommand(
		newServeCmd(a),
		newSearchCmd(a),
		newIngestCmd(a),
	)
	return cmd
}

// engine builds a search engine with the configured ceilings.
func (a *app) engine() *search.Engine {
	return search.NewEngine(
		search.WithMaxQueryRunes(a.cfg.Search.MaxQueryRunes),
		search.WithMaxPageRunes(a.cfg.Search.MaxPageRunes),
		search.WithMaxResultsCap(a.cfg.Search.MaxResultsCap),
	)
}
