package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/rgb-alchemy/internal/provider"
	"github.com/vovakirdan/rgb-alchemy/internal/storage"
)

var (
	flagProviderAddr       string
	flagProviderDB         string
	flagNoDB               bool
	flagProviderDifficulty string
)

var providerCmd = &cobra.Command{
	Use:   "provider",
	Short: "Start the HTTP puzzle provider",
	Long: `Start the HTTP service that hands out random puzzles.

Endpoints:
  GET /init            - Puzzle for a new user (a 6-hex-char id is assigned)
  GET /init/user/{id}  - Puzzle for an existing user

Responses are JSON: {"userId","width","height","maxMoves","target":[r,g,b]}.
Every issued puzzle is counted in the user registry unless --no-db is set.

Examples:
  alchemy provider
  alchemy provider --addr :8080 --difficulty easy
  alchemy provider --db ./users.db --seed 42`,
	Args: cobra.NoArgs,
	Run:  runProvider,
}

func init() {
	providerCmd.Flags().StringVar(&flagProviderAddr, "addr", "", "Listen address (overrides config)")
	providerCmd.Flags().StringVar(&flagProviderDB, "db", "", "Path to user registry database (overrides config)")
	providerCmd.Flags().BoolVar(&flagNoDB, "no-db", false, "Do not keep a user registry")
	providerCmd.Flags().StringVar(&flagProviderDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runProvider(_ *cobra.Command, _ []string) {
	appCfg := loadConfig()
	if flagProviderAddr != "" {
		appCfg.Provider.Addr = flagProviderAddr
	}
	if flagProviderDB != "" {
		appCfg.Storage.DBPath = flagProviderDB
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "alchemy-provider",
	})

	gen := newGenerator(appCfg.Provider.Policy, flagProviderDifficulty)

	var users provider.UserRecorder
	if !flagNoDB {
		store, err := storage.Open(appCfg.Storage.DBPath)
		if err != nil {
			logger.Warn("could not open user registry", "error", err)
			// Continue without registry
		} else {
			defer store.Close()
			users = store
		}
	}

	server := provider.NewServer(appCfg.Provider.Addr, gen, users, logger)
	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
