package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/rgb-alchemy/internal/core"
	"github.com/vovakirdan/rgb-alchemy/internal/platform/tui"
)

var (
	flagProviderURL string
	flagOffline     bool
	flagUser        string
	flagDifficulty  string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Fetch a puzzle from the provider and play it.

Controls:
  Arrows/WASD   - Move the cursor
  Enter/Space   - Light a source, pick up a lit cell, drop it on a source
  Esc           - Put the carried cell back
  R             - New puzzle (same user)
  ?             - More keys
  Q/Ctrl+C      - Quit

Difficulty options (offline only):
  easy   - Small boards, generous move budget
  normal - Default ranges
  hard   - Large boards, tight move budget

Examples:
  alchemy play
  alchemy play --provider http://games.local:9876
  alchemy play --user a1b2c3
  alchemy play --offline --difficulty hard --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagProviderURL, "provider", "", "Puzzle provider URL (overrides config)")
	playCmd.Flags().BoolVar(&flagOffline, "offline", false, "Generate puzzles locally instead of asking the provider")
	playCmd.Flags().StringVar(&flagUser, "user", "", "User id to play as (assigned by the provider if empty)")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runPlay(_ *cobra.Command, _ []string) {
	appCfg := loadConfig()
	if flagProviderURL != "" {
		appCfg.Client.ProviderURL = flagProviderURL
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:      width,
		ScreenH:      height,
		UserID:       flagUser,
		FetchTimeout: appCfg.Client.Timeout,
	}

	source := puzzleSource(appCfg, flagOffline, flagDifficulty)

	if err := tui.Run(source, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
