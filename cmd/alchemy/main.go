// alchemy is a terminal color-mixing puzzle: light three sources with red,
// green and blue, then drag tiles onto the remaining sources until some tile
// matches the target color.
//
// Usage:
//
//	alchemy play       - Play in the terminal
//	alchemy serve      - Start SSH server for remote play
//	alchemy provider   - Start the HTTP puzzle provider
//	alchemy users      - Show the provider's user registry
//
// Global flags:
//
//	--config <path> - Config file (default search: ~/.alchemy/configs, ./configs)
//	--seed <value>  - RNG seed for locally generated puzzles
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rgb-alchemy/internal/config"
	"github.com/vovakirdan/rgb-alchemy/internal/provider"
)

var (
	// Global flags
	flagConfig string
	flagSeed   int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "alchemy",
	Short: "RGB Alchemy - mix colors to match a target",
	Long: `RGB Alchemy is a color-mixing puzzle for the terminal.

Light three edge sources with red, green and blue, then drag lit cells onto
the remaining sources. Each source shines along its row or column, fading
with distance. Get any tile within 10% of the target color before the moves
run out.

Available commands:
  play      - Play in this terminal
  serve     - Start SSH server for remote play
  provider  - Start the HTTP puzzle provider
  users     - Show the provider's user registry

Examples:
  alchemy provider &
  alchemy play
  alchemy play --offline --difficulty easy
  alchemy serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed for local puzzles (0 = random based on time)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(providerCmd)
	rootCmd.AddCommand(usersCmd)
}

// loadConfig loads the configuration or exits.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// newGenerator creates a local puzzle generator or exits.
func newGenerator(policy config.PolicyConfig, difficulty string) *provider.Generator {
	preset, err := config.ParsePreset(difficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	config.ApplyPreset(&policy, preset)

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	gen, err := provider.NewGenerator(policy, seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return gen
}

// puzzleSource picks the local generator or the HTTP client.
func puzzleSource(cfg config.Config, offline bool, difficulty string) provider.Source {
	if offline || cfg.Client.Offline {
		return newGenerator(cfg.Provider.Policy, difficulty)
	}
	return provider.NewClient(cfg.Client.ProviderURL, cfg.Client.Timeout)
}
