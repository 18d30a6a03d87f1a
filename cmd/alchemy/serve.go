package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rgb-alchemy/internal/platform/tui"
)

var (
	flagSSHAddr        string
	flagHostKey        string
	flagIdleTimeout    time.Duration
	flagSSHProviderURL string
	flagSSHOffline     bool
	flagSSHDifficulty  string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH game server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own game. The SSH user name is sent to the
puzzle provider as the user id, so returning players keep their id.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, uses ssh.host_key_path from the config

Examples:
  alchemy serve                           # Listen on the configured address
  alchemy serve --ssh :2222               # Listen on port 2222
  alchemy serve --offline                 # Generate puzzles in-process

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port, overrides config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (overrides config)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout before disconnecting (overrides config)")
	serveCmd.Flags().StringVar(&flagSSHProviderURL, "provider", "", "Puzzle provider URL (overrides config)")
	serveCmd.Flags().BoolVar(&flagSSHOffline, "offline", false, "Generate puzzles in-process instead of asking the provider")
	serveCmd.Flags().StringVar(&flagSSHDifficulty, "difficulty", "", "Difficulty preset for offline puzzles: easy, normal, hard")
}

func runServe(_ *cobra.Command, _ []string) {
	appCfg := loadConfig()
	if flagSSHAddr != "" {
		appCfg.SSH.Addr = flagSSHAddr
	}
	if flagHostKey != "" {
		appCfg.SSH.HostKeyPath = flagHostKey
	}
	if flagIdleTimeout > 0 {
		appCfg.SSH.IdleTimeout = flagIdleTimeout
	}
	if flagSSHProviderURL != "" {
		appCfg.Client.ProviderURL = flagSSHProviderURL
	}

	cfg := tui.SSHServerConfig{
		Address:      appCfg.SSH.Addr,
		HostKeyPath:  appCfg.SSH.HostKeyPath,
		IdleTimeout:  appCfg.SSH.IdleTimeout,
		FetchTimeout: appCfg.Client.Timeout,
	}

	source := puzzleSource(appCfg, flagSSHOffline, flagSSHDifficulty)

	server, err := tui.NewSSHServer(cfg, source)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting RGB Alchemy SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
