package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/rgb-alchemy/internal/platform/tui"
	"github.com/vovakirdan/rgb-alchemy/internal/storage"
)

var (
	flagUsersDB    string
	flagUsersLimit int
	flagUsersTUI   bool
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Show the provider's user registry",
	Long: `List the user ids the puzzle provider has issued puzzles to,
most active first.

Examples:
  alchemy users
  alchemy users --limit 50
  alchemy users --db ./users.db
  alchemy users --interactive`,
	Args: cobra.NoArgs,
	Run:  runUsers,
}

func init() {
	usersCmd.Flags().StringVar(&flagUsersDB, "db", "", "Path to user registry database (overrides config)")
	usersCmd.Flags().IntVar(&flagUsersLimit, "limit", 20, "Maximum number of users to show")
	usersCmd.Flags().BoolVarP(&flagUsersTUI, "interactive", "i", false, "Browse the registry in a scrollable table")
}

func runUsers(_ *cobra.Command, _ []string) {
	appCfg := loadConfig()
	dbPath := appCfg.Storage.DBPath
	if flagUsersDB != "" {
		dbPath = flagUsersDB
	}

	store, err := storage.Open(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening user registry: %v\n", err)
		os.Exit(1)
	}

	if flagUsersTUI {
		width, height, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil {
			width, height = 80, 24
		}
		err = tui.RunUsers(store, width, height)
		store.Close()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	users, err := store.Users(flagUsersLimit)
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving users: %v\n", err)
		os.Exit(1)
	}

	defer store.Close()

	fmt.Println("Registered users")
	fmt.Println()

	if len(users) == 0 {
		fmt.Println("No users recorded yet.")
		fmt.Println()
		fmt.Println("Run 'alchemy provider' and play a game to register the first one.")
		return
	}

	fmt.Printf("  %-8s  %-8s  %-16s  %s\n", "User", "Puzzles", "First seen", "Last seen")
	fmt.Printf("  %-8s  %-8s  %-16s  %s\n", "----", "-------", "----------", "---------")

	for _, u := range users {
		fmt.Printf("  %-8s  %-8d  %-16s  %s\n",
			u.UserID,
			u.PuzzlesIssued,
			u.FirstSeen.Format("2006-01-02 15:04"),
			u.LastSeen.Format("2006-01-02 15:04"),
		)
	}

	if totals, err := store.Totals(); err == nil {
		fmt.Println()
		fmt.Printf("Total: %d users, %d puzzles issued\n", totals.Users, totals.Puzzles)
	}
}
