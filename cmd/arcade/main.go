// arcade is a terminal hub for small arcade games.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play <game>       - Play a game directly
//	arcade menu              - Start the interactive game picker
//	arcade serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/miniarcade/arcade-hub/internal/games/flappy"
	_ "github.com/miniarcade/arcade-hub/internal/games/racer"
	_ "github.com/miniarcade/arcade-hub/internal/games/snake"
	_ "github.com/miniarcade/arcade-hub/internal/games/tictactoe"
)

var (
	// Global flags
	flagFPS  int
	flagSeed int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Arcade Hub - Play retro games in your terminal",
	Long: `Arcade Hub is a terminal gaming platform with a collection of small
arcade games sharing one menu, difficulty presets, and a session scoreboard.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play

Examples:
  arcade list
  arcade play snake
  arcade play flappy --difficulty hard
  arcade menu
  arcade serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
}
