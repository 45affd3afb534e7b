// hexalines is a terminal puzzle game: move colored tokens across a
// hexagonal board and line up groups of five or more to clear them.
//
// Usage:
//
//	hexalines play [mode]     - Play the game (default mode: hexalines)
//	hexalines list            - List available game modes
//	hexalines scores <mode>   - Show high scores for a mode
//	hexalines serve           - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.hexalines/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import game package to register modes
	_ "github.com/vovakirdan/hexalines/internal/game"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hexalines",
	Short: "Hexa Lines - hexagonal tile-matching puzzle in your terminal",
	Long: `Hexa Lines is a terminal puzzle game played on a hexagonal board.
Move tokens along free paths and connect five or more of one color to
clear them. Each move that clears nothing spawns new tokens, and the
board slowly fills up. How long can you last?

Available commands:
  play     - Play the game
  list     - Show available game modes
  scores   - View high scores
  serve    - Start SSH server for remote play

Examples:
  hexalines play
  hexalines play hexalines_zen
  hexalines play --difficulty hard
  hexalines scores hexalines
  hexalines serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.hexalines/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
