// torsnake is a terminal snake game on a wrap-around board.
//
// Usage:
//
//	torsnake            - Play with the default or discovered config
//	torsnake play       - Same, explicit
//	torsnake keys       - Show the controls
//
// Global flags:
//
//	--fps <rate>    - Terminal redraw rate (default: from config)
//	--seed <value>  - RNG seed for a reproducible food sequence
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
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
	Use:   "torsnake",
	Short: "Snake on a torus, in your terminal",
	Long: `torsnake is a terminal snake game played on a wrap-around board:
leaving one edge brings the snake back in on the opposite edge. The only
way to lose is running into yourself.

Examples:
  torsnake
  torsnake play --width 40 --height 24
  torsnake play --seed 42
  torsnake keys`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Redraw rate in frames per second (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(keysCmd)
}
