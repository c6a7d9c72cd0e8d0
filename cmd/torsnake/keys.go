package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Show the controls",
	Long:  `Prints the in-game key bindings.`,
	Run:   runKeys,
}

func runKeys(cmd *cobra.Command, args []string) {
	bindings := []struct {
		keys   string
		action string
	}{
		{"↑ / w", "move up"},
		{"↓ / s", "move down"},
		{"← / a", "move left"},
		{"→ / d", "move right"},
		{"r", "restart after game over"},
		{"q / Esc / Ctrl+C", "quit"},
	}

	fmt.Println("Controls:")
	fmt.Println()
	for _, b := range bindings {
		fmt.Printf("  %-18s %s\n", b.keys, b.action)
	}
	fmt.Println()
	fmt.Println("A direction key pointing straight back at the snake is ignored.")
}
