// reversi plays Reversi against the computer in the terminal.
//
// Usage:
//
//	reversi play             - Play a game
//	reversi show --board <b> - Print a board given as 32 hex digits
//
// Play flags:
//
//	--computer <color>      - Color played by the computer: black, white or none
//	--difficulty <level>    - Computer strength: easy, medium or hard
//	--prefs <path>          - Preference file (default: ~/.reversi/preferences.yaml)
//	--seed <value>          - RNG seed for the easy computer (0 = random)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "reversi",
	Short: "Reversi - Play Reversi in your terminal",
	Long: `Reversi is the classic board game for two players, played in the terminal
against a friend or the computer.

Examples:
  reversi play
  reversi play --computer white --difficulty hard
  reversi show --board 00000010080000000000000810000000`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(showCmd)
}
