package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lk16/reversi/internal/othello"
)

var (
	flagBoard string
	flagTurn  string
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print a board",
	Long: `Print a board given as 32 hex digits: the black discs followed by the
white discs, 16 digits each. Squares where the player to move can play are
marked with a dot.

Examples:
  reversi show --board 00000010080000000000000810000000
  reversi show --board 00000010080000000000000810000000 --turn white`,
	Args: cobra.NoArgs,
	RunE: runShow,
}

func init() {
	showCmd.Flags().StringVar(&flagBoard, "board", "", "The board to show")
	showCmd.Flags().StringVar(&flagTurn, "turn", "black", "Player to show the moves of")
	_ = showCmd.MarkFlagRequired("board")
}

func runShow(cmd *cobra.Command, _ []string) error {
	board, err := othello.NewBoardFromString(flagBoard)
	if err != nil {
		return err
	}

	turn, err := othello.ParsePlayer(flagTurn)
	if err != nil {
		return err
	}

	black, white := board.CountPieces()

	fmt.Fprintln(cmd.OutOrStdout(), strings.Join(board.ASCIIArtLines(turn), "\n"))
	fmt.Fprintf(cmd.OutOrStdout(), "Black %d - %d White, %s to move\n", black, white, turn)

	return nil
}
