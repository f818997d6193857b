package main

import (
	"fmt"
	"io"
	"strconv"

	"folio/internal/content"
	"folio/internal/deck"
	"folio/internal/route"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

var (
	advanceBy int
	jumpTo    int
)

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "List the pages and their paths",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return printRoutes(cmd.OutOrStdout())
	},
}

var cardsCmd = &cobra.Command{
	Use:   "cards",
	Short: "Print the placement of every card in the deck",
	Long: `Builds the card deck from the content, applies the requested moves with
every transition settled at once, and prints where each card sits.

Example:
  folio cards --advance 2
  folio cards --jump 3`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := content.NewStore(cfg.Content)
		if err != nil {
			return err
		}
		c, err := store.Load()
		if err != nil {
			return err
		}
		nav, err := deck.New(c.DeckCards(), deck.WithTransition(cfg.Transition))
		if err != nil {
			return err
		}
		defer nav.Dispose()
		if err := walk(nav, advanceBy, jumpTo); err != nil {
			return err
		}
		return printCards(cmd.OutOrStdout(), nav)
	},
}

func init() {
	cardsCmd.Flags().IntVar(&advanceBy, "advance", 0, "Advance the deck this many times")
	cardsCmd.Flags().IntVar(&jumpTo, "jump", -1, "Then jump to this card index")
}

// walk advances n times and optionally jumps, settling each transition
// immediately. Moves the navigator refuses are reported.
func walk(nav *deck.Navigator, n, jump int) error {
	for i := range n {
		t, ok := nav.Advance()
		if !ok {
			return fmt.Errorf("advance %d of %d refused at card %d", i+1, n, nav.Current())
		}
		nav.Settle(t.Seq)
	}
	if jump < 0 {
		return nil
	}
	t, ok := nav.JumpTo(jump)
	if !ok {
		return fmt.Errorf("cannot jump from card %d to %d", nav.Current(), jump)
	}
	nav.Settle(t.Seq)
	return nil
}

func printRoutes(w io.Writer) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("PATH", "PAGE", "TITLE")
	for _, e := range route.Table() {
		t.Row(e.Path, e.Page.String(), e.Title)
	}
	_, err := fmt.Fprintln(w, t.String())
	return err
}

func printCards(w io.Writer, nav *deck.Navigator) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "TITLE", "KIND", "SIDE", "OFFSET", "DEPTH", "SCALE", "OPACITY", "Z", "OPEN")
	for i, p := range nav.Placements() {
		card, _ := nav.Card(i)
		t.Row(
			strconv.Itoa(i),
			card.Title,
			p.Kind.String(),
			p.Side.String(),
			fmt.Sprintf("%.0f%%", p.Offset),
			fmt.Sprintf("%.0f", p.Depth),
			fmt.Sprintf("%.2f", p.Scale),
			fmt.Sprintf("%.2f", p.Opacity),
			strconv.Itoa(p.Z),
			strconv.FormatBool(p.Interactive),
		)
	}
	if _, err := fmt.Fprintln(w, t.String()); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "current %d, passed %v\n", nav.Current(), nav.Passed())
	return err
}
