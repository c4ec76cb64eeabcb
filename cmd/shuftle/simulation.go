package main

import (
	"fmt"

	"github.com/pterm/pterm"

	"github.com/Shuftle/shuftlib/cards"
	"github.com/Shuftle/shuftlib/internal/player"
	"github.com/Shuftle/shuftlib/tressette"
)

// runSimulation plays one full four-player hand of Tressette with
// random bots sharing a single seeded source, so a given seed always
// replays the same game.
func runSimulation(seed int64) error {
	pterm.DefaultSection.Printfln("Tressette simulation (seed %d)", seed)

	src := cards.NewSource(seed)
	bots := make([]player.Player, tressette.NumPlayers)
	for i := range bots {
		bots[i] = player.NewRandomBot(src)
	}

	game, err := tressette.NewGame(tressette.NumPlayers, src)
	if err != nil {
		return err
	}

	for game.Phase() == tressette.PhaseInProgress {
		seat := game.CurrentTurn()
		card, err := bots[seat].PlayCard(game.Hand(seat), game.Playable(seat))
		if err != nil {
			return fmt.Errorf("%s: %w", bots[seat].Name(), err)
		}
		res, err := game.Play(seat, card)
		if err != nil {
			return fmt.Errorf("seat %d playing %v: %w", seat, card, err)
		}

		switch res.Outcome {
		case tressette.TrickResolved:
			pterm.Info.Printfln("trick %2d: %s takes %s points",
				len(game.Tricks()), bots[res.Winner].Name(), res.Points.RatString())
		case tressette.GameOver:
			pterm.Info.Printfln("trick %2d: %s takes %s points and the last trick",
				len(game.Tricks()), bots[res.Winner].Name(), res.Points.RatString())
			printFinalScores(game, res.FinalScores)
		}
	}
	return nil
}

func printFinalScores(game *tressette.Game, final [2]tressette.Score) {
	rows := pterm.TableData{{"Team", "Card points", "Last trick", "Game points"}}
	for t, s := range final {
		rows = append(rows, []string{
			fmt.Sprintf("Team %d", t),
			s.CardPoints.RatString(),
			fmt.Sprintf("%v", s.LastTrick),
			fmt.Sprintf("%d", s.GamePoints()),
		})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(rows).Render(); err != nil {
		pterm.Error.Println(err)
	}

	winner, tie, err := game.Winner()
	switch {
	case err != nil:
		pterm.Error.Println(err)
	case tie:
		pterm.Info.Println("the hand is a tie")
	default:
		pterm.Success.Printfln("Team %d wins the hand", winner)
	}
}
