package main

import (
	"bufio"
	"dicepoker-server/internal/rng"
	"dicepoker-server/pkg/dice"
	"dicepoker-server/pkg/dicepoker/odds"
	"dicepoker-server/pkg/dicepoker/probability"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

var player = flag.String("player", "", "the player's five dice, i.e., 3,3,3,5,2")
var opponent = flag.String("opponent", "", "the opponent's five dice, i.e., 1,2,3,4,5")
var roll = flag.Bool("roll", false, "roll random dice for any side that was not provided")
var asJSON = flag.Bool("json", false, "print the result as JSON")

func main() {
	flag.Parse()

	reader := bufio.NewReader(os.Stdin)
	interactive := term.IsTerminal(int(os.Stdin.Fd()))

	if err := run(os.Stdout, os.Stderr, reader, interactive); err != nil {
		logrus.WithError(err).Fatal("could not calculate odds")
	}
}

// run writes the result to stdout
// Prompts and roll notices go to stderr
func run(stdout, stderr io.Writer, reader *bufio.Reader, interactive bool) error {
	playerDice, err := getDice("Player's dice", *player, reader, interactive, stderr)
	if err != nil {
		return fmt.Errorf("player's dice: %w", err)
	}

	opponentDice, err := getDice("Opponent's dice", *opponent, reader, interactive, stderr)
	if err != nil {
		return fmt.Errorf("opponent's dice: %w", err)
	}

	res := odds.ComputeDice(playerDice, opponentDice)

	if *asJSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	return writeResult(stdout, res)
}

// getDice uses the flag value if provided, then a random roll if -roll is set,
// and finally asks for the dice until valid ones are entered
func getDice(question, value string, reader *bufio.Reader, interactive bool, stderr io.Writer) (dice.Dice, error) {
	if value != "" {
		return dice.FromString(value)
	}

	if *roll {
		d := dice.Roll(rng.Crypto{})
		_, _ = fmt.Fprintf(stderr, "%s: %s (rolled)\n", question, d)
		return d, nil
	}

	if !interactive {
		return nil, errors.New("dice must be provided with -player and -opponent, or -roll")
	}

	for {
		answer, err := getInput(question, reader, stderr)
		if err != nil {
			return nil, err
		}

		d, err := dice.FromString(answer)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			continue
		}

		return d, nil
	}
}

func getInput(question string, reader *bufio.Reader, w io.Writer) (string, error) {
	_, _ = fmt.Fprintf(w, "%s: ", question)
	str, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	str = strings.TrimRight(str, "\r\n")

	return str, nil
}

func writeResult(w io.Writer, res *odds.Result) error {
	b := &strings.Builder{}
	fmt.Fprintf(b, "Player's Hand: %s\n", res.PlayerHand)
	fmt.Fprintf(b, "Opponent's Hand: %s\n", res.OpponentHand)
	fmt.Fprintf(b, "Player's Dice to Re-roll: %s\n", res.PlayerReroll)
	fmt.Fprintf(b, "Opponent's Dice to Re-roll: %s\n", res.OpponentReroll)
	fmt.Fprintf(b, "Player's Suggestion: %s\n", res.PlayerAdvice)
	fmt.Fprintf(b, "Opponent's Suggestion: %s\n", res.OpponentAdvice)

	if _, err := io.WriteString(w, b.String()); err != nil {
		return err
	}

	tables := []struct {
		title string
		table *probability.Table
	}{
		{"Player's Probabilities", res.PlayerProbabilities},
		{"Opponent's Probabilities", res.OpponentProbabilities},
	}

	for _, t := range tables {
		if _, err := fmt.Fprintf(w, "\n%s\n", t.title); err != nil {
			return err
		}

		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		_, _ = fmt.Fprintln(tw, "Hand\tChance (%)")
		for _, row := range t.table.Rows {
			_, _ = fmt.Fprintf(tw, "%s\t%.2f\n", row.Hand, row.Percentage)
		}

		if err := tw.Flush(); err != nil {
			return err
		}
	}

	return nil
}
