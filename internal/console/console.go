// Package console draws the game for a terminal and reads the user's shots.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	mb "github.com/saeidalz13/battleship-console/models/battleship"
)

const (
	bannerWidth = 58
	boardIndent = 8
	boardGap    = 12
	shotPrompt  = "Enter shot coordinates (row column): "
)

func Greet(w io.Writer) {
	lines := []string{
		"",
		`Sea Battle`,
		"Shot format: x y",
		"x is the row, y is the column",
		"",
	}

	fmt.Fprintln(w, strings.Repeat("*", bannerWidth))
	for _, text := range lines {
		pad := bannerWidth - 2 - len(text)
		fmt.Fprintf(w, "*%s%s%s*\n", strings.Repeat(" ", pad/2), text, strings.Repeat(" ", pad-pad/2))
	}
	fmt.Fprintln(w, strings.Repeat("*", bannerWidth))
}

// PrintBoards prints the user's board and the computer's board side by side
// with the number of ships each side has left.
func PrintBoards(w io.Writer, snapshot *mb.Snapshot) {
	if snapshot == nil {
		return
	}

	indent := strings.Repeat(" ", boardIndent)
	gap := strings.Repeat(" ", boardGap)

	fmt.Fprintf(w, "\n%s  Your board:%s   Enemy board:\n", indent, gap)
	for i := range snapshot.UserRows {
		var enemyRow string
		if i < len(snapshot.ComputerRows) {
			enemyRow = snapshot.ComputerRows[i]
		}
		fmt.Fprintf(w, "%s%s%s%s\n", indent, snapshot.UserRows[i], gap, enemyRow)
	}
	fmt.Fprintf(w, "     Ships left: %d      Ships left: %d\n", snapshot.UserShipsAlive, snapshot.ComputerShipsAlive)
	fmt.Fprintln(w, "\n"+strings.Repeat("*", bannerWidth))
}

// EventPrinter narrates game events to w.
func EventPrinter(w io.Writer) mb.EventHandler {
	return func(ev mb.Event) {
		switch ev.Code {
		case mb.EventGameStarted:
			PrintBoards(w, ev.Snapshot)

		case mb.EventShotRejected:
			fmt.Fprintf(w, "%s: %v\n", ev.Player, ev.Err)

		case mb.EventTurnPlayed:
			if ev.Player == mb.PlayerNameComputer {
				fmt.Fprintf(w, "Enemy shoots at: %d %d\n", ev.Target.X+1, ev.Target.Y+1)
			}
			fmt.Fprintln(w, outcomeText(ev.Outcome))
			PrintBoards(w, ev.Snapshot)

		case mb.EventGameOver:
			winner := "You won!"
			if ev.Status == mb.MatchStatusComputerWon {
				winner = "The computer won!"
			}
			fmt.Fprintf(w, "%s%s\n", strings.Repeat(" ", 20), winner)
		}
	}
}

// InvalidInputPrinter tells the user why a line was not accepted.
func InvalidInputPrinter(w io.Writer) func(error) {
	return func(err error) {
		fmt.Fprintln(w, err)
	}
}

func outcomeText(outcome mb.AttackOutcome) string {
	switch outcome {
	case mb.AttackOutcomeDamaged:
		return "Hit!"
	case mb.AttackOutcomeSunk:
		return "Killed!"
	default:
		return "Miss!"
	}
}

type line struct {
	text string
	err  error
}

// Reader prompts on w and reads lines from r. The underlying scan runs on
// its own goroutine so a pending read can be abandoned through ctx.
type Reader struct {
	w     io.Writer
	r     io.Reader
	lines chan line
	once  sync.Once
}

var _ mb.LineReader = (*Reader)(nil)

func NewReader(r io.Reader, w io.Writer) *Reader {
	return &Reader{
		w:     w,
		r:     r,
		lines: make(chan line),
	}
}

func (rd *Reader) scan() {
	scanner := bufio.NewScanner(rd.r)
	for scanner.Scan() {
		rd.lines <- line{text: scanner.Text()}
	}

	err := scanner.Err()
	if err == nil {
		err = io.EOF
	}
	// keep answering reads after the input is gone
	for {
		rd.lines <- line{err: err}
	}
}

func (rd *Reader) ReadLine(ctx context.Context) (string, error) {
	rd.once.Do(func() { go rd.scan() })

	fmt.Fprint(rd.w, shotPrompt)
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case l := <-rd.lines:
		return l.text, l.err
	}
}
