// Package output writes finished or in-progress games as PGN or JSON records.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/game"
)

// SevenTagRoster lists the PGN tags every game record carries, in order.
var SevenTagRoster = []string{"Event", "Site", "Date", "Round", "White", "Black", "Result"}

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
	err           error
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator or line break if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			o.print("\n")
			o.lineLength = 0
		} else {
			o.print(" ")
			o.lineLength++
		}
	}

	o.print(s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	o.print("\n")
	o.lineLength = 0
	o.needsSpace = false
}

// Err returns the first write error, if any.
func (o *OutputWriter) Err() error {
	return o.err
}

func (o *OutputWriter) print(s string) {
	if o.err != nil {
		return
	}
	_, o.err = io.WriteString(o.w, s)
}

// WritePGN writes g as a PGN record: the seven tag roster (values from tags,
// "?" when absent, Result from the game), SetUp and FEN tags when the game
// did not start from the standard position, then the wrapped movetext.
func WritePGN(w io.Writer, g *game.Game, tags map[string]string, cfg config.OutputConfig) error {
	result := g.Result()
	for _, tag := range SevenTagRoster {
		value := tags[tag]
		if tag == "Result" {
			value = result
		}
		if value == "" {
			value = "?"
		}
		if _, err := fmt.Fprintf(w, "[%s \"%s\"]\n", tag, escapeTagValue(value)); err != nil {
			return err
		}
	}
	if start := engine.PositionToFEN(g.StartPosition()); start != engine.InitialFEN {
		if _, err := fmt.Fprintf(w, "[SetUp \"1\"]\n[FEN \"%s\"]\n", start); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}

	ow := NewOutputWriter(w, int(cfg.MaxLineLength))
	writeMovetext(ow, g, cfg.KeepMoveNumbers)
	ow.Write(result)
	ow.NewLine()
	return ow.Err()
}

// writeMovetext writes the game's SAN moves with optional move numbers.
func writeMovetext(ow *OutputWriter, g *game.Game, keepMoveNumbers bool) {
	start := g.StartPosition()
	moveNum := start.MoveNumber
	isWhite := start.ToMove == chess.White

	for i, entry := range g.History() {
		if keepMoveNumbers {
			if isWhite {
				ow.Write(fmt.Sprintf("%d.", moveNum))
			} else if i == 0 {
				ow.Write(fmt.Sprintf("%d...", moveNum))
			}
		}
		ow.Write(entry.SAN)

		if !isWhite {
			moveNum++
		}
		isWhite = !isWhite
	}
}

// escapeTagValue escapes special characters in tag values.
func escapeTagValue(s string) string {
	if !strings.ContainsAny(s, "\\\"") {
		return s
	}
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	return s
}
