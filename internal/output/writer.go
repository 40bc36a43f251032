package output

import (
	"io"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/game"
)

// GameWriter is the interface for writing games to output.
// Different implementations handle different output formats (PGN, JSON).
type GameWriter interface {
	// WriteGame writes a single game record to the output.
	WriteGame(g *game.Game) error
}

// PGNWriter writes games in PGN format.
type PGNWriter struct {
	w    io.Writer
	cfg  config.OutputConfig
	tags map[string]string
}

// NewPGNWriter creates a new PGN writer. tags supplies the seven tag roster
// values other than Result.
func NewPGNWriter(w io.Writer, cfg config.OutputConfig, tags map[string]string) *PGNWriter {
	return &PGNWriter{w: w, cfg: cfg, tags: tags}
}

// WriteGame writes a game in PGN format.
func (pw *PGNWriter) WriteGame(g *game.Game) error {
	return WritePGN(pw.w, g, pw.tags, pw.cfg)
}

// JSONWriter writes each game as an indented JSON record.
type JSONWriter struct {
	w io.Writer
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// WriteGame writes a game in JSON format.
func (jw *JSONWriter) WriteGame(g *game.Game) error {
	return WriteJSON(jw.w, g)
}

// NewWriter returns the writer selected by cfg.JSON.
func NewWriter(w io.Writer, cfg config.OutputConfig, tags map[string]string) GameWriter {
	if cfg.JSON {
		return NewJSONWriter(w)
	}
	return NewPGNWriter(w, cfg, tags)
}
