package config

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// MinLineLength is the shortest accepted PGN line length.
const MinLineLength = 20

// OutputConfig holds settings related to game record output.
type OutputConfig struct {
	// MaxLineLength is the maximum line length for PGN movetext
	MaxLineLength uint `yaml:"max_line_length"`

	// JSON selects JSON records instead of PGN
	JSON bool `yaml:"json"`

	// KeepMoveNumbers controls whether move numbers are included
	KeepMoveNumbers bool `yaml:"keep_move_numbers"`
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		MaxLineLength:   80,
		KeepMoveNumbers: true,
	}
}

// Validate checks that the output configuration is valid.
func (o *OutputConfig) Validate() error {
	if o.MaxLineLength < MinLineLength {
		return fmt.Errorf("max line length (%d) < %d: %w", o.MaxLineLength, MinLineLength, errors.ErrInvalidConfig)
	}
	return nil
}
