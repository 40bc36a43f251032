package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	chesserrors "github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{config.EnvStartFEN, config.EnvLogLevel, config.EnvLogFormat} {
		t.Setenv(k, "")
	}
}

func TestLoadConfig(t *testing.T) {
	clearEnv(t)

	t.Run("defaults", func(t *testing.T) {
		cfg, err := loadConfig("")
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, cfg, config.NewConfig())
	})

	t.Run("flag overrides are validated", func(t *testing.T) {
		defer saveRestoreString(startFEN, "8/8/8/8/8/8/8/8 w - - 0 1")()
		_, err := loadConfig("")
		testutil.AssertErrorIs(t, err, chesserrors.ErrInvalidConfig)
	})

	t.Run("line length flag", func(t *testing.T) {
		defer saveRestoreInt(lineLength, 10)()
		_, err := loadConfig("")
		testutil.AssertErrorIs(t, err, chesserrors.ErrInvalidConfig)
	})
}

func TestRunPerft(t *testing.T) {
	tests := []struct {
		name      string
		fen       string
		depth     int
		wantTotal string
	}{
		{"start depth 1", engine.InitialFEN, 1, "Nodes: 20\n"},
		{"start depth 2", engine.InitialFEN, 2, "Nodes: 400\n"},
		{"promotion", "4k3/P7/8/8/8/8/8/4K3 w - - 0 1", 1, "Nodes: 9\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, err := engine.NewPositionFromFEN(tt.fen)
			testutil.AssertNoError(t, err)

			var buf bytes.Buffer
			testutil.AssertNoError(t, runPerft(context.Background(), &buf, pos, tt.depth, config.PerftConfig{MaxDepth: config.DefaultMaxPerftDepth, Workers: 2}))
			testutil.AssertTrue(t, strings.HasSuffix(buf.String(), tt.wantTotal), "output %q should end with %q", buf.String(), tt.wantTotal)
		})
	}
}

func TestRunPerft_DepthLimit(t *testing.T) {
	pos := engine.NewInitialPosition()
	var buf bytes.Buffer

	if err := runPerft(context.Background(), &buf, pos, 0, config.PerftConfig{MaxDepth: 4}); err == nil {
		t.Error("runPerft(depth 0) should fail")
	}
	if err := runPerft(context.Background(), &buf, pos, 5, config.PerftConfig{MaxDepth: 4}); err == nil {
		t.Error("runPerft(depth above limit) should fail")
	}
	testutil.AssertEqual(t, buf.Len(), 0)
}

func TestRunPerft_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	err := runPerft(ctx, &buf, engine.NewInitialPosition(), 3, config.PerftConfig{MaxDepth: 4, Workers: 2})
	testutil.AssertErrorIs(t, err, context.Canceled)
	testutil.AssertEqual(t, buf.Len(), 0, "nothing printed for an abandoned count")
}
