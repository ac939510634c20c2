package mcp

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/ludo-technologies/empdash/internal/config"
	"github.com/ludo-technologies/empdash/service"
)

func NewTestDependencies(t *testing.T) *Dependencies {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Data.Fixtures = []string{filepath.Join("..", "internal", "events", "testdata", "dataset.yaml")}
	cfg.Charts.Format = "svg"

	rt, err := service.NewRuntime(context.Background(), cfg, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(rt.Close)
	return NewDependencies(rt)
}
