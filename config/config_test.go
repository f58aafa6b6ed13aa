package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rastergroup/config"
	"github.com/katalvlaran/rastergroup/gridgraph"
	"github.com/katalvlaran/rastergroup/regions"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 4, cfg.Connectivity)
	assert.Equal(t, regions.DefaultEpsilon, cfg.Epsilon)
	assert.Equal(t, "merge", cfg.Strategy)
	assert.Empty(t, cfg.Clusters)

	lvl, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, log.InfoLevel, lvl)
}

func TestParse_Full(t *testing.T) {
	cfg, err := config.Parse([]byte(`
connectivity = 8
epsilon = 0.001
strategy = "floodfill"
clusters = [0.125, 0.875]
log_level = "debug"
`))
	require.NoError(t, err)
	assert.Equal(t, config.Config{
		Connectivity: 8,
		Epsilon:      0.001,
		Strategy:     "floodfill",
		Clusters:     []float64{0.125, 0.875},
		LogLevel:     "debug",
	}, cfg)
}

// TestParse_Partial keeps defaults for keys the file leaves out.
func TestParse_Partial(t *testing.T) {
	cfg, err := config.Parse([]byte(`connectivity = 8`))
	require.NoError(t, err)
	want := config.Default()
	want.Connectivity = 8
	assert.Equal(t, want, cfg)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"UnknownKey", "conectivity = 8", config.ErrUnknownKey},
		{"BadConnectivity", "connectivity = 6", config.ErrInvalidConfig},
		{"NegativeEpsilon", "epsilon = -0.5", config.ErrInvalidConfig},
		{"NaNEpsilon", "epsilon = nan", config.ErrInvalidConfig},
		{"BadStrategy", `strategy = "watershed"`, config.ErrInvalidConfig},
		{"NaNCluster", "clusters = [1.0, nan]", config.ErrInvalidConfig},
		{"InfCluster", "clusters = [1.0, -inf]", config.ErrInvalidConfig},
		{"BadLevel", `log_level = "loud"`, config.ErrInvalidConfig},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Parse([]byte(tc.doc))
			if !errors.Is(err, tc.want) {
				t.Errorf("Parse(%q) error = %v; want %v", tc.doc, err, tc.want)
			}
		})
	}

	_, err := config.Parse([]byte("connectivity = "))
	assert.Error(t, err, "malformed TOML")
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.toml")
	require.NoError(t, os.WriteFile(path, []byte("strategy = \"flood-fill\"\n"), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "flood-fill", cfg.Strategy)

	_, err = config.Load(filepath.Join(dir, "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("epsilon = -1\n"), 0o600))
	_, err = config.Load(bad)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
	assert.Contains(t, err.Error(), "bad.toml")
}

// TestOptions feeds the converted options into a Grid.
func TestOptions(t *testing.T) {
	cfg := config.Default()
	cfg.Connectivity = 8
	cfg.Epsilon = 0.5
	cfg.Strategy = "floodfill"

	opts, err := cfg.Options(nil)
	require.NoError(t, err)
	g, err := regions.NewGrid(2, 1, []float64{1, 1.4}, opts...)
	require.NoError(t, err)

	got := g.Options()
	assert.Equal(t, gridgraph.Conn8, got.Conn)
	assert.Equal(t, 0.5, got.Epsilon)
	assert.Equal(t, regions.StrategyFloodFill, got.Strategy)
	assert.NotNil(t, got.Logger)

	_, err = g.GroupAll()
	require.NoError(t, err)
	assert.Equal(t, []int{2}, g.Sizes())

	cfg.Connectivity = 5
	_, err = cfg.Options(nil)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}
