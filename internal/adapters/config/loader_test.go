package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pathforge/internal/adapters/config"
	"go.trai.ch/pathforge/internal/core/domain"
	"go.trai.ch/pathforge/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func createFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func newLoader(t *testing.T) *config.Loader {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn(gomock.Any()).AnyTimes()
	return config.NewLoader(mockLogger)
}

func TestLoader_Load_Full(t *testing.T) {
	dir := t.TempDir()
	path := createFile(t, dir, "warehouse.yaml", `
name: warehouse
grid:
  width: 10
  height: 6
  diagonal: no-cut-corners
  blocked:
    - [4, 0]
    - [4, 1]
  regions:
    - {x: 6, y: 2, width: 2, height: 3}
  costs:
    - {at: [1, 1], cost: 2.5}
search:
  algorithm: Theta
  heuristic: euclidean
  tieBreaking: true
  maxExpansions: 500
  smooth: true
cache:
  capacity: 64
  ttl: 30s
flow:
  target: [9, 5]
  workers: 4
queries:
  - name: dock
    from: [0, 0]
    to: [9, 5]
  - from: [0, 5]
    to: [9, 0]
`)

	sc, err := newLoader(t).Load(path)
	require.NoError(t, err)

	assert.Equal(t, "warehouse", sc.Name)
	assert.Equal(t, 10, sc.Grid.Width)
	assert.Equal(t, 6, sc.Grid.Height)
	assert.Equal(t, domain.DiagonalNoCutCorners, sc.Grid.Diagonal)
	assert.Equal(t, []domain.Point{{X: 4, Y: 0}, {X: 4, Y: 1}}, sc.Grid.Blocked)
	assert.Equal(t, []domain.Rect{{X: 6, Y: 2, Width: 2, Height: 3}}, sc.Grid.Regions)
	assert.Equal(t, []domain.CellCost{{At: domain.Pt(1, 1), Cost: 2.5}}, sc.Grid.Costs)

	assert.Equal(t, domain.SearchSettings{
		Algorithm:       domain.AlgorithmTheta,
		Heuristic:       "euclidean",
		HeuristicWeight: 1,
		TieBreaking:     true,
		MaxExpansions:   500,
		Smooth:          true,
	}, sc.Search)
	assert.Equal(t, domain.CacheSettings{Capacity: 64, TTL: 30 * time.Second}, sc.Cache)

	require.NotNil(t, sc.Flow.Target)
	assert.Equal(t, domain.Pt(9, 5), *sc.Flow.Target)
	assert.Equal(t, 4, sc.Flow.Workers)

	assert.Equal(t, []domain.Query{
		{Name: "dock", From: domain.Pt(0, 0), To: domain.Pt(9, 5)},
		{Name: "query-2", From: domain.Pt(0, 5), To: domain.Pt(9, 0)},
	}, sc.Queries)
}

func TestLoader_Load_Hierarchical(t *testing.T) {
	path := createFile(t, t.TempDir(), "scenario.yaml",
		"grid: {width: 40, height: 40}\nsearch: {algorithm: HPA, clusterSize: 8}\n")

	sc, err := newLoader(t).Load(path)
	require.NoError(t, err)
	assert.Equal(t, domain.AlgorithmHPA, sc.Search.Algorithm)
	assert.Equal(t, 8, sc.Search.ClusterSize)
}

func TestLoader_Load_Rows(t *testing.T) {
	dir := t.TempDir()
	createFile(t, dir, domain.ScenarioFileName, `
grid:
  diagonal: always
  rows:
    - "..#."
    - ".3#."
    - "...1"
queries:
  - from: [0, 0]
    to: [3, 0]
`)

	sc, err := newLoader(t).Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "pathforge", sc.Name)
	assert.Equal(t, 4, sc.Grid.Width)
	assert.Equal(t, 3, sc.Grid.Height)
	assert.Equal(t, []domain.Point{{X: 2, Y: 0}, {X: 2, Y: 1}}, sc.Grid.Blocked)
	assert.Equal(t, []domain.CellCost{{At: domain.Pt(1, 1), Cost: 3}}, sc.Grid.Costs)
	assert.Equal(t, domain.AlgorithmAStar, sc.Search.Algorithm)
	assert.InDelta(t, 1.0, sc.Search.HeuristicWeight, 1e-12)
}

func TestLoader_Load_NotFound(t *testing.T) {
	loader := newLoader(t)

	_, err := loader.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrScenarioNotFound))

	_, err = loader.Load(t.TempDir())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrScenarioNotFound), "directory without a scenario file")
}

func TestLoader_Load_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    error
	}{
		{
			name:    "empty file",
			content: "",
			want:    domain.ErrInvalidScenario,
		},
		{
			name:    "unknown field",
			content: "grid: {width: 2, height: 2}\nspeed: 3\n",
			want:    domain.ErrInvalidScenario,
		},
		{
			name:    "missing dimensions",
			content: "grid: {diagonal: always}\n",
			want:    domain.ErrInvalidScenario,
		},
		{
			name:    "ragged rows",
			content: "grid:\n  rows: [\"...\", \"..\"]\n",
			want:    domain.ErrInvalidScenario,
		},
		{
			name:    "rows disagree with width",
			content: "grid:\n  width: 5\n  rows: [\"...\"]\n",
			want:    domain.ErrInvalidScenario,
		},
		{
			name:    "bad row character",
			content: "grid:\n  rows: [\"..x\"]\n",
			want:    domain.ErrInvalidScenario,
		},
		{
			name:    "unknown diagonal",
			content: "grid: {width: 2, height: 2, diagonal: sideways}\n",
			want:    domain.ErrUnknownDiagonalMode,
		},
		{
			name:    "unknown heuristic",
			content: "grid: {width: 2, height: 2}\nsearch: {heuristic: chebyshev}\n",
			want:    domain.ErrUnknownHeuristic,
		},
		{
			name:    "unknown algorithm",
			content: "grid: {width: 2, height: 2}\nsearch: {algorithm: dfs}\n",
			want:    domain.ErrUnknownAlgorithm,
		},
		{
			name:    "negative weight",
			content: "grid: {width: 2, height: 2}\nsearch: {weight: -1}\n",
			want:    domain.ErrInvalidScenario,
		},
		{
			name:    "negative max expansions",
			content: "grid: {width: 2, height: 2}\nsearch: {maxExpansions: -5}\n",
			want:    domain.ErrInvalidScenario,
		},
		{
			name:    "negative cluster size",
			content: "grid: {width: 2, height: 2}\nsearch: {algorithm: hpa, clusterSize: -1}\n",
			want:    domain.ErrInvalidScenario,
		},
		{
			name:    "bad ttl",
			content: "grid: {width: 2, height: 2}\ncache: {capacity: 4, ttl: soon}\n",
			want:    domain.ErrInvalidScenario,
		},
		{
			name:    "blocked cell outside grid",
			content: "grid:\n  width: 2\n  height: 2\n  blocked: [[5, 5]]\n",
			want:    domain.ErrOutOfBounds,
		},
		{
			name:    "zero cost",
			content: "grid:\n  width: 2\n  height: 2\n  costs: [{at: [0, 0], cost: 0}]\n",
			want:    domain.ErrInvalidCost,
		},
		{
			name:    "short point",
			content: "grid: {width: 2, height: 2}\nqueries:\n  - {from: [0], to: [1, 1]}\n",
			want:    domain.ErrInvalidScenario,
		},
		{
			name:    "duplicate query names",
			content: "grid: {width: 2, height: 2}\nqueries:\n  - {name: a, from: [0, 0], to: [1, 1]}\n  - {name: a, from: [1, 1], to: [0, 0]}\n",
			want:    domain.ErrInvalidScenario,
		},
		{
			name:    "flow target outside grid",
			content: "grid: {width: 2, height: 2}\nflow: {target: [2, 0]}\n",
			want:    domain.ErrInvalidScenario,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := createFile(t, t.TempDir(), "scenario.yaml", tt.content)
			_, err := newLoader(t).Load(path)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestLoader_Load_WarnsOnUnusedTTL(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn("cache ttl has no effect without a cache capacity").Times(1)

	path := createFile(t, t.TempDir(), "scenario.yaml", "grid: {width: 3, height: 3}\ncache: {ttl: 1m}\n")
	sc, err := config.NewLoader(mockLogger).Load(path)
	require.NoError(t, err)
	assert.Equal(t, time.Minute, sc.Cache.TTL)
}
