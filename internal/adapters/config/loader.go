// Package config loads pathforge scenario files.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.trai.ch/pathforge/internal/core/domain"
	"go.trai.ch/pathforge/internal/core/grid"
	"go.trai.ch/pathforge/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ScenarioLoader for YAML files.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads and validates the scenario at path. An empty path or a
// directory resolves to domain.ScenarioFileName inside it.
//
// Structural problems wrap domain.ErrInvalidScenario. Unknown algorithm,
// heuristic and diagonal names keep their own sentinels, as do cells outside
// the grid and invalid costs.
func (l *Loader) Load(path string) (*domain.Scenario, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return nil, err
	}

	var file ScenarioFile
	if err := readAndUnmarshalYAML(resolved, &file); err != nil {
		return nil, zerr.With(err, "path", resolved)
	}

	sc, err := l.build(&file)
	if err != nil {
		return nil, zerr.With(err, "path", resolved)
	}
	if sc.Name == "" {
		sc.Name = strings.TrimSuffix(filepath.Base(resolved), filepath.Ext(resolved))
	}
	return sc, nil
}

func resolvePath(path string) (string, error) {
	if path == "" {
		path = "."
	}
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", zerr.With(zerr.Wrap(domain.ErrScenarioNotFound, "failed to locate scenario"), "path", path)
		}
		return "", zerr.With(zerr.Wrap(err, "failed to stat scenario"), "path", path)
	}
	if !info.IsDir() {
		return path, nil
	}
	file := filepath.Join(path, domain.ScenarioFileName)
	if _, err := os.Stat(file); err != nil {
		return "", zerr.With(zerr.Wrap(domain.ErrScenarioNotFound, "failed to locate scenario"), "path", file)
	}
	return file, nil
}

func readAndUnmarshalYAML[T any](path string, target *T) error {
	// #nosec G304 -- path is resolved by the caller
	data, err := os.ReadFile(path)
	if err != nil {
		return zerr.Wrap(err, "failed to read scenario")
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(target); err != nil {
		if errors.Is(err, io.EOF) {
			return invalid("scenario file is empty")
		}
		return invalid("failed to parse scenario", "reason", err.Error())
	}
	return nil
}

func (l *Loader) build(f *ScenarioFile) (*domain.Scenario, error) {
	spec, err := buildGrid(&f.Grid)
	if err != nil {
		return nil, err
	}
	settings, err := buildSearch(&f.Search)
	if err != nil {
		return nil, err
	}
	cache, err := l.buildCache(&f.Cache)
	if err != nil {
		return nil, err
	}
	flow, err := buildFlow(&f.Flow, spec)
	if err != nil {
		return nil, err
	}
	queries, err := buildQueries(f.Queries)
	if err != nil {
		return nil, err
	}

	return &domain.Scenario{
		Name:    f.Name,
		Grid:    spec,
		Search:  settings,
		Cache:   cache,
		Flow:    flow,
		Queries: queries,
	}, nil
}

func buildGrid(dto *GridDTO) (domain.GridSpec, error) {
	mode, err := domain.ParseDiagonalMode(dto.Diagonal)
	if err != nil {
		return domain.GridSpec{}, err
	}
	spec := domain.GridSpec{Width: dto.Width, Height: dto.Height, Diagonal: mode}

	if len(dto.Rows) > 0 {
		if err := drawRows(&spec, dto.Rows); err != nil {
			return domain.GridSpec{}, err
		}
	}
	if spec.Width <= 0 || spec.Height <= 0 {
		return domain.GridSpec{}, invalid("grid dimensions must be positive", "width", spec.Width, "height", spec.Height)
	}

	for i, raw := range dto.Blocked {
		p, err := toPoint(raw, fmt.Sprintf("grid.blocked[%d]", i))
		if err != nil {
			return domain.GridSpec{}, err
		}
		spec.Blocked = append(spec.Blocked, p)
	}
	for i, r := range dto.Regions {
		if r.Width < 0 || r.Height < 0 {
			return domain.GridSpec{}, invalid("region size must not be negative", "field", fmt.Sprintf("grid.regions[%d]", i))
		}
		spec.Regions = append(spec.Regions, domain.Rect{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height})
	}
	for i, c := range dto.Costs {
		p, err := toPoint(c.At, fmt.Sprintf("grid.costs[%d].at", i))
		if err != nil {
			return domain.GridSpec{}, err
		}
		spec.Costs = append(spec.Costs, domain.CellCost{At: p, Cost: c.Cost})
	}

	if _, err := grid.FromSpec(spec); err != nil {
		return domain.GridSpec{}, zerr.Wrap(err, "failed to build grid")
	}
	return spec, nil
}

// drawRows applies an ASCII drawing to spec, filling in missing dimensions.
func drawRows(spec *domain.GridSpec, rows []string) error {
	width := len(rows[0])
	if spec.Width == 0 {
		spec.Width = width
	}
	if spec.Height == 0 {
		spec.Height = len(rows)
	}
	if spec.Width != width || spec.Height != len(rows) {
		return invalid("grid rows do not match the grid dimensions",
			"width", spec.Width, "height", spec.Height, "rows", len(rows), "columns", width)
	}

	for y, row := range rows {
		if len(row) != width {
			return invalid("grid rows must all have the same length", "row", y)
		}
		for x := range len(row) {
			switch c := row[x]; {
			case c == '#':
				spec.Blocked = append(spec.Blocked, domain.Pt(x, y))
			case c == '.' || c == '1':
			case c >= '2' && c <= '9':
				spec.Costs = append(spec.Costs, domain.CellCost{At: domain.Pt(x, y), Cost: float64(c - '0')})
			default:
				return invalid("unexpected character in grid rows", "row", y, "column", x, "char", string(c))
			}
		}
	}
	return nil
}

func buildSearch(dto *SearchDTO) (domain.SearchSettings, error) {
	algorithm := strings.ToLower(strings.TrimSpace(dto.Algorithm))
	switch algorithm {
	case "":
		algorithm = domain.AlgorithmAStar
	case domain.AlgorithmAStar, domain.AlgorithmJPS, domain.AlgorithmTheta, domain.AlgorithmHPA:
	default:
		return domain.SearchSettings{}, zerr.With(
			zerr.Wrap(domain.ErrUnknownAlgorithm, "failed to resolve algorithm"), "algorithm", dto.Algorithm)
	}
	if _, err := domain.ParseHeuristic(dto.Heuristic); err != nil {
		return domain.SearchSettings{}, err
	}
	if dto.Weight < 0 {
		return domain.SearchSettings{}, invalid("heuristic weight must not be negative", "weight", dto.Weight)
	}
	if dto.MaxExpansions < 0 {
		return domain.SearchSettings{}, invalid("max expansions must not be negative", "maxExpansions", dto.MaxExpansions)
	}
	if dto.ClusterSize < 0 {
		return domain.SearchSettings{}, invalid("cluster size must not be negative", "clusterSize", dto.ClusterSize)
	}

	weight := dto.Weight
	if weight == 0 {
		weight = 1
	}
	return domain.SearchSettings{
		Algorithm:       algorithm,
		Heuristic:       dto.Heuristic,
		HeuristicWeight: weight,
		TieBreaking:     dto.TieBreaking,
		MaxExpansions:   dto.MaxExpansions,
		Smooth:          dto.Smooth,
		ClusterSize:     dto.ClusterSize,
	}, nil
}

func (l *Loader) buildCache(dto *CacheDTO) (domain.CacheSettings, error) {
	if dto.Capacity < 0 {
		return domain.CacheSettings{}, invalid("cache capacity must not be negative", "capacity", dto.Capacity)
	}
	var ttl time.Duration
	if dto.TTL != "" {
		d, err := time.ParseDuration(dto.TTL)
		if err != nil || d < 0 {
			return domain.CacheSettings{}, invalid("cache ttl must be a non-negative duration", "ttl", dto.TTL)
		}
		ttl = d
	}
	if dto.Capacity == 0 && ttl > 0 && l.Logger != nil {
		l.Logger.Warn("cache ttl has no effect without a cache capacity")
	}
	return domain.CacheSettings{Capacity: dto.Capacity, TTL: ttl}, nil
}

func buildFlow(dto *FlowDTO, spec domain.GridSpec) (domain.FlowSettings, error) {
	if dto.Workers < 0 {
		return domain.FlowSettings{}, invalid("flow workers must not be negative", "workers", dto.Workers)
	}
	out := domain.FlowSettings{Workers: dto.Workers}
	if dto.Target != nil {
		p, err := toPoint(dto.Target, "flow.target")
		if err != nil {
			return domain.FlowSettings{}, err
		}
		if p.X < 0 || p.Y < 0 || p.X >= spec.Width || p.Y >= spec.Height {
			return domain.FlowSettings{}, invalid("flow target is outside the grid", "target", p.String())
		}
		out.Target = &p
	}
	return out, nil
}

func buildQueries(dtos []*QueryDTO) ([]domain.Query, error) {
	out := make([]domain.Query, 0, len(dtos))
	seen := make(map[string]bool, len(dtos))
	for i, dto := range dtos {
		field := fmt.Sprintf("queries[%d]", i)
		if dto == nil {
			return nil, invalid("query is empty", "field", field)
		}
		from, err := toPoint(dto.From, field+".from")
		if err != nil {
			return nil, err
		}
		to, err := toPoint(dto.To, field+".to")
		if err != nil {
			return nil, err
		}
		name := dto.Name
		if name == "" {
			name = fmt.Sprintf("query-%d", i+1)
		}
		if seen[name] {
			return nil, invalid("duplicate query name", "query", name)
		}
		seen[name] = true
		out = append(out, domain.Query{Name: name, From: from, To: to})
	}
	return out, nil
}

func toPoint(v []int, field string) (domain.Point, error) {
	if len(v) != 2 {
		return domain.Point{}, invalid("cell must be written as [x, y]", "field", field)
	}
	return domain.Pt(v[0], v[1]), nil
}

func invalid(msg string, attrs ...any) error {
	err := zerr.Wrap(domain.ErrInvalidScenario, msg)
	for i := 0; i+1 < len(attrs); i += 2 {
		err = zerr.With(err, attrs[i].(string), attrs[i+1])
	}
	return err
}
