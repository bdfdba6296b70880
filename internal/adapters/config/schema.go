package config

// ScenarioFile is the YAML layout of a pathforge.yaml file.
type ScenarioFile struct {
	Name    string      `yaml:"name"`
	Grid    GridDTO     `yaml:"grid"`
	Search  SearchDTO   `yaml:"search"`
	Cache   CacheDTO    `yaml:"cache"`
	Flow    FlowDTO     `yaml:"flow"`
	Queries []*QueryDTO `yaml:"queries"`
}

// GridDTO describes the world. Rows, when given, draw the grid one string per
// row: '#' is blocked, '.' is open and '1'..'9' is an open cell with that cost.
// Width and height default to the drawing's size.
type GridDTO struct {
	Width    int       `yaml:"width"`
	Height   int       `yaml:"height"`
	Diagonal string    `yaml:"diagonal"`
	Rows     []string  `yaml:"rows"`
	Blocked  [][]int   `yaml:"blocked"`
	Regions  []RectDTO `yaml:"regions"`
	Costs    []CostDTO `yaml:"costs"`
}

// RectDTO is a blocked rectangle.
type RectDTO struct {
	X      int `yaml:"x"`
	Y      int `yaml:"y"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// CostDTO assigns a cost to the cell at [x, y].
type CostDTO struct {
	At   []int   `yaml:"at"`
	Cost float64 `yaml:"cost"`
}

// SearchDTO selects and tunes the search algorithm.
type SearchDTO struct {
	Algorithm     string  `yaml:"algorithm"`
	Heuristic     string  `yaml:"heuristic"`
	Weight        float64 `yaml:"weight"`
	TieBreaking   bool    `yaml:"tieBreaking"`
	MaxExpansions int     `yaml:"maxExpansions"`
	Smooth        bool    `yaml:"smooth"`
	// ClusterSize is the cluster edge length of the hpa algorithm.
	ClusterSize int `yaml:"clusterSize"`
}

// CacheDTO configures the result cache. TTL is a Go duration string.
type CacheDTO struct {
	Capacity int    `yaml:"capacity"`
	TTL      string `yaml:"ttl"`
}

// FlowDTO configures direction field computation.
type FlowDTO struct {
	Target  []int `yaml:"target"`
	Workers int   `yaml:"workers"`
}

// QueryDTO is one start/goal pair given as [x, y] cells.
type QueryDTO struct {
	Name string `yaml:"name"`
	From []int  `yaml:"from"`
	To   []int  `yaml:"to"`
}
