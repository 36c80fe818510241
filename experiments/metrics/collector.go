package metrics

import "time"

// SearchMetric describes one completed search: which algorithm ran, to what
// depth, how many nodes it expanded and how long it took.
type SearchMetric struct {
	Algorithm     string
	Depth         int
	NodesExpanded int
	Duration      time.Duration
}

// MoveRecord ties a search to its turn in a game.
type MoveRecord struct {
	Step   int
	Player string
	SearchMetric
}

// SearchRecord ties a search to the board it ran on.
type SearchRecord struct {
	Width  int
	Height int
	SearchMetric
}

// Collector accumulates the statistics of a single search. Start arms the
// collector and discards any previous counts, so one collector can serve
// consecutive searches without their node counts bleeding into each other.
// The search is sequential, so no synchronization is needed.
type Collector interface {
	Start(algorithm string, depth int)
	AddNode()
	Complete() SearchMetric
}

type collector struct {
	algorithm string
	depth     int
	startTime time.Time
	nodes     int
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start(algorithm string, depth int) {
	c.algorithm = algorithm
	c.depth = depth
	c.startTime = time.Now()
	c.nodes = 0
}

func (c *collector) AddNode() {
	c.nodes++
}

func (c *collector) Complete() SearchMetric {
	return SearchMetric{
		Algorithm:     c.algorithm,
		Depth:         c.depth,
		NodesExpanded: c.nodes,
		Duration:      time.Since(c.startTime),
	}
}

type dummyCollector struct{}

// NewDummyCollector returns a collector that records nothing, for callers
// that have no use for search statistics.
func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (c *dummyCollector) Start(algorithm string, depth int) {}
func (c *dummyCollector) AddNode()                          {}
func (c *dummyCollector) Complete() SearchMetric            { return SearchMetric{} }
