package searcher

import "time"

// SearchMetric describes one completed Search call.
type SearchMetric struct {
	Simulations    int
	CPuct          float64
	Duration       time.Duration
	Expansions     int
	TerminalLeaves int
	MaxDepth       int
}

// Collector gathers per-search statistics. Search uses the dummy collector
// unless metrics are requested.
type Collector interface {
	Start(simulations int, cPuct float64)
	AddExpansion()
	AddTerminalLeaf()
	ObserveDepth(depth int)
	Complete() SearchMetric
}

type collector struct {
	simulations    int
	cPuct          float64
	startTime      time.Time
	expansions     int
	terminalLeaves int
	maxDepth       int
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start(simulations int, cPuct float64) {
	c.startTime = time.Now()
	c.simulations = simulations
	c.cPuct = cPuct
	c.expansions = 0
	c.terminalLeaves = 0
	c.maxDepth = 0
}

func (c *collector) AddExpansion() {
	c.expansions++
}

func (c *collector) AddTerminalLeaf() {
	c.terminalLeaves++
}

func (c *collector) ObserveDepth(depth int) {
	if depth > c.maxDepth {
		c.maxDepth = depth
	}
}

func (c *collector) Complete() SearchMetric {
	return SearchMetric{
		Simulations:    c.simulations,
		CPuct:          c.cPuct,
		Duration:       time.Since(c.startTime),
		Expansions:     c.expansions,
		TerminalLeaves: c.terminalLeaves,
		MaxDepth:       c.maxDepth,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (dummyCollector) Start(simulations int, cPuct float64) {}
func (dummyCollector) AddExpansion()                        {}
func (dummyCollector) AddTerminalLeaf()                     {}
func (dummyCollector) ObserveDepth(depth int)               {}
func (dummyCollector) Complete() SearchMetric               { return SearchMetric{} }
