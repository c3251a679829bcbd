package metrics

import (
	"time"
)

type SearchMetric struct {
	MaxDepth int
	Levels   int
	Expanded int // Successors that passed the occupancy check
	Pruned   int // Successors rejected as occupied or out of bounds
	Dropped  int // Duplicates that claimed no cell
	Replaced int // Cells taken over by a shallower node
	Duration time.Duration
}

type MoveMetric struct {
	Step   int
	Player string
	Move   string
	SearchMetric
}

type GameMetric struct {
	Players   []string
	Winner    string
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
	Turns     int
}

type Collector interface {
	Start(maxDepth int)
	AddLevel()
	AddExpanded(n int)
	AddPruned(n int)
	AddDropped()
	AddReplaced()
	Complete() SearchMetric
}

// collector is not safe for concurrent use. A search runs on one goroutine.
type collector struct {
	startTime time.Time
	metric    SearchMetric
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(maxDepth int) {
	m.startTime = time.Now()
	m.metric = SearchMetric{MaxDepth: maxDepth}
}

func (m *collector) AddLevel() {
	m.metric.Levels++
}

func (m *collector) AddExpanded(n int) {
	m.metric.Expanded += n
}

func (m *collector) AddPruned(n int) {
	m.metric.Pruned += n
}

func (m *collector) AddDropped() {
	m.metric.Dropped++
}

func (m *collector) AddReplaced() {
	m.metric.Replaced++
}

func (m *collector) Complete() SearchMetric {
	metric := m.metric
	metric.Duration = time.Since(m.startTime)
	return metric
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(maxDepth int)     {}
func (m *dummyCollector) AddLevel()              {}
func (m *dummyCollector) AddExpanded(n int)      {}
func (m *dummyCollector) AddPruned(n int)        {}
func (m *dummyCollector) AddDropped()            {}
func (m *dummyCollector) AddReplaced()           {}
func (m *dummyCollector) Complete() SearchMetric { return SearchMetric{} }
