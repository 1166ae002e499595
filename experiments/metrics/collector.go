package metrics

import (
	"sync/atomic"
	"time"
)

// Source tells which rule produced a chosen move.
type Source int

const (
	FromSearch   Source = iota // First move of a plan found by the bounded search
	FromFallback               // Greedy one-ply scorer after the search found no plan
	FromForced                 // Budget exhausted, search skipped
)

func (s Source) String() string {
	switch s {
	case FromSearch:
		return "search"
	case FromFallback:
		return "fallback"
	case FromForced:
		return "forced"
	default:
		return "unknown"
	}
}

// Prune names a rule that discarded a successor during the search.
type Prune int

const (
	PruneVisited  Prune = iota // Key already reached within fewer plies
	PruneTarget                // Successor lost the target piece
	PruneCapture               // Move lands on the target's cell
	PruneBudget                // Estimate cannot fit in the remaining plies
	PruneBlocking              // Non-target piece steps onto the target's route
	numPrunes
)

type SearchMetric struct {
	Depth    int // Ply budget handed to the search
	Duration time.Duration
	Expanded int // Nodes popped and expanded
	Pushed   int // Successors added to the frontier
	Pruned   [numPrunes]int
	Source   Source
}

type MoveMetric struct {
	Step  int
	Piece int
	From  int
	To    int
	SearchMetric
}

type GameMetric struct {
	Level      string
	Agent      string
	Won        bool
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
}

type Collector interface {
	Start(depth int)
	AddExpanded()
	AddPushed()
	AddPruned(rule Prune)
	SetSource(source Source)
	Complete() SearchMetric
}

type collector struct {
	depth     int
	startTime time.Time
	expanded  atomic.Int32
	pushed    atomic.Int32
	pruned    [numPrunes]atomic.Int32
	source    atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(depth int) {
	m.startTime = time.Now()
	m.depth = depth
	m.expanded.Store(0)
	m.pushed.Store(0)
	for i := range m.pruned {
		m.pruned[i].Store(0)
	}
	m.source.Store(int32(FromSearch))
}

func (m *collector) AddExpanded() {
	m.expanded.Add(1)
}

func (m *collector) AddPushed() {
	m.pushed.Add(1)
}

func (m *collector) AddPruned(rule Prune) {
	m.pruned[rule].Add(1)
}

func (m *collector) SetSource(source Source) {
	m.source.Store(int32(source))
}

func (m *collector) Complete() SearchMetric {
	metric := SearchMetric{
		Depth:    m.depth,
		Duration: time.Since(m.startTime),
		Expanded: int(m.expanded.Load()),
		Pushed:   int(m.pushed.Load()),
		Source:   Source(m.source.Load()),
	}
	for i := range m.pruned {
		metric.Pruned[i] = int(m.pruned[i].Load())
	}
	return metric
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(depth int)         {}
func (m *dummyCollector) AddExpanded()            {}
func (m *dummyCollector) AddPushed()              {}
func (m *dummyCollector) AddPruned(rule Prune)    {}
func (m *dummyCollector) SetSource(source Source) {}
func (m *dummyCollector) Complete() SearchMetric  { return SearchMetric{} }
