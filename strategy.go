package kclosest

import (
	"fmt"
	"strings"
)

// Strategy identifies a k-nearest selection algorithm.
type Strategy int

const (
	// StrategyFullSort sorts a copy of the collection by distance. O(n log n).
	StrategyFullSort Strategy = iota
	// StrategySelection runs k passes of selection sort. O(n·k).
	StrategySelection
	// StrategyHeapSort heapifies the whole collection and drains k. O(n + k log n).
	StrategyHeapSort
	// StrategyBoundedHeap keeps a max-heap of the k best candidates. O(n log k), O(k) memory.
	StrategyBoundedHeap
	// StrategyLinearScan returns the single nearest element. O(n).
	StrategyLinearScan

	numStrategies
)

var strategyNames = [numStrategies]string{
	StrategyFullSort:    "sort",
	StrategySelection:   "selection",
	StrategyHeapSort:    "heapsort",
	StrategyBoundedHeap: "heap",
	StrategyLinearScan:  "single",
}

func (s Strategy) String() string {
	if !s.valid() {
		return fmt.Sprintf("Unknown(%d)", int(s))
	}
	return strategyNames[s]
}

func (s Strategy) valid() bool {
	return s >= 0 && s < numStrategies
}

// Strategies returns the k-returning strategies in a stable order.
// All of them select the same multiset of distances for the same input.
func Strategies() []Strategy {
	return []Strategy{StrategyFullSort, StrategySelection, StrategyHeapSort, StrategyBoundedHeap}
}

// ParseStrategy returns the Strategy with the given name (case-insensitive).
func ParseStrategy(name string) (Strategy, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for s, n := range strategyNames {
		if n == name {
			return Strategy(s), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}
