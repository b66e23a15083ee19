package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownConcept is returned when a concept name is not in the vocabulary
var ErrUnknownConcept = errors.New("unknown concept")

// Concept is a tag from the closed vocabulary of algorithm and data
// structure topics shared by question tags and report weak concepts.
type Concept int

const (
	ConceptUnset Concept = iota

	// Core data structures
	ConceptArrays
	ConceptStrings
	ConceptHashTable
	ConceptTwoPointers
	ConceptSlidingWindow
	ConceptStack
	ConceptQueue
	ConceptLinkedList
	ConceptTree
	ConceptBinaryTree
	ConceptBST
	ConceptHeapPriorityQueue
	ConceptTrie

	// Algorithms and patterns
	ConceptBinarySearch
	ConceptSorting
	ConceptPrefixSum
	ConceptIntervals
	ConceptGraph
	ConceptBFS
	ConceptDFS
	ConceptTopologicalSort
	ConceptUnionFind
	ConceptBacktracking
	ConceptGreedy
	ConceptDynamicProgramming
	ConceptBitManipulation

	// Complexity and analysis
	ConceptTimeComplexity
	ConceptSpaceComplexity

	ConceptDesign

	conceptSentinel
)

var conceptNames = [...]string{
	ConceptUnset:              "",
	ConceptArrays:             "ARRAYS",
	ConceptStrings:            "STRINGS",
	ConceptHashTable:          "HASH_TABLE",
	ConceptTwoPointers:        "TWO_POINTERS",
	ConceptSlidingWindow:      "SLIDING_WINDOW",
	ConceptStack:              "STACK",
	ConceptQueue:              "QUEUE",
	ConceptLinkedList:         "LINKED_LIST",
	ConceptTree:               "TREE",
	ConceptBinaryTree:         "BINARY_TREE",
	ConceptBST:                "BST",
	ConceptHeapPriorityQueue:  "HEAP_PRIORITY_QUEUE",
	ConceptTrie:               "TRIE",
	ConceptBinarySearch:       "BINARY_SEARCH",
	ConceptSorting:            "SORTING",
	ConceptPrefixSum:          "PREFIX_SUM",
	ConceptIntervals:          "INTERVALS",
	ConceptGraph:              "GRAPH",
	ConceptBFS:                "BFS",
	ConceptDFS:                "DFS",
	ConceptTopologicalSort:    "TOPOLOGICAL_SORT",
	ConceptUnionFind:          "UNION_FIND",
	ConceptBacktracking:       "BACKTRACKING",
	ConceptGreedy:             "GREEDY",
	ConceptDynamicProgramming: "DYNAMIC_PROGRAMMING",
	ConceptBitManipulation:    "BIT_MANIPULATION",
	ConceptTimeComplexity:     "TIME_COMPLEXITY",
	ConceptSpaceComplexity:    "SPACE_COMPLEXITY",
	ConceptDesign:             "DESIGN",
}

// Fails to compile if the name table is shorter than the constant list.
var _ = conceptNames[conceptSentinel-1]

// AllConcepts returns the full vocabulary in declaration order
func AllConcepts() []Concept {
	out := make([]Concept, 0, int(conceptSentinel)-1)
	for c := ConceptArrays; c < conceptSentinel; c++ {
		out = append(out, c)
	}
	return out
}

// String returns the enum name, e.g. HASH_TABLE
func (c Concept) String() string {
	if c >= 0 && c < conceptSentinel {
		return conceptNames[c]
	}
	return fmt.Sprintf("Concept(%d)", int(c))
}

// IsValid reports whether c belongs to the vocabulary
func (c Concept) IsValid() bool {
	return c > ConceptUnset && c < conceptSentinel
}

// ParseConcept parses a concept name, ignoring case and surrounding space
func ParseConcept(s string) (Concept, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	if name != "" {
		for c := ConceptArrays; c < conceptSentinel; c++ {
			if conceptNames[c] == name {
				return c, nil
			}
		}
	}
	return ConceptUnset, fmt.Errorf("%w: %q", ErrUnknownConcept, s)
}

// MarshalText encodes the concept as its enum name
func (c Concept) MarshalText() ([]byte, error) {
	if !c.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownConcept, int(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText decodes an enum name
func (c *Concept) UnmarshalText(text []byte) error {
	parsed, err := ParseConcept(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ConceptSet is a membership set over concepts
type ConceptSet map[Concept]struct{}

// NewConceptSet builds a set from the given concepts, skipping invalid ones
func NewConceptSet(concepts ...Concept) ConceptSet {
	set := make(ConceptSet, len(concepts))
	for _, c := range concepts {
		if c.IsValid() {
			set[c] = struct{}{}
		}
	}
	return set
}

// Has reports whether c is in the set
func (s ConceptSet) Has(c Concept) bool {
	_, ok := s[c]
	return ok
}

// Overlap counts how many of the given concepts are in the set
func (s ConceptSet) Overlap(concepts []Concept) int {
	n := 0
	for _, c := range concepts {
		if s.Has(c) {
			n++
		}
	}
	return n
}
