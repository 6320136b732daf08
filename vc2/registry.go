package vc2

import (
	"fmt"
	"sync"

	"github.com/bbc/vc2bitstream/serdes"
)

// GrammarFunc is a data unit's grammar: a function that yields serdes
// tokens to read or write its fields, exactly as serdes.Driver.Run wants.
type GrammarFunc func(yield serdes.Yield)

// Entry pairs a data-unit kind with its grammar and the empty Context a
// fresh write pass should start from.
type Entry struct {
	Kind           string
	Grammar        GrammarFunc
	DefaultContext func() *serdes.Context
}

// Registry maps a data-unit kind name (sequence_header, picture_parse,
// fragment_parse, auxiliary_data, padding, end_of_sequence, parse_info) to
// its Entry. One process-wide Registry replaces the per-module dispatch
// tables a dynamically-typed implementation would use.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]Entry)}
}

// Register adds or replaces the Entry for kind.
func (r *Registry) Register(kind string, grammar GrammarFunc, defaultContext func() *serdes.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[kind] = Entry{Kind: kind, Grammar: grammar, DefaultContext: defaultContext}
}

// Lookup returns the Entry registered for kind.
func (r *Registry) Lookup(kind string) (Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[kind]
	return e, ok
}

// MustLookup is Lookup, panicking if kind was never registered; intended
// for use during process init where an unregistered kind is a programming
// error, not a runtime condition to recover from.
func (r *Registry) MustLookup(kind string) Entry {
	e, ok := r.Lookup(kind)
	if !ok {
		panic(fmt.Sprintf("vc2: no grammar registered for kind %q", kind))
	}
	return e
}

// Default is the process-wide Registry populated by this package's init
// function with the standard VC-2 data-unit kinds.
var Default = NewRegistry()

func init() {
	Default.Register("parse_info", ParseInfoGrammar, serdes.NewContext)
	Default.Register("sequence_header", SequenceHeaderGrammar, serdes.NewContext)
	Default.Register("auxiliary_data", AuxiliaryDataGrammar, serdes.NewContext)
	Default.Register("padding", PaddingGrammar, serdes.NewContext)
	Default.Register("end_of_sequence", EndOfSequenceGrammar, serdes.NewContext)
}
