package motion

import (
	"iter"

	"github.com/elliotchance/orderedmap/v2"
)

// Table maps state identifiers to the modules that belong to them. Both the order of the states and
// the order of the modules of a state are kept, since they are also the order in which rotations are
// composed.
type Table struct {
	entries *orderedmap.OrderedMap[string, []Module]
	count   int
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{entries: orderedmap.NewOrderedMap[string, []Module]()}
}

// Add appends modules to the entry of state, creating the entry at the end of the table if needed.
func (t *Table) Add(state string, modules ...Module) {
	existing, _ := t.entries.Get(state)
	t.entries.Set(state, append(existing, modules...))
	t.count += len(modules)
}

// Modules returns the modules that belong to state, in insertion order.
func (t *Table) Modules(state string) []Module {
	modules, _ := t.entries.Get(state)
	return modules
}

// States returns the state identifiers of the table in insertion order.
func (t *Table) States() []string {
	return t.entries.Keys()
}

// Len returns the total amount of modules in the table.
func (t *Table) Len() int {
	return t.count
}

// All iterates every module of the table, entry by entry, in insertion order.
func (t *Table) All() iter.Seq2[string, Module] {
	return func(yield func(string, Module) bool) {
		for el := t.entries.Front(); el != nil; el = el.Next() {
			for _, m := range el.Value {
				if !yield(el.Key, m) {
					return
				}
			}
		}
	}
}
