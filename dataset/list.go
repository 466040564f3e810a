package dataset

import (
	"sort"
	"strings"
)

// List is an ordered collection of datasets.
type List []*Dataset

// Sort orders the list by human reference.
func (l List) Sort() {
	sort.SliceStable(l, func(i, j int) bool {
		return l[i].HumanRef() < l[j].HumanRef()
	})
}

// HumanRefs returns the human reference of every dataset in order.
func (l List) HumanRefs() []string {
	refs := make([]string, len(l))
	for i, d := range l {
		refs[i] = d.HumanRef()
	}
	return refs
}

func (l List) String() string {
	parts := make([]string, len(l))
	for i, d := range l {
		parts[i] = d.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
