package pack

// FilterKind tells which representation a FilterSet holds.
type FilterKind int

const (
	NoFilters FilterKind = iota
	FlatFilters
	GroupedFilters
)

func (k FilterKind) String() string {
	switch k {
	case FlatFilters:
		return "filters"
	case GroupedFilters:
		return "filterGroups"
	default:
		return "none"
	}
}

// FilterSet holds a pack's filters either as one flat list or as named
// groups, never both. The zero value holds no filters.
type FilterSet struct {
	kind   FilterKind
	flat   []Filter
	groups []FilterGroup
}

// NewFlatFilters returns a set holding a flat filter list.
func NewFlatFilters(filters []Filter) FilterSet {
	return FilterSet{kind: FlatFilters, flat: filters}
}

// NewGroupedFilters returns a set holding named groups.
func NewGroupedFilters(groups ...FilterGroup) FilterSet {
	return FilterSet{kind: GroupedFilters, groups: groups}
}

// Kind returns the representation held.
func (s FilterSet) Kind() FilterKind { return s.kind }

// Flat returns the flat list, or nil when the set is grouped or empty.
func (s FilterSet) Flat() []Filter { return s.flat }

// Groups returns the groups, or nil when the set is flat or empty.
func (s FilterSet) Groups() []FilterGroup { return s.groups }

// All returns every filter in declaration order, flattening groups.
func (s FilterSet) All() []Filter {
	switch s.kind {
	case FlatFilters:
		return s.flat
	case GroupedFilters:
		var all []Filter
		for _, g := range s.groups {
			all = append(all, g.Filters...)
		}
		return all
	default:
		return nil
	}
}

// Count returns the number of filters across the set.
func (s FilterSet) Count() int {
	if s.kind == GroupedFilters {
		n := 0
		for _, g := range s.groups {
			n += len(g.Filters)
		}
		return n
	}
	return len(s.flat)
}
