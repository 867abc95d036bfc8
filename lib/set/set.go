package set

// StringSet is a lightweight set implementation for strings,
// allowing (set) map-like access in code.
// Same ordering guarantee's as Go's map type
type StringSet map[string]bool

func (ss StringSet) Add(v string) StringSet {
	ss[v] = true
	return ss
}

func (ss StringSet) Has(v string) bool {
	return ss[v]
}

func NewStringSet(values ...string) StringSet {
	ss := make(StringSet)
	for _, value := range values {
		ss.Add(value)
	}
	return ss
}
