// Package equiv records equivalences between integer labels discovered during
// a labeling pass and resolves each equivalence class to its minimum member.
//
// Set is a disjoint-set (union-find) forest with path halving and union by
// size. Every root also tracks the smallest label of its class, so the
// canonical representative of a class is independent of merge order.
//
// Label 0 is the background and is never part of a class.
//
// Complexity: Union and Find run in O(α(n)) amortized; Table is O(n).
package equiv

// Set is a growable union-find over labels 1..n. The zero value is empty and
// ready to use. It is not safe for concurrent use.
type Set struct {
	parent []uint32
	size   []uint32
	min    []uint32
	merged int
}

// New returns an empty Set with capacity for labels up to n.
func New(n int) *Set {
	s := &Set{}
	if n < 0 {
		n = 0
	}
	s.grow(uint32(n))

	return s
}

// grow makes labels 0..n addressable; new labels start as singletons.
func (s *Set) grow(n uint32) {
	for l := uint32(len(s.parent)); l <= n; l++ {
		s.parent = append(s.parent, l)
		s.size = append(s.size, 1)
		s.min = append(s.min, l)
	}
}

// Len returns the highest label the Set has seen.
func (s *Set) Len() int {
	if len(s.parent) == 0 {
		return 0
	}

	return len(s.parent) - 1
}

// Merges returns the number of Union calls that joined two distinct classes.
func (s *Set) Merges() int {
	return s.merged
}

// Find returns the root of l's class. Labels never seen are their own root.
func (s *Set) Find(l uint32) uint32 {
	if int(l) >= len(s.parent) {
		return l
	}
	for s.parent[l] != l {
		// Path halving: point l at its grandparent.
		s.parent[l] = s.parent[s.parent[l]]
		l = s.parent[l]
	}

	return l
}

// Union records that a and b denote the same region. It reports whether two
// distinct classes were merged. Unions involving label 0 are ignored.
func (s *Set) Union(a, b uint32) bool {
	if a == 0 || b == 0 {
		return false
	}
	if a > b {
		s.grow(a)
	} else {
		s.grow(b)
	}
	ra, rb := s.Find(a), s.Find(b)
	if ra == rb {
		return false
	}
	// Attach the smaller tree under the larger root.
	if s.size[ra] < s.size[rb] {
		ra, rb = rb, ra
	}
	s.parent[rb] = ra
	s.size[ra] += s.size[rb]
	if s.min[rb] < s.min[ra] {
		s.min[ra] = s.min[rb]
	}
	s.merged++

	return true
}

// Same reports whether a and b are in the same class.
func (s *Set) Same(a, b uint32) bool {
	return s.Find(a) == s.Find(b)
}

// Canonical returns the smallest label equivalent to l.
func (s *Set) Canonical(l uint32) uint32 {
	if int(l) >= len(s.parent) {
		return l
	}

	return s.min[s.Find(l)]
}

// Table returns a lookup table t with t[l] == Canonical(l) for every label
// 0..hi. Labels the Set never saw map to themselves.
func (s *Set) Table(hi uint32) []uint32 {
	t := make([]uint32, int(hi)+1)
	for l := range t {
		t[l] = s.Canonical(uint32(l))
	}

	return t
}

// Classes returns every class with more than one member, each sorted
// ascending, ordered by their minimum member.
func (s *Set) Classes() [][]uint32 {
	byRoot := make(map[uint32]int)
	var out [][]uint32
	for l := 1; l < len(s.parent); l++ {
		r := s.Find(uint32(l))
		if s.size[r] < 2 {
			continue
		}
		i, ok := byRoot[r]
		if !ok {
			i = len(out)
			byRoot[r] = i
			out = append(out, nil)
		}
		out[i] = append(out[i], uint32(l))
	}

	return out
}
