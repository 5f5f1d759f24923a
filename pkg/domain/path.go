package domain

// Path is the route between two consecutive waypoints.
// Found == false is the explicit "no path" marker for an unreachable pair;
// such a path carries no keys.
type Path struct {
	From  Key   `json:"from"`
	To    Key   `json:"to"`
	Keys  []Key `json:"keys,omitempty"`
	Cost  int   `json:"cost"`
	Found bool  `json:"found"`
}

// ResultSet is the ordered output of one computation.
type ResultSet []Path

// Contains reports whether k belongs to any found path.
func (r ResultSet) Contains(k Key) bool {
	for _, p := range r {
		for _, pk := range p.Keys {
			if pk == k {
				return true
			}
		}
	}
	return false
}

// Members returns the set of keys covered by found paths.
func (r ResultSet) Members() map[Key]struct{} {
	members := make(map[Key]struct{})
	for _, p := range r {
		for _, k := range p.Keys {
			members[k] = struct{}{}
		}
	}
	return members
}

// Unreachable counts the pairs that have no route.
func (r ResultSet) Unreachable() int {
	n := 0
	for _, p := range r {
		if !p.Found {
			n++
		}
	}
	return n
}

// Clone returns a deep copy so callers cannot mutate session-owned results.
func (r ResultSet) Clone() ResultSet {
	if r == nil {
		return nil
	}
	out := make(ResultSet, len(r))
	for i, p := range r {
		out[i] = p
		if p.Keys != nil {
			out[i].Keys = append([]Key(nil), p.Keys...)
		}
	}
	return out
}
