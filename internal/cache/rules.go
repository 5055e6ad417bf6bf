package cache

// Mutation is a user-initiated write against a remote collection.
type Mutation int

const (
	Create Mutation = iota
	Update
	Delete
)

// String implements fmt.Stringer.
func (m Mutation) String() string {
	switch m {
	case Create:
		return "create"
	case Update:
		return "update"
	case Delete:
		return "delete"
	default:
		return "unknown"
	}
}

// Invalidates returns the keys a mutation makes stale.
//
//	create R      -> (R, list)
//	update R(id)  -> (R, id), (R, list)
//	delete R(id)  -> (R, id), (R, list)
//
// Keys of other resources are never included: deleting an employee leaves
// attendance queries untouched and orphaned rows are filtered by the views.
func Invalidates(resource Resource, mutation Mutation, id string) []Key {
	if mutation == Create || id == "" {
		return []Key{ListKey(resource)}
	}
	return []Key{IDKey(resource, id), ListKey(resource)}
}

// Apply invalidates everything a completed mutation makes stale: the keys from
// Invalidates plus every filtered list of the same resource.
// Call it once the mutation response has been observed, success or failure.
func (s *Store) Apply(resource Resource, mutation Mutation, id string) {
	s.Invalidate(Invalidates(resource, mutation, id)...)
	s.InvalidateMatching(resource, Key.IsFiltered)
}
