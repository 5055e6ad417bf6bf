package cache

import "strings"

// Resource names a remote collection.
type Resource string

const (
	Employee   Resource = "employee"
	Attendance Resource = "attendance"
)

// ScopeList addresses the full collection of a resource.
const ScopeList = "list"

const filterSep = "="

// Key addresses one cached query: the full list, one record, or a filtered list.
type Key struct {
	Resource Resource
	Scope    string
}

// ListKey returns the key of the full collection.
func ListKey(resource Resource) Key {
	return Key{Resource: resource, Scope: ScopeList}
}

// IDKey returns the key of a single record.
func IDKey(resource Resource, id string) Key {
	return Key{Resource: resource, Scope: id}
}

// FilterKey returns the key of a server-side filtered list, e.g. date=2026-01-02.
func FilterKey(resource Resource, field, value string) Key {
	return Key{Resource: resource, Scope: field + filterSep + value}
}

// IsList reports whether k addresses the full collection.
func (k Key) IsList() bool {
	return k.Scope == ScopeList
}

// IsFiltered reports whether k addresses a filtered list.
func (k Key) IsFiltered() bool {
	return strings.Contains(k.Scope, filterSep)
}

// String implements fmt.Stringer.
func (k Key) String() string {
	return string(k.Resource) + "/" + k.Scope
}
