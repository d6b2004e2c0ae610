package bc

import "sync"

// ID is a stable handle for an interned string. The zero ID means
// "no string": an interned empty string is a valid, distinct handle.
type ID uint32

// None is the absent-string handle.
const None ID = 0

// Valid reports whether the handle refers to an interned string.
func (id ID) Valid() bool {
	return id != None
}

type internTable struct {
	mu      sync.RWMutex
	ids     map[string]ID
	strings []string
}

// The table is process-global, like the string table it stands in for.
// Hints may be lowered concurrently, so access is locked.
var table = internTable{ids: make(map[string]ID)}

// EmptyStr is the handle for the interned empty string. It is present
// (Valid) while still naming nothing, which the resolver uses for
// type variables outside Param/Return/Property contexts.
var EmptyStr = Intern("")

// Intern returns the stable handle for s, creating one if needed.
func Intern(s string) ID {
	table.mu.RLock()
	id, ok := table.ids[s]
	table.mu.RUnlock()
	if ok {
		return id
	}
	table.mu.Lock()
	defer table.mu.Unlock()
	if id, ok := table.ids[s]; ok {
		return id
	}
	table.strings = append(table.strings, s)
	id = ID(len(table.strings))
	table.ids[s] = id
	return id
}

// Lookup returns the string for a handle. The absent handle yields "".
func Lookup(id ID) string {
	if !id.Valid() {
		return ""
	}
	table.mu.RLock()
	defer table.mu.RUnlock()
	return table.strings[id-1]
}
