// Package bc holds the bytecode-facing artifacts the lowering engine
// produces: the type-constraint flag bitset, constraints, type-info
// records, and the string interner that backs their name handles.
package bc

import "strings"

// Flags is the runtime type-constraint flag set. Flags compose with
// bitwise OR, which is commutative and idempotent; no pass may depend on
// the order flags were added in.
type Flags uint16

const (
	NoFlags  Flags = 0x0
	Nullable Flags = 0x1
	// TypeVar marks a name that refers to a generic parameter, not a class.
	TypeVar Flags = 0x8
	// Soft makes enforcement advisory: the runtime warns but never rejects.
	Soft Flags = 0x10
	// TypeConstant marks a class type-constant path, not directly enforceable.
	TypeConstant Flags = 0x20
	// DisplayNullable controls only the string form; it is set alongside
	// Nullable whenever nullability comes from the hint or the declaration.
	DisplayNullable Flags = 0x100
	// UpperBound applies to generic bound positions only.
	UpperBound Flags = 0x200
)

// Contains reports whether every flag in o is set.
func (f Flags) Contains(o Flags) bool {
	return f&o == o
}

// Empty reports whether no flag is set.
func (f Flags) Empty() bool {
	return f == NoFlags
}

var flagNames = []struct {
	flag Flags
	name string
}{
	{Nullable, "nullable"},
	{TypeVar, "type_var"},
	{Soft, "soft"},
	{TypeConstant, "type_constant"},
	{DisplayNullable, "display_nullable"},
	{UpperBound, "upper_bound"},
}

// Names returns the set flag names in a fixed order, for diagnostics
// and serialized output.
func (f Flags) Names() []string {
	var out []string
	for _, fn := range flagNames {
		if f.Contains(fn.flag) {
			out = append(out, fn.name)
		}
	}
	return out
}

func (f Flags) String() string {
	if f.Empty() {
		return "no_flags"
	}
	return strings.Join(f.Names(), "|")
}
