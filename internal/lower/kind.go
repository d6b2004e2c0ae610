// Package lower turns surface type hints into the two artifacts the
// bytecode emitter consumes: a canonical display string and a runtime
// type constraint (enforcement name plus flag set).
//
// The engine is three passes over the same hint tree: the display
// formatter, the constraint resolver, and the type-info assembler.
// All three are pure functions over their inputs; context (usage kind,
// generic parameter names, awaitable unwrapping, declaration-site
// nullability) is threaded explicitly through every call.
package lower

import "fmt"

// Kind selects the lowering context a hint appears in.
type Kind int

const (
	KindProperty Kind = iota
	KindReturn
	KindParam
	KindTypeDef
	KindUpperBound
)

func (k Kind) String() string {
	switch k {
	case KindProperty:
		return "property"
	case KindReturn:
		return "return"
	case KindParam:
		return "param"
	case KindTypeDef:
		return "typedef"
	case KindUpperBound:
		return "upper_bound"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// ParseKind maps a kind name (as used in manifests and on the command
// line) back to its Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "property":
		return KindProperty, nil
	case "return":
		return KindReturn, nil
	case "param":
		return KindParam, nil
	case "typedef":
		return KindTypeDef, nil
	case "upper_bound":
		return KindUpperBound, nil
	}
	return 0, fmt.Errorf("unknown usage kind %q", s)
}

func containsName(list []string, name string) bool {
	for _, n := range list {
		if n == name {
			return true
		}
	}
	return false
}
