// Package names centralizes the fixed names the lowering engine compares
// against and emits: primitive keywords, namespace-qualified special
// types, and the runtime's builtin enforcement names.
package names

import "github.com/hacklite/hintc/internal/hint"

// Primitive keyword strings.
const (
	Null     = "null"
	Void     = "void"
	Int      = "int"
	Bool     = "bool"
	Float    = "float"
	String   = "string"
	Resource = "resource"
	Num      = "num"
	Arraykey = "arraykey"
	Noreturn = "noreturn"

	Mixed     = "mixed"
	Nonnull   = "nonnull"
	This      = "this"
	Dynamic   = "dynamic"
	Nothing   = "nothing"
	VecOrDict = "HH\\vec_or_dict"
)

// Namespace-qualified names as they arrive from the elaborator.
const (
	HHDynamic = "\\HH\\dynamic"
	HHMixed   = "\\HH\\mixed"
	HHNonnull = "\\HH\\nonnull"
	HHVoid    = "\\HH\\void"

	Awaitable    = "\\HH\\Awaitable"
	PoisonMarker = "\\HH\\FIXME\\POISON_MARKER"
	FunctionRef  = "\\HH\\FunctionRef"
)

// Builtin enforcement names used in emitted constraints.
const (
	BuiltinDarray = "HH\\darray"
	BuiltinVarray = "HH\\varray"
	BuiltinClass  = "HH\\class"
	BuiltinVoid   = "HH\\void"
	BuiltinMixed  = "HH\\mixed"
	Callable      = "callable"
)

// NotAClass is the placeholder class name for hints that do not
// designate a class.
const NotAClass = "__type_is_not_class__"

// PrimString returns the keyword for a primitive scalar kind.
func PrimString(k hint.PrimKind) string {
	switch k {
	case hint.PrimNull:
		return Null
	case hint.PrimVoid:
		return Void
	case hint.PrimInt:
		return Int
	case hint.PrimBool:
		return Bool
	case hint.PrimFloat:
		return Float
	case hint.PrimString:
		return String
	case hint.PrimResource:
		return Resource
	case hint.PrimNum:
		return Num
	case hint.PrimArraykey:
		return Arraykey
	case hint.PrimNoreturn:
		return Noreturn
	}
	return ""
}
