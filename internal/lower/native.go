package lower

import (
	"github.com/hacklite/hintc/internal/bc"
	"github.com/hacklite/hintc/internal/hint"
	"github.com/hacklite/hintc/internal/names"
)

// NativeReturnTypeInfo adjusts a previously computed return TypeInfo
// for a native function. A missing hint or display name becomes an
// unenforced void marker; a mixed or callable display name drops
// enforcement entirely; an explicit void display name re-derives its
// flags from the hint; anything else passes through unchanged.
func NativeReturnTypeInfo(tparams []string, ret hint.Hint, ti bc.TypeInfo) bc.TypeInfo {
	var name bc.ID
	var flags bc.Flags
	switch {
	case ret == nil || !ti.UserType.Valid():
		name = bc.Intern(names.BuiltinVoid)
		flags = bc.NoFlags
	default:
		switch bc.Lookup(ti.UserType) {
		case names.BuiltinMixed, names.Callable:
			name = bc.None
			flags = bc.NoFlags
		case names.BuiltinVoid:
			name = bc.Intern(names.BuiltinVoid)
			flags = returnFlags(tparams, bc.NoFlags, ret)
		default:
			return ti
		}
	}
	return bc.NewTypeInfo(ti.UserType, bc.NewConstraint(name, flags))
}

// returnFlags recursively accumulates the flags visible through
// wrappers: nullability through option, softness through soft, and the
// type-constant/type-variable markers at the matching leaves.
func returnFlags(tparams []string, flags bc.Flags, h hint.Hint) bc.Flags {
	switch h := h.(type) {
	case *hint.Option:
		return bc.Nullable | bc.DisplayNullable | returnFlags(tparams, flags, h.Inner)
	case *hint.Soft:
		return bc.Soft | returnFlags(tparams, flags, h.Inner)
	case *hint.Access:
		return bc.TypeConstant | flags
	case *hint.Apply:
		if containsName(tparams, h.Name) {
			return bc.TypeVar | flags
		}
		return flags
	case *hint.TypeParam, *hint.ClassPtr, *hint.Dynamic, *hint.Fun,
		*hint.FunContext, *hint.Intersection, *hint.Like, *hint.Mixed,
		*hint.Nonnull, *hint.Nothing, *hint.Prim, *hint.Refinement,
		*hint.Shape, *hint.This, *hint.Tuple, *hint.Union, *hint.Var,
		*hint.VecOrDict, *hint.Wildcard:
		return flags
	}
	return flags
}
