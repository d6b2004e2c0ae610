package lower

import (
	"strings"

	"github.com/hacklite/hintc/internal/bc"
	"github.com/hacklite/hintc/internal/hint"
	"github.com/hacklite/hintc/internal/names"
)

// HintToConstraint computes the runtime constraint for a hint in the
// given context. skipAwaitable strips at most one layer of the
// async-wrapper type; the recursion always clears it so wrappers never
// compound. The only error is the malformed type-constant invariant.
func HintToConstraint(kind Kind, tparams []string, skipAwaitable bool, h hint.Hint) (bc.Constraint, error) {
	switch h := h.(type) {
	case *hint.Dynamic, *hint.Fun, *hint.Union, *hint.Intersection, *hint.Mixed, *hint.Wildcard:
		return bc.Constraint{}, nil
	case *hint.Access:
		// Not directly enforceable; the runtime resolves the path itself.
		return bc.NewConstraint(bc.EmptyStr, bc.TypeConstant), nil
	case *hint.Shape:
		return bc.InternConstraint(names.BuiltinDarray, bc.NoFlags), nil
	case *hint.Tuple:
		return bc.InternConstraint(names.BuiltinVarray, bc.NoFlags), nil
	case *hint.Soft:
		return withFlagsIfNonEmpty(kind, tparams, skipAwaitable, h.Inner, bc.Soft)
	case *hint.Like:
		return HintToConstraint(kind, tparams, skipAwaitable, h.Inner)
	case *hint.Option:
		return optionToConstraint(kind, tparams, skipAwaitable, h)
	case *hint.Apply:
		return applyToConstraint(kind, tparams, skipAwaitable, h)
	case *hint.ClassPtr:
		return bc.InternConstraint(names.BuiltinClass, bc.NoFlags), nil
	case *hint.TypeParam:
		return typeApplication(tparams, kind, h.Name), nil
	case *hint.Refinement:
		// Refinements are invisible to the runtime.
		return HintToConstraint(kind, tparams, skipAwaitable, h.Inner)
	case *hint.FunContext, *hint.Nonnull, *hint.Nothing, *hint.Prim, *hint.This,
		*hint.Var, *hint.VecOrDict:
		return typeApplication(tparams, kind, genericName(h)), nil
	}
	return bc.Constraint{}, nil
}

func optionToConstraint(kind Kind, tparams []string, skipAwaitable bool, h *hint.Option) (bc.Constraint, error) {
	if ap, ok := h.Inner.(*hint.Apply); ok {
		if skipAwaitable && isAwaitable(ap.Name) {
			switch len(ap.Args) {
			case 0:
				return bc.Constraint{}, nil
			case 1:
				return HintToConstraint(kind, tparams, false, ap.Args[0])
			}
		}
	} else if soft, ok := h.Inner.(*hint.Soft); ok {
		if ap, ok := soft.Inner.(*hint.Apply); ok {
			if skipAwaitable && isAwaitable(ap.Name) && len(ap.Args) == 1 {
				return withFlagsIfNonEmpty(kind, tparams, false, ap.Args[0], bc.Soft)
			}
		}
	}
	return withFlagsIfNonEmpty(kind, tparams, skipAwaitable, h.Inner, bc.Nullable|bc.DisplayNullable)
}

func applyToConstraint(kind Kind, tparams []string, skipAwaitable bool, h *hint.Apply) (bc.Constraint, error) {
	s := h.Name
	if len(h.Args) == 0 {
		if s == names.HHDynamic || s == names.HHMixed ||
			(skipAwaitable && isAwaitable(s)) ||
			(strings.EqualFold(s, names.HHVoid) && kind != KindTypeDef) {
			return bc.Constraint{}, nil
		}
	}
	if len(h.Args) == 1 {
		if skipAwaitable && isAwaitable(s) {
			arg := h.Args[0]
			if p, ok := arg.(*hint.Prim); ok && p.Kind == hint.PrimVoid {
				return bc.Constraint{}, nil
			}
			if ap, ok := arg.(*hint.Apply); ok && ap.Name == names.HHVoid && len(ap.Args) == 0 {
				return bc.Constraint{}, nil
			}
			return HintToConstraint(kind, tparams, false, arg)
		}
		if s == names.PoisonMarker || s == names.FunctionRef {
			return HintToConstraint(kind, tparams, false, h.Args[0])
		}
	}
	return typeApplication(tparams, kind, s), nil
}

func isAwaitable(s string) bool {
	return s == names.Awaitable
}

// withFlagsIfNonEmpty resolves the inner hint and ORs in flags, unless
// the inner constraint is completely empty: a wrapper on nothing is a
// no-op, not an observable flag.
func withFlagsIfNonEmpty(kind Kind, tparams []string, skipAwaitable bool, h hint.Hint, flags bc.Flags) (bc.Constraint, error) {
	tc, err := HintToConstraint(kind, tparams, skipAwaitable, h)
	if err != nil || tc.IsEmpty() {
		return tc, err
	}
	tc.Flags |= flags
	return tc, nil
}

// typeApplication handles any form that names a type. A declared
// generic parameter becomes a TypeVar constraint whose target is the
// parameter's own name for Param/Return/Property and empty elsewhere;
// anything else targets the mangled class name.
func typeApplication(tparams []string, kind Kind, name string) bc.Constraint {
	if containsName(tparams, name) {
		target := bc.EmptyStr
		switch kind {
		case KindParam, KindReturn, KindProperty:
			target = bc.Intern(name)
		}
		return bc.NewConstraint(target, bc.TypeVar)
	}
	return bc.InternConstraint(names.Mangle(name), bc.NoFlags)
}
