package lower

import (
	"github.com/hacklite/hintc/internal/bc"
	"github.com/hacklite/hintc/internal/hint"
	"github.com/hacklite/hintc/internal/names"
)

func addNullable(nullable bool, flags bc.Flags) bc.Flags {
	if nullable {
		return bc.Nullable | bc.DisplayNullable | flags
	}
	return flags
}

func tryAddNullable(nullable bool, h hint.Hint, flags bc.Flags) bc.Flags {
	return addNullable(nullable && CanBeNullable(h), flags)
}

func makeTypeInfo(tparams []string, h hint.Hint, name bc.ID, flags bc.Flags) (bc.TypeInfo, error) {
	userType, err := FormatHint(tparams, false, h)
	if err != nil {
		return bc.TypeInfo{}, err
	}
	return bc.NewTypeInfo(bc.Intern(userType), bc.NewConstraint(name, flags)), nil
}

// paramTypeInfo lowers a parameter hint. Simple hints discard the
// resolver's flags: a plain parameter type carries only the
// externally-signaled nullability, never resolver-derived flags.
func paramTypeInfo(kind Kind, skipAwaitable, nullable bool, tparams []string, h hint.Hint) (bc.TypeInfo, error) {
	var isSimple bool
	switch h := h.(type) {
	case *hint.Like, *hint.Soft, *hint.Option, *hint.Access, *hint.Fun,
		*hint.Dynamic, *hint.Nonnull, *hint.Mixed:
		isSimple = false
	case *hint.Apply:
		isSimple = len(h.Args) == 0 &&
			h.Name != names.HHDynamic &&
			h.Name != names.HHNonnull &&
			h.Name != names.HHMixed &&
			!containsName(tparams, h.Name)
	case *hint.TypeParam:
		isSimple = !containsName(tparams, h.Name)
	case *hint.Prim, *hint.Tuple, *hint.ClassPtr, *hint.Shape, *hint.Refinement,
		*hint.Wildcard, *hint.VecOrDict, *hint.This, *hint.Nothing, *hint.Union,
		*hint.Intersection, *hint.FunContext, *hint.Var:
		isSimple = true
	}
	tc, err := HintToConstraint(kind, tparams, skipAwaitable, h)
	if err != nil {
		return bc.TypeInfo{}, err
	}
	flags := tc.Flags
	if isSimple {
		flags = bc.NoFlags
	}
	return makeTypeInfo(tparams, h, tc.Name, tryAddNullable(nullable, h, flags))
}

// HintToTypeInfo lowers one hint occurrence into its TypeInfo record.
// nullable is the external declaration-site nullability signal; it is
// applied unconditionally for typedefs and shape-conditionally for
// every other kind.
func HintToTypeInfo(kind Kind, skipAwaitable, nullable bool, tparams []string, h hint.Hint) (bc.TypeInfo, error) {
	if kind == KindParam {
		return paramTypeInfo(kind, skipAwaitable, nullable, tparams, h)
	}
	tc, err := HintToConstraint(kind, tparams, skipAwaitable, h)
	if err != nil {
		return bc.TypeInfo{}, err
	}
	flags := tc.Flags
	if kind == KindUpperBound {
		flags |= bc.UpperBound
	}
	if kind == KindTypeDef {
		flags = addNullable(nullable, flags)
	} else {
		flags = tryAddNullable(nullable, h, flags)
	}
	return makeTypeInfo(tparams, h, tc.Name, flags)
}

// HintToTypeInfoUnion lowers a type-alias hint that may be a top-level
// union, yielding one TypeInfo per alternative. Non-union hints produce
// a single record.
func HintToTypeInfoUnion(kind Kind, skipAwaitable, nullable bool, tparams []string, h hint.Hint) ([]bc.TypeInfo, error) {
	if u, ok := h.(*hint.Union); ok {
		result := make([]bc.TypeInfo, 0, len(u.Members))
		for _, member := range u.Members {
			ti, err := HintToTypeInfo(kind, skipAwaitable, nullable, tparams, member)
			if err != nil {
				return nil, err
			}
			result = append(result, ti)
		}
		return result, nil
	}
	ti, err := HintToTypeInfo(kind, skipAwaitable, nullable, tparams, h)
	if err != nil {
		return nil, err
	}
	return []bc.TypeInfo{ti}, nil
}

// HintToClass returns the mangled class name a hint designates, or the
// not-a-class placeholder for hints that name no class.
func HintToClass(h hint.Hint) string {
	if ap, ok := h.(*hint.Apply); ok {
		return names.Mangle(ap.Name)
	}
	return names.NotAClass
}
