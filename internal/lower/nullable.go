package lower

import (
	"github.com/hacklite/hintc/internal/hint"
	"github.com/hacklite/hintc/internal/names"
)

// CanBeNullable reports whether a hint's shape permits the external
// declaration-site nullability signal to add Nullable/DisplayNullable.
func CanBeNullable(h hint.Hint) bool {
	switch h := h.(type) {
	case *hint.Access, *hint.Fun, *hint.Dynamic, *hint.Nonnull, *hint.Mixed, *hint.Wildcard:
		return false
	case *hint.Option:
		// A nullable type-constant access counts as already nullable-shaped.
		if _, ok := h.Inner.(*hint.Access); ok {
			return true
		}
		return CanBeNullable(h.Inner)
	case *hint.Apply:
		return h.Name != names.HHDynamic && h.Name != names.HHNonnull && h.Name != names.HHMixed
	case *hint.TypeParam, *hint.ClassPtr, *hint.FunContext, *hint.Intersection,
		*hint.Like, *hint.Nothing, *hint.Prim, *hint.Refinement, *hint.Shape,
		*hint.Soft, *hint.This, *hint.Tuple, *hint.Union, *hint.Var,
		*hint.VecOrDict:
		return true
	}
	return false
}
