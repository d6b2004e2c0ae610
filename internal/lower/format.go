package lower

import (
	"fmt"
	"strings"

	"github.com/hacklite/hintc/internal/hint"
	"github.com/hacklite/hintc/internal/names"
)

// fmtNameOrPrim prints a name verbatim when it is an in-scope generic
// parameter, and mangles it otherwise. XHP element names keep their
// unmangled display form.
func fmtNameOrPrim(tparams []string, name string) string {
	if containsName(tparams, name) {
		return name
	}
	mangled := names.Mangle(name)
	if names.IsXHP(names.StripNS(name)) {
		return names.Unmangled(mangled)
	}
	return mangled
}

// FormatHint renders the canonical display string for a hint. It is
// total over all hint forms; the only error is the malformed
// type-constant invariant violation.
func FormatHint(tparams []string, stripTypeArgs bool, h hint.Hint) (string, error) {
	switch h := h.(type) {
	case *hint.TypeParam:
		return fmtNameOrPrim(tparams, h.Name), nil
	case *hint.Apply:
		name := fmtNameOrPrim(tparams, h.Name)
		if len(h.Args) == 0 || stripTypeArgs {
			return name, nil
		}
		args, err := formatHints(tparams, h.Args)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s<%s>", name, args), nil
	case *hint.ClassPtr:
		k := "class"
		if h.Kind == hint.ClassPtrEnum {
			k = "enum"
		}
		inner, err := FormatHint(tparams, false, h.Inner)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s<%s>", k, inner), nil
	case *hint.Wildcard:
		return "_", nil
	case *hint.Fun:
		// TODO: render inout parameter modifiers once the tree carries them
		params, err := formatHints(tparams, h.Params)
		if err != nil {
			return "", err
		}
		ret, err := FormatHint(tparams, false, h.Return)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("(function (%s): %s)", params, ret), nil
	case *hint.Access:
		root, ok := h.Root.(*hint.Apply)
		if !ok {
			return "", NewMalformedAccessError()
		}
		return fmt.Sprintf("%s::%s", fmtNameOrPrim(tparams, root.Name), strings.Join(h.Path, "::")), nil
	case *hint.Option:
		// Runtime display convention puts soft before the option marker,
		// even though the source nesting is option-outer.
		if soft, ok := h.Inner.(*hint.Soft); ok {
			inner, err := FormatHint(tparams, false, soft.Inner)
			if err != nil {
				return "", err
			}
			return "@?" + inner, nil
		}
		inner, err := FormatHint(tparams, false, h.Inner)
		if err != nil {
			return "", err
		}
		return "?" + inner, nil
	case *hint.Refinement:
		// Refinements are invisible to the runtime; render the base hint.
		return FormatHint(tparams, stripTypeArgs, h.Inner)
	case *hint.Shape:
		// Fields render in declared order. Upstream does not guarantee that
		// order equals source order; we preserve whatever order we were
		// given rather than sorting.
		fields := make([]string, 0, len(h.Fields))
		for _, f := range h.Fields {
			s, err := formatField(tparams, f)
			if err != nil {
				return "", err
			}
			fields = append(fields, s)
		}
		return names.PrefixNamespace("HH", fmt.Sprintf("shape(%s)", strings.Join(fields, ", "))), nil
	case *hint.Tuple:
		// Only required components take part in the display form.
		required, err := formatHints(tparams, h.Required)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("(%s)", required), nil
	case *hint.Like:
		inner, err := FormatHint(tparams, false, h.Inner)
		if err != nil {
			return "", err
		}
		return "~" + inner, nil
	case *hint.Soft:
		inner, err := FormatHint(tparams, false, h.Inner)
		if err != nil {
			return "", err
		}
		return "@" + inner, nil
	case *hint.Prim, *hint.FunContext, *hint.Dynamic, *hint.Mixed, *hint.Nonnull,
		*hint.Nothing, *hint.This, *hint.Union, *hint.Intersection, *hint.Var,
		*hint.VecOrDict:
		return fmtNameOrPrim(tparams, genericName(h)), nil
	}
	return "", fmt.Errorf("unhandled hint form %T", h)
}

// genericName is the fixed display-name table for the forms that render
// and constrain generically.
func genericName(h hint.Hint) string {
	switch h := h.(type) {
	case *hint.Prim:
		return names.PrimString(h.Kind)
	case *hint.Mixed, *hint.Union, *hint.Intersection:
		return names.Mixed
	case *hint.Nonnull:
		return names.Nonnull
	case *hint.This:
		return names.This
	case *hint.Dynamic:
		return names.Dynamic
	case *hint.Nothing:
		return names.Nothing
	case *hint.Var:
		return h.Name
	case *hint.FunContext:
		return h.Name
	case *hint.VecOrDict:
		return names.VecOrDict
	}
	return ""
}

func formatHints(tparams []string, hs []hint.Hint) (string, error) {
	parts := make([]string, 0, len(hs))
	for _, h := range hs {
		s, err := FormatHint(tparams, false, h)
		if err != nil {
			return "", err
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, ", "), nil
}

func formatField(tparams []string, f hint.Field) (string, error) {
	var name string
	switch n := f.Name.(type) {
	case *hint.FieldStr:
		name = fmt.Sprintf("'%s'", n.Value)
	case *hint.FieldClass:
		name = fmt.Sprintf("'%s'", fmtNameOrPrim(tparams, n.Name))
	case *hint.FieldClassConst:
		name = fmt.Sprintf("%s::%s", fmtNameOrPrim(tparams, n.Class), n.Const)
	}
	prefix := ""
	if f.Optional {
		prefix = "?"
	}
	s, err := FormatHint(tparams, false, f.Hint)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%s=>%s", prefix, name, s), nil
}
