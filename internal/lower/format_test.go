package lower

import (
	"errors"
	"testing"

	"github.com/hacklite/hintc/internal/hint"
)

func TestFormatHint(t *testing.T) {
	tests := []struct {
		name    string
		tparams []string
		strip   bool
		hint    hint.Hint
		want    string
	}{
		{
			name: "primitive int",
			hint: &hint.Prim{Kind: hint.PrimInt},
			want: "int",
		},
		{
			name: "qualified class name",
			hint: &hint.Apply{Name: "\\Foo\\Bar"},
			want: "Foo\\Bar",
		},
		{
			name: "applied type arguments",
			hint: &hint.Apply{Name: "\\HH\\Vector", Args: []hint.Hint{&hint.Prim{Kind: hint.PrimInt}}},
			want: "HH\\Vector<int>",
		},
		{
			name:  "stripped type arguments",
			strip: true,
			hint:  &hint.Apply{Name: "\\HH\\Vector", Args: []hint.Hint{&hint.Prim{Kind: hint.PrimInt}}},
			want:  "HH\\Vector",
		},
		{
			name:    "generic parameter stays verbatim",
			tparams: []string{"T"},
			hint:    &hint.Apply{Name: "T"},
			want:    "T",
		},
		{
			name: "xhp element keeps unmangled form",
			hint: &hint.Apply{Name: "\\:x:frag"},
			want: ":x:frag",
		},
		{
			name: "nullable",
			hint: &hint.Option{Inner: &hint.Apply{Name: "\\Foo"}},
			want: "?Foo",
		},
		{
			name: "nullable over soft normalizes to soft-first",
			hint: &hint.Option{Inner: &hint.Soft{Inner: &hint.Apply{Name: "\\Foo"}}},
			want: "@?Foo",
		},
		{
			name: "soft over nullable normalizes the same way",
			hint: &hint.Soft{Inner: &hint.Option{Inner: &hint.Apply{Name: "\\Foo"}}},
			want: "@?Foo",
		},
		{
			name: "like",
			hint: &hint.Like{Inner: &hint.Prim{Kind: hint.PrimInt}},
			want: "~int",
		},
		{
			name: "function type",
			hint: &hint.Fun{
				Params: []hint.Hint{&hint.Prim{Kind: hint.PrimInt}, &hint.Prim{Kind: hint.PrimString}},
				Return: &hint.Prim{Kind: hint.PrimVoid},
			},
			want: "(function (int, string): void)",
		},
		{
			name: "tuple renders required components only",
			hint: &hint.Tuple{Required: []hint.Hint{&hint.Prim{Kind: hint.PrimInt}, &hint.Prim{Kind: hint.PrimFloat}}},
			want: "(int, float)",
		},
		{
			name: "shape fields in declared order",
			hint: &hint.Shape{Fields: []hint.Field{
				{Name: &hint.FieldStr{Value: "x"}, Hint: &hint.Prim{Kind: hint.PrimInt}},
				{Name: &hint.FieldStr{Value: "y"}, Optional: true, Hint: &hint.Option{Inner: &hint.Prim{Kind: hint.PrimString}}},
			}},
			want: "HH\\shape('x'=>int, ?'y'=>?string)",
		},
		{
			name: "shape class constant field name",
			hint: &hint.Shape{Fields: []hint.Field{
				{Name: &hint.FieldClassConst{Class: "\\C", Const: "K"}, Hint: &hint.Prim{Kind: hint.PrimBool}},
			}},
			want: "HH\\shape(C::K=>bool)",
		},
		{
			name: "type constant access",
			hint: &hint.Access{Root: &hint.Apply{Name: "\\Foo"}, Path: []string{"T", "U"}},
			want: "Foo::T::U",
		},
		{
			name: "class pointer",
			hint: &hint.ClassPtr{Kind: hint.ClassPtrClass, Inner: &hint.Apply{Name: "\\Foo"}},
			want: "class<Foo>",
		},
		{
			name: "enum pointer",
			hint: &hint.ClassPtr{Kind: hint.ClassPtrEnum, Inner: &hint.Apply{Name: "\\Foo"}},
			want: "enum<Foo>",
		},
		{
			name: "wildcard",
			hint: &hint.Wildcard{},
			want: "_",
		},
		{
			name: "union collapses to mixed",
			hint: &hint.Union{Members: []hint.Hint{&hint.Prim{Kind: hint.PrimInt}}},
			want: "mixed",
		},
		{
			name: "intersection collapses to mixed",
			hint: &hint.Intersection{Members: []hint.Hint{&hint.Prim{Kind: hint.PrimInt}}},
			want: "mixed",
		},
		{
			name: "vec_or_dict",
			hint: &hint.VecOrDict{Val: &hint.Prim{Kind: hint.PrimInt}},
			want: "HH\\vec_or_dict",
		},
		{
			name: "refinement is transparent",
			hint: &hint.Refinement{Inner: &hint.Apply{Name: "\\Foo"}},
			want: "Foo",
		},
		{
			name: "nested awaitable display keeps full nesting",
			hint: &hint.Apply{Name: "\\HH\\Awaitable", Args: []hint.Hint{
				&hint.Apply{Name: "\\HH\\Awaitable", Args: []hint.Hint{&hint.Prim{Kind: hint.PrimInt}}},
			}},
			want: "HH\\Awaitable<HH\\Awaitable<int>>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatHint(tt.tparams, tt.strip, tt.hint)
			if err != nil {
				t.Fatalf("FormatHint() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("FormatHint() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatMalformedAccess(t *testing.T) {
	h := &hint.Access{Root: &hint.Prim{Kind: hint.PrimInt}, Path: []string{"T"}}
	_, err := FormatHint(nil, false, h)
	var malformed *MalformedAccessError
	if !errors.As(err, &malformed) {
		t.Fatalf("FormatHint() error = %v, want MalformedAccessError", err)
	}
}
