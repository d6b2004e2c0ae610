package hintparse

import (
	"reflect"
	"testing"

	"github.com/hacklite/hintc/internal/hint"
)

var testAliases = map[string]string{
	"Awaitable": "\\HH\\Awaitable",
	"Vector":    "\\HH\\Vector",
}

func parseOK(t *testing.T, input string, tparams []string) hint.Hint {
	t.Helper()
	h, err := Parse(input, tparams, testAliases)
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", input, err)
	}
	return h
}

func TestParseHints(t *testing.T) {
	tests := []struct {
		input   string
		tparams []string
		want    hint.Hint
	}{
		{
			input: "int",
			want:  &hint.Prim{Kind: hint.PrimInt},
		},
		{
			input: "mixed",
			want:  &hint.Mixed{},
		},
		{
			input: "this",
			want:  &hint.This{},
		},
		{
			input: "_",
			want:  &hint.Wildcard{},
		},
		{
			input: "Foo",
			want:  &hint.Apply{Name: "\\Foo"},
		},
		{
			input: "\\Bar\\Baz",
			want:  &hint.Apply{Name: "\\Bar\\Baz"},
		},
		{
			input: "Awaitable<int>",
			want: &hint.Apply{
				Name: "\\HH\\Awaitable",
				Args: []hint.Hint{&hint.Prim{Kind: hint.PrimInt}},
			},
		},
		{
			input:   "T",
			tparams: []string{"T"},
			want:    &hint.Apply{Name: "T"},
		},
		{
			input: "?Foo",
			want:  &hint.Option{Inner: &hint.Apply{Name: "\\Foo"}},
		},
		{
			input: "@int",
			want:  &hint.Soft{Inner: &hint.Prim{Kind: hint.PrimInt}},
		},
		{
			input: "~string",
			want:  &hint.Like{Inner: &hint.Prim{Kind: hint.PrimString}},
		},
		{
			input: "?@Awaitable<void>",
			want: &hint.Option{Inner: &hint.Soft{Inner: &hint.Apply{
				Name: "\\HH\\Awaitable",
				Args: []hint.Hint{&hint.Prim{Kind: hint.PrimVoid}},
			}}},
		},
		{
			input: "(int, float)",
			want: &hint.Tuple{Required: []hint.Hint{
				&hint.Prim{Kind: hint.PrimInt},
				&hint.Prim{Kind: hint.PrimFloat},
			}},
		},
		{
			input: "(int | string)",
			want: &hint.Union{Members: []hint.Hint{
				&hint.Prim{Kind: hint.PrimInt},
				&hint.Prim{Kind: hint.PrimString},
			}},
		},
		{
			input: "(Foo & Bar)",
			want: &hint.Intersection{Members: []hint.Hint{
				&hint.Apply{Name: "\\Foo"},
				&hint.Apply{Name: "\\Bar"},
			}},
		},
		{
			input: "(function (int, string): void)",
			want: &hint.Fun{
				Params: []hint.Hint{&hint.Prim{Kind: hint.PrimInt}, &hint.Prim{Kind: hint.PrimString}},
				Return: &hint.Prim{Kind: hint.PrimVoid},
			},
		},
		{
			input: "(function (): int)",
			want:  &hint.Fun{Return: &hint.Prim{Kind: hint.PrimInt}},
		},
		{
			input: "class<Foo>",
			want:  &hint.ClassPtr{Kind: hint.ClassPtrClass, Inner: &hint.Apply{Name: "\\Foo"}},
		},
		{
			input: "enum<Foo>",
			want:  &hint.ClassPtr{Kind: hint.ClassPtrEnum, Inner: &hint.Apply{Name: "\\Foo"}},
		},
		{
			input: "Foo::T::U",
			want: &hint.Access{
				Root: &hint.Apply{Name: "\\Foo"},
				Path: []string{"T", "U"},
			},
		},
		{
			input: "shape('x' => int, ?'y' => ?string)",
			want: &hint.Shape{Fields: []hint.Field{
				{Name: &hint.FieldStr{Value: "x"}, Hint: &hint.Prim{Kind: hint.PrimInt}},
				{Name: &hint.FieldStr{Value: "y"}, Optional: true, Hint: &hint.Option{Inner: &hint.Prim{Kind: hint.PrimString}}},
			}},
		},
		{
			input: "shape(C::K => bool)",
			want: &hint.Shape{Fields: []hint.Field{
				{Name: &hint.FieldClassConst{Class: "\\C", Const: "K"}, Hint: &hint.Prim{Kind: hint.PrimBool}},
			}},
		},
		{
			input: ":x:frag",
			want:  &hint.Apply{Name: "\\:x:frag"},
		},
		{
			input: "Vector<Vector<int>>",
			want: &hint.Apply{
				Name: "\\HH\\Vector",
				Args: []hint.Hint{&hint.Apply{
					Name: "\\HH\\Vector",
					Args: []hint.Hint{&hint.Prim{Kind: hint.PrimInt}},
				}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := parseOK(t, tt.input, tt.tparams)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse(%q) = %#v, want %#v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	inputs := []string{
		"",
		"?",
		"Foo<",
		"Foo<int",
		"(int)",
		"(function (int) void)",
		"shape('x' int)",
		"shape(",
		"Foo::",
		"Foo extra",
		"'lit'",
	}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			if _, err := Parse(input, nil, testAliases); err == nil {
				t.Errorf("Parse(%q) succeeded, want error", input)
			}
		})
	}
}

func TestParseKeywordEscape(t *testing.T) {
	// A generic parameter named like a keyword stays a name.
	h := parseOK(t, "int", []string{"int"})
	if !reflect.DeepEqual(h, &hint.Apply{Name: "int"}) {
		t.Errorf("got %#v, want bare tparam application", h)
	}
}
