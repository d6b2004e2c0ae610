// Package hint defines the surface type-annotation tree consumed by the
// lowering passes. The tree is a strict tree (never a graph), so every
// recursive walk over it terminates.
//
// The set of forms is closed: every variant implements the unexported
// marker method, and the lowering passes switch over all of them with no
// default arm. Adding a form here forces an audit of each pass.
package hint

// Hint is a single surface type annotation node.
type Hint interface {
	hintNode()
}

// Apply is a named type application: Foo, Foo<T1, T2>.
// Name is the namespace-qualified name as produced by the elaborator
// (e.g. "\\Foo\\Bar", "\\HH\\Awaitable") or a bare generic parameter name.
type Apply struct {
	Name string
	Args []Hint
}

// TypeParam is a bare reference to a declared generic parameter.
type TypeParam struct {
	Name string
}

// PtrKind distinguishes the two class-pointer wrappers.
type PtrKind int

const (
	ClassPtrClass PtrKind = iota
	ClassPtrEnum
)

// ClassPtr is a class or enum pointer wrapper: class<X>, enum<X>.
type ClassPtr struct {
	Kind  PtrKind
	Inner Hint
}

// Wildcard is the placeholder hint: _.
type Wildcard struct{}

// Fun is a function type: (function (P1, P2): R).
type Fun struct {
	Params []Hint
	Return Hint
}

// Access is a type-constant access path: Owner::C1::C2.
// Root must be an Apply; any other root is an upstream invariant
// violation surfaced by the lowering passes.
type Access struct {
	Root Hint
	Path []string
}

// Option is the nullable wrapper: ?T.
type Option struct {
	Inner Hint
}

// Refinement is a class refinement wrapper. It is invisible to the
// runtime and every pass unwraps it transparently.
type Refinement struct {
	Inner Hint
}

// FieldName is the name of a shape field.
type FieldName interface {
	fieldName()
}

// FieldStr is a string-literal field name: 'x'.
type FieldStr struct {
	Value string
}

// FieldClass is a class name used as a field name.
type FieldClass struct {
	Name string
}

// FieldClassConst is a class constant used as a field name: C::K.
type FieldClassConst struct {
	Class string
	Const string
}

func (*FieldStr) fieldName()        {}
func (*FieldClass) fieldName()      {}
func (*FieldClassConst) fieldName() {}

// Field is one shape field. Fields keep their declared order; the
// lowering passes never reorder them.
type Field struct {
	Name     FieldName
	Optional bool
	Hint     Hint
}

// Shape is a shape type: shape('x' => int, ?'y' => string).
type Shape struct {
	Fields []Field
}

// Tuple is a tuple type. Only required components are modeled;
// optional and variadic components are not carried.
type Tuple struct {
	Required []Hint
}

// Like is the like-type wrapper: ~T. Transparent for enforcement.
type Like struct {
	Inner Hint
}

// Soft is the soft wrapper: @T. Enforcement becomes advisory.
type Soft struct {
	Inner Hint
}

// PrimKind enumerates the primitive scalar hints.
type PrimKind int

const (
	PrimNull PrimKind = iota
	PrimVoid
	PrimInt
	PrimBool
	PrimFloat
	PrimString
	PrimResource
	PrimNum
	PrimArraykey
	PrimNoreturn
)

// Prim is a primitive scalar hint.
type Prim struct {
	Kind PrimKind
}

// FunContext is a function-context reference bound to a parameter name.
type FunContext struct {
	Name string
}

// Dynamic is the dynamic hint.
type Dynamic struct{}

// Mixed is the mixed hint.
type Mixed struct{}

// Nonnull is the nonnull hint.
type Nonnull struct{}

// Nothing is the bottom hint.
type Nothing struct{}

// This is the late-bound this hint.
type This struct{}

// Union is a union of alternatives: (A | B).
type Union struct {
	Members []Hint
}

// Intersection is an intersection: (A & B).
type Intersection struct {
	Members []Hint
}

// Var is a type-variable token emitted by inference.
type Var struct {
	Name string
}

// VecOrDict is the vec_or_dict hint. Key is nil in the one-argument form.
type VecOrDict struct {
	Key Hint
	Val Hint
}

func (*Apply) hintNode()        {}
func (*TypeParam) hintNode()    {}
func (*ClassPtr) hintNode()     {}
func (*Wildcard) hintNode()     {}
func (*Fun) hintNode()          {}
func (*Access) hintNode()       {}
func (*Option) hintNode()       {}
func (*Refinement) hintNode()   {}
func (*Shape) hintNode()        {}
func (*Tuple) hintNode()        {}
func (*Like) hintNode()         {}
func (*Soft) hintNode()         {}
func (*Prim) hintNode()         {}
func (*FunContext) hintNode()   {}
func (*Dynamic) hintNode()      {}
func (*Mixed) hintNode()        {}
func (*Nonnull) hintNode()      {}
func (*Nothing) hintNode()      {}
func (*This) hintNode()         {}
func (*Union) hintNode()        {}
func (*Intersection) hintNode() {}
func (*Var) hintNode()          {}
func (*VecOrDict) hintNode()    {}
