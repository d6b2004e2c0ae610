package bc

// Constraint is the runtime-enforceable encoding of a hint: an optional
// enforcement name plus a flag set. Name None means the constraint has
// no target; an interned empty name is a present, empty target.
type Constraint struct {
	Name  ID
	Flags Flags
}

// NewConstraint builds a constraint from an existing name handle.
func NewConstraint(name ID, flags Flags) Constraint {
	return Constraint{Name: name, Flags: flags}
}

// InternConstraint interns the name and builds a constraint around it.
func InternConstraint(name string, flags Flags) Constraint {
	return Constraint{Name: Intern(name), Flags: flags}
}

// IsEmpty reports whether the constraint carries neither a target nor
// any flags. The soft and nullable wrappers drop their flags entirely
// on such constraints.
func (c Constraint) IsEmpty() bool {
	return !c.Name.Valid() && c.Flags.Empty()
}

// TypeInfo pairs the canonical display string of a hint occurrence with
// its constraint. It is built once and handed to the emitter; it is
// never mutated afterward.
type TypeInfo struct {
	UserType   ID
	Constraint Constraint
}

// NewTypeInfo builds a TypeInfo record.
func NewTypeInfo(userType ID, c Constraint) TypeInfo {
	return TypeInfo{UserType: userType, Constraint: c}
}
