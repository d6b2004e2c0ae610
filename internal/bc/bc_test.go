package bc

import "testing"

func TestFlagsCompose(t *testing.T) {
	a := Nullable | DisplayNullable
	b := DisplayNullable | Nullable
	if a != b {
		t.Errorf("OR must be commutative: %v vs %v", a, b)
	}
	if a|a != a {
		t.Errorf("OR must be idempotent: %v", a|a)
	}
	if !a.Contains(Nullable) || a.Contains(Soft) {
		t.Errorf("Contains() misreports on %v", a)
	}
	if !NoFlags.Empty() || a.Empty() {
		t.Errorf("Empty() misreports")
	}
}

func TestFlagsString(t *testing.T) {
	tests := []struct {
		flags Flags
		want  string
	}{
		{NoFlags, "no_flags"},
		{Soft, "soft"},
		{Nullable | DisplayNullable, "nullable|display_nullable"},
		{TypeVar | UpperBound, "type_var|upper_bound"},
	}
	for _, tt := range tests {
		if got := tt.flags.String(); got != tt.want {
			t.Errorf("Flags(%#x).String() = %q, want %q", uint16(tt.flags), got, tt.want)
		}
	}
}

func TestInternStable(t *testing.T) {
	a := Intern("Foo")
	b := Intern("Foo")
	if a != b {
		t.Errorf("interning twice gave %v and %v", a, b)
	}
	if Lookup(a) != "Foo" {
		t.Errorf("Lookup() = %q, want Foo", Lookup(a))
	}
}

func TestEmptyStringIsPresent(t *testing.T) {
	if !EmptyStr.Valid() {
		t.Fatalf("interned empty string must be a valid handle")
	}
	if EmptyStr == None {
		t.Fatalf("interned empty string must differ from the absent handle")
	}
	if Lookup(EmptyStr) != "" || Lookup(None) != "" {
		t.Errorf("both empty and absent look up to the empty string")
	}
}

func TestConstraintIsEmpty(t *testing.T) {
	if !(Constraint{}).IsEmpty() {
		t.Errorf("zero constraint must be empty")
	}
	if (Constraint{Name: EmptyStr}).IsEmpty() {
		t.Errorf("present empty name is not an empty constraint")
	}
	if (Constraint{Flags: Soft}).IsEmpty() {
		t.Errorf("flagged constraint is not empty")
	}
}
