// Package unit groups the lowered type information of one manifest run
// into a single serializable document for downstream tooling.
package unit

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/hacklite/hintc/internal/bc"
)

// Unit is one lowering run: a set of declarations with their lowered
// type-info records, tagged with a generated unit ID.
type Unit struct {
	ID    string `yaml:"id"`
	Decls []Decl `yaml:"decls"`
}

// Decl is one lowered declaration. Hint echoes the surface expression
// the records were derived from.
type Decl struct {
	Name      string   `yaml:"name"`
	Kind      string   `yaml:"kind"`
	Hint      string   `yaml:"hint"`
	TypeInfos []Record `yaml:"type_infos"`
}

// Record is the serialized form of one TypeInfo. Name is nil when the
// constraint has no target; a present empty string is an empty target,
// which is distinct.
type Record struct {
	UserType string   `yaml:"user_type"`
	Name     *string  `yaml:"name,omitempty"`
	Flags    []string `yaml:"flags,omitempty"`
}

// New creates an empty unit with a fresh ID.
func New() *Unit {
	return &Unit{ID: uuid.NewString()}
}

// Add appends a lowered declaration to the unit.
func (u *Unit) Add(name, kind, hintText string, tis []bc.TypeInfo) {
	records := make([]Record, 0, len(tis))
	for _, ti := range tis {
		records = append(records, NewRecord(ti))
	}
	u.Decls = append(u.Decls, Decl{Name: name, Kind: kind, Hint: hintText, TypeInfos: records})
}

// NewRecord converts a TypeInfo into its serialized form.
func NewRecord(ti bc.TypeInfo) Record {
	r := Record{
		UserType: bc.Lookup(ti.UserType),
		Flags:    ti.Constraint.Flags.Names(),
	}
	if ti.Constraint.Name.Valid() {
		name := bc.Lookup(ti.Constraint.Name)
		r.Name = &name
	}
	return r
}

// Encode writes the unit as YAML.
func (u *Unit) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(u); err != nil {
		return fmt.Errorf("encoding unit: %w", err)
	}
	return enc.Close()
}

// WriteFile writes the unit as YAML to path.
func (u *Unit) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("writing unit: %w", err)
	}
	if err := u.Encode(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
