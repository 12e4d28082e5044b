package types

// Marker is an opaque tag attached to a field or accessor method.
// Markers are compared by name; Value carries an optional payload
// (e.g. a named hint on a supporting marker).
type Marker struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value,omitempty"`
}

type FieldDecl struct {
	Name       string     `yaml:"name"`
	Type       string     `yaml:"type,omitempty"`
	Markers    []Marker   `yaml:"markers,omitempty"`
	Visibility Visibility `yaml:"visibility"`
	Static     bool       `yaml:"static,omitempty"`
}

// MethodDecl describes one declared method. Override marks the method
// as overriding a same-named accessor further up the hierarchy; the
// walker rejects descriptions where no such ancestor exists.
type MethodDecl struct {
	Name       string     `yaml:"name"`
	ReturnType string     `yaml:"return_type,omitempty"`
	ParamCount int        `yaml:"param_count,omitempty"`
	Markers    []Marker   `yaml:"markers,omitempty"`
	Visibility Visibility `yaml:"visibility"`
	Override   bool       `yaml:"override,omitempty"`
}

// TypeDescription is the materialized shape of one type as produced by
// the external introspection collaborator. Superclass and Interfaces
// reference other descriptions in the same TypeSet by name; for an
// interface description, Interfaces lists the extended interfaces.
type TypeDescription struct {
	Name       string       `yaml:"name"`
	Kind       TypeKind     `yaml:"kind"`
	Superclass string       `yaml:"superclass,omitempty"`
	Interfaces []string     `yaml:"interfaces,omitempty"`
	Fields     []FieldDecl  `yaml:"fields,omitempty"`
	Methods    []MethodDecl `yaml:"methods,omitempty"`
}

// TypeSet is the per-call input universe: every type description the
// hierarchy walker may need to reach from a target type.
type TypeSet struct {
	FormatVersion string            `yaml:"format_version"`
	Types         []TypeDescription `yaml:"types"`
}

// Lookup returns the description registered under name.
func (s TypeSet) Lookup(name string) (TypeDescription, bool) {
	for _, desc := range s.Types {
		if desc.Name == name {
			return desc, true
		}
	}
	return TypeDescription{}, false
}

// Names returns the declared type names in declaration order.
func (s TypeSet) Names() []string {
	names := make([]string, 0, len(s.Types))
	for _, desc := range s.Types {
		names = append(names, desc.Name)
	}
	return names
}
