package types

// Category is a primary semantic kind assignable to a property. A
// category is identified by the marker name that declares it.
type Category string

// EngineConfig is the immutable construction-time configuration of the
// extraction engine. Categories is ordered: the declaration order
// decides how conflicting categories are listed and which one wins the
// nominal tie-break.
type EngineConfig struct {
	// DomainLabel is used verbatim in the not-annotated message,
	// e.g. "an input or output marker".
	DomainLabel string `yaml:"domain_label"`

	// Categories is the closed, ordered set of primary markers.
	Categories []Category `yaml:"categories"`

	// RelevantMarkers is the union of primary and supporting marker
	// names. Markers outside this set and KnownUnsupported are ignored.
	RelevantMarkers []string `yaml:"relevant_markers"`

	// Overrides maps a base category to the narrower categories that
	// may replace it on a more specific declaration without conflict.
	Overrides map[Category][]Category `yaml:"overrides,omitempty"`

	// KnownUnsupported lists markers the engine recognizes but never
	// maps to a category; their presence is always diagnostic-worthy.
	KnownUnsupported []string `yaml:"known_unsupported,omitempty"`

	// IgnoredClassRoots and IgnoredObjectRoots name hierarchy roots
	// whose members never become properties. The two sets are
	// independent: one cuts off the class hierarchy, the other the
	// alternate object-model root.
	IgnoredClassRoots  []string `yaml:"ignored_class_roots,omitempty"`
	IgnoredObjectRoots []string `yaml:"ignored_object_roots,omitempty"`
}
