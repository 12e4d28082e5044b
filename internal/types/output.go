package types

import (
	"fmt"
	"strings"
)

// ResolvedProperty is one extracted property with its winning category.
// Supporting carries the payload of any supporting markers found on the
// surviving declaration sites.
type ResolvedProperty struct {
	Name       string
	Category   Category
	Supporting []Marker
}

// Diagnostic is a structured, non-fatal finding about one property.
// Markers lists the marker or category names involved, in the order
// the configuration declares them.
type Diagnostic struct {
	Property string
	Kind     DiagnosticKind
	Markers  []string
}

// Message renders the one deterministic message for this diagnostic.
// label is the engine's configured domain label; it only appears in
// the not-annotated message.
func (d Diagnostic) Message(label string) string {
	switch d.Kind {
	case DiagnosticDuplicateMarker:
		return fmt.Sprintf("Property '%s' has both a getter and a field declared with marker @%s.", d.Property, d.firstMarker())
	case DiagnosticPrivateAnnotated:
		return fmt.Sprintf("Property '%s' is private and annotated with marker @%s.", d.Property, d.firstMarker())
	case DiagnosticNotAnnotated:
		return fmt.Sprintf("Property '%s' is not annotated with %s.", d.Property, label)
	case DiagnosticConflictingMarkers:
		return fmt.Sprintf("Property '%s' has conflicting markers declared: @%s.", d.Property, strings.Join(d.Markers, ", @"))
	case DiagnosticUnsupportedMarker:
		return fmt.Sprintf("Property '%s' is annotated with unsupported marker @%s.", d.Property, d.firstMarker())
	default:
		return fmt.Sprintf("Property '%s' has an unknown diagnostic kind %s.", d.Property, d.Kind)
	}
}

func (d Diagnostic) firstMarker() string {
	if len(d.Markers) == 0 {
		return ""
	}
	return d.Markers[0]
}
