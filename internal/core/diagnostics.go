package core

import (
	"propmeta/internal/types"
)

// buildDiagnostics evaluates the per-property diagnostic rules. Rules
// fire independently of each other and of resolution success; within
// one property the emission order is fixed (conflict, duplicate,
// private, not-annotated, unsupported) so output is deterministic.
func (e Extractor) buildDiagnostics(record propertyRecord, res resolution) []types.Diagnostic {
	var out []types.Diagnostic

	if len(res.conflict) > 1 {
		out = append(out, types.Diagnostic{
			Property: record.name,
			Kind:     types.DiagnosticConflictingMarkers,
			Markers:  categoryNames(res.conflict),
		})
	}

	if record.field != nil && len(record.methods) > 0 {
		for _, category := range e.cfg.Categories {
			name := string(category)
			if hasMarker(record.effective, name) && hasMarker(record.fieldMarkers(), name) {
				out = append(out, types.Diagnostic{
					Property: record.name,
					Kind:     types.DiagnosticDuplicateMarker,
					Markers:  []string{name},
				})
			}
		}
	}

	if derived, ok := record.mostDerived(); ok {
		markers := derived.markers
		if derived.isAccessor() {
			markers = record.effective
		}
		if derived.visibility == types.VisibilityPrivate {
			if name, ok := e.firstCategoryMarker(markers); ok {
				out = append(out, types.Diagnostic{
					Property: record.name,
					Kind:     types.DiagnosticPrivateAnnotated,
					Markers:  []string{name},
				})
			}
		}
		if derived.isAccessor() && derived.visibility != types.VisibilityPrivate && !e.anyRecognized(record) {
			out = append(out, types.Diagnostic{
				Property: record.name,
				Kind:     types.DiagnosticNotAnnotated,
			})
		}
	}

	for _, name := range res.unsupported {
		out = append(out, types.Diagnostic{
			Property: record.name,
			Kind:     types.DiagnosticUnsupportedMarker,
			Markers:  []string{name},
		})
	}
	return out
}

// firstCategoryMarker returns the first configured category present in
// markers, in configuration order.
func (e Extractor) firstCategoryMarker(markers []types.Marker) (string, bool) {
	for _, category := range e.cfg.Categories {
		if hasMarker(markers, string(category)) {
			return string(category), true
		}
	}
	return "", false
}

// anyRecognized reports whether the record carries any relevant or
// known marker on its surviving sites, including inherited ones.
func (e Extractor) anyRecognized(record propertyRecord) bool {
	return e.hasRecognizedMarker(record.effective) || e.hasRecognizedMarker(record.fieldMarkers())
}

func categoryNames(categories []types.Category) []string {
	names := make([]string, 0, len(categories))
	for _, category := range categories {
		names = append(names, string(category))
	}
	return names
}
