package core

import (
	"propmeta/internal/types"
)

// resolution is the outcome of category resolution for one property
// record. conflict holds the surviving categories when more than one
// remains after override narrowing; winner is then the first in the
// configured category ordering.
type resolution struct {
	winner      types.Category
	resolved    bool
	conflict    []types.Category
	unsupported []string
}

func (e Extractor) resolveCategory(record propertyRecord) resolution {
	res := resolution{unsupported: e.unsupportedOn(record)}

	found := e.categoriesOn(record)
	survivors := e.reduceOverrides(found)
	switch len(survivors) {
	case 0:
		return res
	case 1:
		res.winner = survivors[0]
		res.resolved = true
		return res
	default:
		// Configuration-order tie-break: the first declared
		// category becomes the nominal winner so a resolved
		// property still exists alongside the conflict.
		res.winner = survivors[0]
		res.resolved = true
		res.conflict = survivors
		return res
	}
}

// categoriesOn collects the primary categories present on the record's
// surviving sites, in configured declaration order.
func (e Extractor) categoriesOn(record propertyRecord) []types.Category {
	var found []types.Category
	for _, category := range e.cfg.Categories {
		name := string(category)
		if hasMarker(record.effective, name) || hasMarker(record.fieldMarkers(), name) {
			found = append(found, category)
		}
	}
	return found
}

// reduceOverrides removes every base category narrowed by another
// found category. Membership is tested against the original found set
// so a chain of narrowings collapses to its most specific member.
func (e Extractor) reduceOverrides(found []types.Category) []types.Category {
	if len(found) < 2 {
		return found
	}
	var survivors []types.Category
	for _, candidate := range found {
		narrowed := false
		for _, other := range found {
			if other == candidate {
				continue
			}
			if _, ok := e.overrides[candidate][other]; ok {
				narrowed = true
				break
			}
		}
		if !narrowed {
			survivors = append(survivors, candidate)
		}
	}
	// Mutual narrowing would eliminate every candidate; keep the
	// full set and let conflict handling report it.
	if len(survivors) == 0 {
		return found
	}
	return survivors
}

// unsupportedOn lists the known-but-unsupported markers present on the
// record, in the order the configuration declares them.
func (e Extractor) unsupportedOn(record propertyRecord) []string {
	var present []string
	for _, name := range e.cfg.KnownUnsupported {
		if hasMarker(record.effective, name) || hasMarker(record.fieldMarkers(), name) {
			present = append(present, name)
		}
	}
	return present
}

// supportingMarkers gathers the payload of supporting markers (relevant
// but not category-bearing) from the surviving sites, method markers
// first, deduplicated by name.
func (e Extractor) supportingMarkers(record propertyRecord) []types.Marker {
	var supporting []types.Marker
	seen := map[string]struct{}{}
	collect := func(markers []types.Marker) {
		for _, marker := range markers {
			if _, ok := e.relevant[marker.Name]; !ok {
				continue
			}
			if e.isCategory(marker.Name) {
				continue
			}
			if _, ok := seen[marker.Name]; ok {
				continue
			}
			seen[marker.Name] = struct{}{}
			supporting = append(supporting, marker)
		}
	}
	collect(record.effective)
	collect(record.fieldMarkers())
	return supporting
}
