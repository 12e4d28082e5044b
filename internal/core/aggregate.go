package core

import (
	"sort"

	"propmeta/internal/types"
)

// propertyRecord is the merged view of every declaration site sharing
// one property name. methods keeps accessor sites most-derived first;
// effective holds the post-shadowing marker set for the method chain.
type propertyRecord struct {
	name      string
	methods   []site
	field     *site
	effective []types.Marker
}

// methodSite returns the most-derived accessor declaration, the one
// whose visibility and ownership represent the property.
func (r propertyRecord) methodSite() (site, bool) {
	if len(r.methods) == 0 {
		return site{}, false
	}
	return r.methods[0], true
}

// mostDerived picks the declaration site closest to the target type.
// When a field and an accessor sit at the same depth the accessor
// wins: it is the canonical declaration of the property.
func (r propertyRecord) mostDerived() (site, bool) {
	method, hasMethod := r.methodSite()
	if !hasMethod && r.field == nil {
		return site{}, false
	}
	if !hasMethod {
		return *r.field, true
	}
	if r.field == nil || method.depth <= r.field.depth {
		return method, true
	}
	return *r.field, true
}

func (r propertyRecord) fieldMarkers() []types.Marker {
	if r.field == nil {
		return nil
	}
	return r.field.markers
}

// aggregate groups candidate sites into property records and applies
// the shadowing rule to each record's method chain. Records come back
// sorted by property name.
func (e Extractor) aggregate(sites []site) []propertyRecord {
	byName := map[string]*propertyRecord{}
	for _, s := range sites {
		record, ok := byName[s.property]
		if !ok {
			record = &propertyRecord{name: s.property}
			byName[s.property] = record
		}
		if s.kind == types.MemberKindField {
			// Field hiding is not multi-site: the most-derived
			// field declaration is the only one retained.
			if record.field == nil {
				declared := s
				record.field = &declared
			}
			continue
		}
		record.methods = append(record.methods, s)
	}

	records := make([]propertyRecord, 0, len(byName))
	for _, record := range byName {
		record.effective = e.effectiveMethodMarkers(record.methods)
		records = append(records, *record)
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].name < records[j].name
	})
	return records
}

// effectiveMethodMarkers resolves shadowing across an override chain:
// an override that declares recognized markers of its own replaces the
// inherited set entirely; an override without any inherits the first
// recognized set found walking outward. Marker sets never merge
// across levels.
func (e Extractor) effectiveMethodMarkers(methods []site) []types.Marker {
	if len(methods) == 0 {
		return nil
	}
	for _, method := range methods {
		if e.hasRecognizedMarker(method.markers) {
			return method.markers
		}
	}
	return methods[0].markers
}

func (e Extractor) hasRecognizedMarker(markers []types.Marker) bool {
	for _, marker := range markers {
		if e.isRecognized(marker.Name) {
			return true
		}
	}
	return false
}

func hasMarker(markers []types.Marker, name string) bool {
	for _, marker := range markers {
		if marker.Name == name {
			return true
		}
	}
	return false
}
