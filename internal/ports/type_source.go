package ports

import (
	"propmeta/internal/types"
)

// TypeSourcePort supplies materialized type descriptions. The engine
// never performs its own introspection; whatever produced the set is
// responsible for fields, methods, markers, and override relations
// being structurally sound.
type TypeSourcePort interface {
	LoadSet(path string) (types.TypeSet, error)
}

// DomainConfigPort loads the immutable engine configuration for one
// marker domain.
type DomainConfigPort interface {
	LoadDomain(path string) (types.EngineConfig, error)
}
