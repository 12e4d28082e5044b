package adapters

import (
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"propmeta/internal/types"
)

// DomainFileAdapter loads an engine configuration from a domain YAML
// file. Semantic validation (closed sets, override references) happens
// in core.NewExtractor; the adapter only checks the file parses.
type DomainFileAdapter struct{}

func NewDomainFileAdapter() DomainFileAdapter {
	return DomainFileAdapter{}
}

func (a DomainFileAdapter) LoadDomain(path string) (types.EngineConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.EngineConfig{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("domain config file not found").
			WithCause(err)
	}
	var cfg types.EngineConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return types.EngineConfig{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse domain config yaml").
			WithCause(err)
	}
	return cfg, nil
}
