package types

type PropertyEntry struct {
	Name       string   `yaml:"name"`
	Category   string   `yaml:"category"`
	Supporting []Marker `yaml:"supporting,omitempty"`
}

type TypeReport struct {
	Name       string          `yaml:"name"`
	Properties []PropertyEntry `yaml:"properties,omitempty"`
	Warnings   []string        `yaml:"warnings,omitempty"`
}

// ExtractionReport is the on-disk summary of one extraction run,
// written as metadata.yaml in the output directory.
type ExtractionReport struct {
	FormatVersion string       `yaml:"format_version"`
	GeneratedAt   string       `yaml:"generated_at"`
	DomainLabel   string       `yaml:"domain_label"`
	Types         []TypeReport `yaml:"types"`
}
