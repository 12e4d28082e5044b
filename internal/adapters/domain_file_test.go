package adapters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"propmeta/internal/types"
)

func TestLoadDomainFromFixture(t *testing.T) {
	adapter := NewDomainFileAdapter()
	cfg, err := adapter.LoadDomain("../../fixtures/domain-sample.yaml")
	require.NoError(t, err)

	assert.Equal(t, "an input or output marker", cfg.DomainLabel)
	assert.Equal(t, []types.Category{
		"Input", "InputFile", "InputFiles", "OutputFile", "OutputDirectory", "Classpath",
	}, cfg.Categories)
	assert.Equal(t, []types.Category{"Classpath"}, cfg.Overrides["InputFiles"])
	assert.Equal(t, []string{"Incremental"}, cfg.KnownUnsupported)
	assert.Equal(t, []string{"Object"}, cfg.IgnoredClassRoots)
	assert.Equal(t, []string{"ScriptObject"}, cfg.IgnoredObjectRoots)
}

func TestLoadDomainMissingFile(t *testing.T) {
	adapter := NewDomainFileAdapter()
	_, err := adapter.LoadDomain("does-not-exist.yaml")
	require.Error(t, err)
}
