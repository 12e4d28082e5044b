package adapters

import (
	"fmt"
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	pep440 "github.com/aquasecurity/go-pep440-version"
	"gopkg.in/yaml.v3"

	"propmeta/internal/types"
)

// SupportedFormatVersion is the newest type-set fixture format this
// build understands. Older fixtures load; newer ones are refused.
const SupportedFormatVersion = "1.0"

type TypeFileAdapter struct{}

func NewTypeFileAdapter() TypeFileAdapter {
	return TypeFileAdapter{}
}

func (a TypeFileAdapter) LoadSet(path string) (types.TypeSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.TypeSet{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("type set file not found").
			WithCause(err)
	}
	var set types.TypeSet
	if err := yaml.Unmarshal(data, &set); err != nil {
		return types.TypeSet{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse type set yaml").
			WithCause(err)
	}
	if err := checkFormatVersion(set.FormatVersion); err != nil {
		return types.TypeSet{}, err
	}
	seen := map[string]struct{}{}
	for _, desc := range set.Types {
		if desc.Name == "" {
			return types.TypeSet{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("type description missing name")
		}
		if _, ok := seen[desc.Name]; ok {
			return types.TypeSet{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("type described twice: %s", desc.Name))
		}
		seen[desc.Name] = struct{}{}
	}
	return set, nil
}

func checkFormatVersion(value string) error {
	if value == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("type set file missing format_version")
	}
	declared, err := pep440.Parse(value)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid format_version: %s", value)).
			WithCause(err)
	}
	supported, err := pep440.Parse(SupportedFormatVersion)
	if err != nil {
		return err
	}
	if declared.GreaterThan(supported) {
		return errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(fmt.Sprintf("type set format %s is newer than supported format %s", value, SupportedFormatVersion))
	}
	return nil
}
