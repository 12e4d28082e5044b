package adapters

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"propmeta/internal/types"
)

const reportFileName = "metadata.yaml"

type ReportFileAdapter struct {
	Dir string
}

func NewReportFileAdapter(dir string) ReportFileAdapter {
	return ReportFileAdapter{Dir: dir}
}

// WriteReport persists the extraction report as metadata.yaml in the
// adapter's directory. Type entries are ordered by name so repeated
// runs produce byte-identical output.
func (a ReportFileAdapter) WriteReport(report types.ExtractionReport) error {
	if err := os.MkdirAll(a.Dir, 0755); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create report directory").
			WithCause(err)
	}
	ordered := append([]types.TypeReport(nil), report.Types...)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Name < ordered[j].Name
	})
	report.Types = ordered
	data, err := yaml.Marshal(report)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to encode extraction report").
			WithCause(err)
	}
	return os.WriteFile(filepath.Join(a.Dir, reportFileName), data, 0644)
}

// ReadReport loads a previously written metadata.yaml from dir.
func (a ReportFileAdapter) ReadReport(dir string) (types.ExtractionReport, error) {
	data, err := os.ReadFile(filepath.Join(dir, reportFileName))
	if err != nil {
		return types.ExtractionReport{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("extraction report not found").
			WithCause(err)
	}
	var report types.ExtractionReport
	if err := yaml.Unmarshal(data, &report); err != nil {
		return types.ExtractionReport{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse extraction report").
			WithCause(err)
	}
	return report, nil
}
