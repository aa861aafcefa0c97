// Package recorder samples a fixed, ordered variable list once per tick and
// exports the resulting log as delimited text.
package recorder

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/aretw0/plantctl/pkg/domain"
	"github.com/aretw0/plantctl/pkg/ports"
)

// TimeColumn is the header cell of the leading model-time column.
var TimeColumn = domain.Variable{Name: "ModelTime", Unit: "s"}

// Recorder reads the declared columns in order and stamps them with model time.
type Recorder struct {
	columns []domain.Variable
}

// New creates a recorder for the given columns.
func New(columns []domain.Variable) *Recorder {
	cp := make([]domain.Variable, len(columns))
	copy(cp, columns)
	return &Recorder{columns: cp}
}

// Columns returns the recorded variables, without the time column.
func (r *Recorder) Columns() []domain.Variable {
	return r.columns
}

// Record fetches one row. Values come back in the units declared per column.
func (r *Recorder) Record(ctx context.Context, reader ports.Reader, clock ports.Clock) (domain.Sample, error) {
	mt, err := clock.ModelTime(ctx)
	if err != nil {
		return domain.Sample{}, fmt.Errorf("model time: %w", err)
	}

	values := []domain.Value{}
	if len(r.columns) > 0 {
		values, err = reader.Values(ctx, r.columns)
		if err != nil {
			return domain.Sample{}, fmt.Errorf("record sample: %w", err)
		}
		if len(values) != len(r.columns) {
			return domain.Sample{}, fmt.Errorf("record sample: engine returned %d values for %d columns", len(values), len(r.columns))
		}
	}
	return domain.Sample{ModelTime: mt, Values: values}, nil
}

// Header returns the header row: the time column followed by each variable,
// rendered as "name [unit]".
func Header(columns []domain.Variable) []string {
	row := make([]string, 0, len(columns)+1)
	row = append(row, headerCell(TimeColumn))
	for _, c := range columns {
		row = append(row, headerCell(c))
	}
	return row
}

func headerCell(v domain.Variable) string {
	if v.Unit == "" {
		return v.Name
	}
	return fmt.Sprintf("%s [%s]", v.Name, v.Unit)
}

// WriteCSV writes the header and one row per sample, in the given order.
func WriteCSV(w io.Writer, columns []domain.Variable, samples []domain.Sample) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Header(columns)); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	row := make([]string, len(columns)+1)
	for i, s := range samples {
		if len(s.Values) != len(columns) {
			return fmt.Errorf("sample %d has %d values, want %d", i, len(s.Values), len(columns))
		}
		row[0] = domain.FormatValue(s.Seconds())
		for j, v := range s.Values {
			row[j+1] = domain.FormatValue(v)
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// Export fully rewrites path with the run log. It writes to a temporary file
// in the same directory and renames it, so readers never see a partial file.
func Export(path string, columns []domain.Variable, samples []domain.Sample) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to ensure output directory: %w", err)
	}

	tmpFile, err := os.CreateTemp(dir, "tmp-"+filepath.Base(path)+"-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
	}()

	if err := WriteCSV(tmpFile, columns, samples); err != nil {
		return err
	}
	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("failed to fsync temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to rename output file: %w", err)
	}
	return nil
}

// ExportRun writes a run's log to path.
func ExportRun(path string, run *domain.Run) error {
	return Export(path, run.Columns, run.Samples)
}
