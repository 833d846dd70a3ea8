// Package jsonoutput exports scan results as JSON and reads them back.
package jsonoutput

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/OpenSecOps-Org/Foundation-instance-port-report/model"
)

// BuildScanExport builds the JSON export of a run.
func BuildScanExport(input model.RenderReportInput, generatedAt string) model.ScanExportJSON {
	reports := input.Reports
	if reports == nil {
		reports = []model.AccountRegionReport{}
	}

	export := model.ScanExportJSON{
		GeneratedAt: generatedAt,
		Reports:     reports,
		Skipped:     input.Skipped,
	}
	for _, f := range input.Failures {
		export.Failures = append(export.Failures, model.ScanFailureJSON{
			AccountID: f.Target.Account.ID,
			Region:    f.Target.Region,
			Error:     f.Err.Error(),
		})
	}
	return export
}

// OutputScanJSON writes the export of input to stdout, or to
// input.OutputFile when set.
func OutputScanJSON(input model.RenderReportInput) error {
	export := BuildScanExport(input, time.Now().UTC().Format(time.RFC3339))

	if input.OutputFile == "" {
		return WriteJSON(os.Stdout, export)
	}

	if dir := filepath.Dir(input.OutputFile); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if err := writeJSONFile(input.OutputFile, export); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "📄 JSON report saved to: %s\n", input.OutputFile)
	return nil
}

// writeJSONFile writes v to path, returning the close error when the write
// succeeded.
func writeJSONFile(path string, v any) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create JSON file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close JSON file: %w", cerr)
		}
	}()

	return WriteJSON(f, v)
}

// WriteJSON writes v as indented JSON.
func WriteJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := fmt.Fprintln(w, string(data)); err != nil {
		return fmt.Errorf("failed to write JSON: %w", err)
	}
	return nil
}

// ReadScanExport reads an export written by OutputScanJSON.
func ReadScanExport(r io.Reader) (model.ScanExportJSON, error) {
	var export model.ScanExportJSON
	if err := json.NewDecoder(r).Decode(&export); err != nil {
		return model.ScanExportJSON{}, fmt.Errorf("failed to decode scan export: %w", err)
	}
	return export, nil
}

// ReadScanExportFile reads an export from path.
func ReadScanExportFile(path string) (model.ScanExportJSON, error) {
	f, err := os.Open(path)
	if err != nil {
		return model.ScanExportJSON{}, fmt.Errorf("failed to open scan export: %w", err)
	}
	defer f.Close()

	return ReadScanExport(f)
}
