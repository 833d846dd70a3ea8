package htmloutput

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// DefaultReportDir is the default directory for HTML reports
const DefaultReportDir = "reports"

// GenerateReportPath generates a report path with datetime in the reports folder
func GenerateReportPath() string {
	return reportPath(time.Now())
}

func reportPath(now time.Time) string {
	timestamp := now.Format("2006-01-02_15-04-05")
	return filepath.Join(DefaultReportDir, fmt.Sprintf("instance-port-report_%s.html", timestamp))
}

// WriteHTMLReport writes the document body to outputPath, or to a timestamped
// file under the reports folder when outputPath is empty. It returns the
// path written.
func WriteHTMLReport(outputPath string, doc string) (string, error) {
	if outputPath == "" {
		outputPath = GenerateReportPath()
	}

	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("failed to create reports directory: %w", err)
		}
	}

	if err := os.WriteFile(outputPath, []byte(doc), 0644); err != nil {
		return "", fmt.Errorf("failed to write HTML file: %w", err)
	}

	return outputPath, nil
}
