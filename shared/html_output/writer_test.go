package htmloutput

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportPath(t *testing.T) {
	now := time.Date(2024, 3, 5, 14, 7, 9, 0, time.UTC)
	assert.Equal(t, filepath.Join("reports", "instance-port-report_2024-03-05_14-07-09.html"), reportPath(now))
}

func TestWriteHTMLReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "report.html")

	written, err := WriteHTMLReport(path, "<html></html>")
	require.NoError(t, err)
	assert.Equal(t, path, written)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<html></html>", string(data))
}
