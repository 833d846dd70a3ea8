package htmloutput

import (
	"html"
	"strconv"
	"strings"
)

// RedMarker is the inline style of every finding cell. The table of contents
// groups sections by whether they contain it.
const RedMarker = "color:red"

const (
	redStyle    = ` style="` + RedMarker + `"`
	centerStyle = ` style='text-align:center'`
)

// markup accumulates HTML and remembers whether a finding cell was written.
type markup struct {
	b       strings.Builder
	flagged bool
}

func (m *markup) raw(s string) {
	m.b.WriteString(s)
}

// text writes s escaped.
func (m *markup) text(s string) {
	m.b.WriteString(html.EscapeString(s))
}

func (m *markup) cell(s string) {
	m.raw("<td>")
	m.text(s)
	m.raw("</td>")
}

func (m *markup) redCell(s string) {
	m.flagged = true
	m.raw("<td" + redStyle + ">")
	m.text(s)
	m.raw("</td>")
}

// flagCell writes a red cell when flagged, a plain one otherwise.
func (m *markup) flagCell(s string, flagged bool) {
	if flagged {
		m.redCell(s)
		return
	}
	m.cell(s)
}

func (m *markup) spanCell(rowspan int, s string) {
	m.raw(`<td rowspan="` + strconv.Itoa(rowspan) + `">`)
	m.text(s)
	m.raw("</td>")
}

// centeredRow writes a row whose single cell spans the four detail columns.
func (m *markup) centeredRow(s string) {
	m.raw(`<tr><td colspan="4"` + centerStyle + `>`)
	m.text(s)
	m.raw("</td></tr>")
}

func (m *markup) String() string {
	return m.b.String()
}

// ContainsRedFlag reports whether rendered markup holds a finding cell.
func ContainsRedFlag(s string) bool {
	return strings.Contains(s, RedMarker)
}
