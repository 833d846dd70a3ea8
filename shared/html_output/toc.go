package htmloutput

import "strings"

// TOCPlaceholder marks where the table of contents goes in the document.
const TOCPlaceholder = "<TOC_PLACEHOLDER>"

// BuildTOC lists sections with findings under "To Investigate" and the rest
// under "No Remarks". A group with no sections is left out.
func BuildTOC(sections []Section) string {
	var risky, clean []string
	for _, s := range sections {
		if s.Risky {
			risky = append(risky, sectionLink(s))
		} else {
			clean = append(clean, sectionLink(s))
		}
	}

	var b strings.Builder
	b.WriteString("<h2>Table of Contents</h2>")
	if len(risky) > 0 {
		b.WriteString("<div><h3>To Investigate</h3><ul>")
		for _, link := range risky {
			b.WriteString("<li>" + link + "</li>")
		}
		b.WriteString("</ul></div>")
	}
	if len(clean) > 0 {
		b.WriteString("<div><h3>No Remarks</h3>")
		b.WriteString(strings.Join(clean, "&nbsp;&nbsp;&nbsp;&nbsp;"))
		b.WriteString("</div>")
	}
	return b.String()
}

func sectionLink(s Section) string {
	return `<a style="white-space:nowrap" href="#` + escape(s.Anchor) + `">` +
		escape(s.AccountID+" ("+s.AccountName+") "+s.Region) + "</a>"
}
