// Package htmloutput renders the port exposure report as an HTML document.
package htmloutput

import (
	"fmt"
	"strings"

	"github.com/OpenSecOps-Org/Foundation-instance-port-report/model"
	"github.com/OpenSecOps-Org/Foundation-instance-port-report/service/aggregator"
)

// DefaultSubject is the subject of the rendered document.
const DefaultSubject = "Periodic Report on EC2 Port Exposure"

const documentStyle = "<style>" +
	"table, th, td {border: 1px solid grey; border-collapse: collapse;}\n" +
	"th, td {padding: 3px;}\n" +
	"</style>"

// Options configures the renderer.
type Options struct {
	Subject string
	Signee  string
}

// Renderer composes the report document.
type Renderer struct {
	opts Options
}

// Section is the rendered markup of one account/region report.
type Section struct {
	AccountID   string
	AccountName string
	Region      string
	Anchor      string
	Markup      string
	Risky       bool
}

// Rendered is a complete document together with its sections.
type Rendered struct {
	Document model.Document
	Sections []Section
}

// NewRenderer creates a renderer.
func NewRenderer(opts Options) *Renderer {
	if opts.Subject == "" {
		opts.Subject = DefaultSubject
	}
	return &Renderer{opts: opts}
}

// Render builds the document for reports, in the given order. The table of
// contents is substituted once the whole body exists because it is derived
// from the rendered sections.
func (r *Renderer) Render(reports []model.AccountRegionReport) Rendered {
	var body strings.Builder
	body.WriteString("<html><head>" + documentStyle + "</head><body>")
	body.WriteString("<h1" + centerStyle + ">" + escape(r.opts.Subject) + "</h1>")
	body.WriteString("<h4" + centerStyle + ">from " + escape(r.opts.Signee) + "</h4>")
	body.WriteString("<p" + centerStyle + ">" + model.TicketPlaceholder + "</p>")
	body.WriteString("<div>" + TOCPlaceholder + "</div>")

	sections := make([]Section, 0, len(reports))
	for _, report := range reports {
		section := r.RenderSection(report)
		sections = append(sections, section)
		body.WriteString(section.Markup)
	}

	body.WriteString("</body></html>")

	return Rendered{
		Document: model.Document{
			Subject: r.opts.Subject,
			Body:    strings.Replace(body.String(), TOCPlaceholder, BuildTOC(sections), 1),
		},
		Sections: sections,
	}
}

// RenderSection renders the self-contained section of one report.
func (r *Renderer) RenderSection(report model.AccountRegionReport) Section {
	var m markup
	anchor := report.Anchor()

	m.raw(`<div id="`)
	m.text(anchor)
	m.raw(`" class="AccountRegion">`)
	m.raw("<hr>")
	m.raw("<h2" + centerStyle + ">")
	m.text(report.AccountID + ", " + report.AccountName)
	m.raw("</h2>")
	m.raw("<h3" + centerStyle + ">")
	m.text(report.Region)
	m.raw("</h3>")

	writeInstances(&m, report)
	m.raw("<br><br>")
	writeSecurityGroups(&m, report)

	m.raw("</div>")

	return Section{
		AccountID:   report.AccountID,
		AccountName: report.AccountName,
		Region:      report.Region,
		Anchor:      anchor,
		Markup:      m.String(),
		Risky:       m.flagged,
	}
}

func writeInstances(m *markup, report model.AccountRegionReport) {
	m.raw(`<div class="Instances">`)
	m.raw("<h3>Instances</h3>")
	m.raw(`<table style="width:100%">`)
	m.raw("<tr><th>Id</th><th>Name</th><th>Private IP</th><th>Public IP</th><th>Security Groups</th></tr>")
	for _, inst := range report.Instances {
		writeInstance(m, report, inst)
	}
	m.raw("</table></div>")
}

func writeInstance(m *markup, report model.AccountRegionReport, inst model.InstanceRecord) {
	m.raw("<tr>")
	m.cell(inst.ID)
	m.cell(inst.Name)
	m.cell(inst.PrivateIP)
	m.flagCell(inst.PublicIP, inst.PublicIP != "")

	if len(inst.SecurityGroupIDs) == 0 {
		m.redCell("NONE")
	} else {
		names := make([]string, 0, len(inst.SecurityGroupIDs))
		for _, id := range inst.SecurityGroupIDs {
			names = append(names, escape(groupLabel(report, id)))
		}
		m.raw("<td>" + strings.Join(names, ",<br>") + "</td>")
	}

	m.raw("</tr>")
}

// groupLabel is the name of a security group, its id when unnamed.
func groupLabel(report model.AccountRegionReport, id string) string {
	if sg, ok := report.SecurityGroup(id); ok && sg.Name != "" {
		return sg.Name
	}
	return id
}

func writeSecurityGroups(m *markup, report model.AccountRegionReport) {
	m.raw(`<div class="SecurityGroups">`)
	m.raw("<h3>Security Group Ingress Rules</h3>")
	for _, sg := range aggregator.SortSecurityGroups(report.SecurityGroups) {
		writeSecurityGroup(m, sg, len(report.Instances))
	}
	m.raw("</div>")
}

func writeSecurityGroup(m *markup, sg model.SecurityGroupRecord, totalInstances int) {
	m.raw(`<div class="SecurityGroup">`)
	m.raw(`<table style="width:100%">`)
	m.raw("<tr><th>Id</th><th>Proto</th><th>Ports</th><th>IP Ranges</th><th>Description</th></tr>")

	m.raw("<tr>")
	m.spanCell(RowSpan(sg), sg.ID)
	m.raw(`<td colspan="4"` + centerStyle + `>`)
	m.text(sg.Name)
	m.raw("</td></tr>")

	if sg.Description != "" {
		m.centeredRow(sg.Description)
	}

	if len(sg.InstanceIDs) > 0 {
		m.centeredRow(usageText(sg.InstanceIDs, totalInstances))
	}

	if len(sg.IPPermissions) == 0 {
		m.raw(`<tr><td colspan="5"><i>Permissions: None</i></td></tr>`)
	}
	for _, perm := range aggregator.SortPermissions(sg.IPPermissions) {
		writePermission(m, ClassifyPermission(perm))
	}

	m.raw("</table></div><br><br>")
}

func usageText(instanceIDs []string, totalInstances int) string {
	if len(instanceIDs) == totalInstances {
		return "Used by all instances"
	}
	noun := "instances"
	if len(instanceIDs) == 1 {
		noun = "instance"
	}
	return fmt.Sprintf("Used by %d %s: %s", len(instanceIDs), noun, strings.Join(instanceIDs, ", "))
}

func writePermission(m *markup, layout PermissionLayout) {
	switch layout.Category {
	case CategoryInternalOnly:
		m.raw("<tr>")
		m.cell(layout.Protocol)
		m.cell(layout.Ports)
		m.raw(`<td colspan="2"><i>IP-less internal</i></td>`)
		m.raw("</tr>")
	case CategoryNoRanges:
		m.flagged = true
		m.raw("<tr>")
		m.cell(layout.Protocol)
		m.cell(layout.Ports)
		m.raw(`<td colspan="2"` + redStyle + `>No IP ranges</td>`)
		m.raw("</tr>")
	default:
		for i, row := range layout.Rows {
			m.raw("<tr>")
			if i == 0 {
				m.spanCell(layout.RowSpan, layout.Protocol)
				m.spanCell(layout.RowSpan, layout.Ports)
			}
			m.flagCell(row.CIDR, row.Flagged)
			m.cell(row.Description)
			m.raw("</tr>")
		}
	}
}

func escape(s string) string {
	var m markup
	m.text(s)
	return m.String()
}
