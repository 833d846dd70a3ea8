// Package summarytable renders the port exposure results as console tables.
package summarytable

import (
	"fmt"
	"os"
	"strings"

	"github.com/OpenSecOps-Org/Foundation-instance-port-report/model"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Section statuses, as grouped in the HTML table of contents.
const (
	StatusInvestigate = "To Investigate"
	StatusNoRemarks   = "No Remarks"
)

// DrawSummaryTable renders one row per account/region report.
func DrawSummaryTable(input model.RenderReportInput) {
	if len(input.Reports) == 0 {
		fmt.Println("\n" + text.FgGreen.Sprint("✅ No EC2 instances found in the scanned accounts and regions"))
		return
	}

	risky := 0
	for _, r := range input.Reports {
		if input.Risky[r.Anchor()] {
			risky++
		}
	}

	fmt.Println("\n🔒 EC2 Port Exposure")
	fmt.Printf("   %s %s\n",
		text.FgRed.Sprintf("🔴 %d %s", risky, StatusInvestigate),
		text.FgGreen.Sprintf("🟢 %d %s", len(input.Reports)-risky, StatusNoRemarks))

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Account", "Region", "Instances", "Exposed", "Public IPs", "No Security Group", "Security Groups", "Open to 0.0.0.0/0", "Status"})

	for _, r := range input.Reports {
		c := Count(r)
		t.AppendRow(table.Row{
			fmt.Sprintf("%s\n%s", r.AccountName, r.AccountID),
			r.Region,
			c.Instances,
			c.Exposed,
			c.PublicIPs,
			c.Ungrouped,
			c.SecurityGroups,
			c.OpenGroups,
			formatStatus(input.Risky[r.Anchor()]),
		})
	}

	t.SetStyle(table.StyleRounded)
	t.Render()
}

// Counts are the per-report figures of the summary table.
type Counts struct {
	Instances      int
	Exposed        int // public IP or no security group
	PublicIPs      int
	Ungrouped      int
	SecurityGroups int
	OpenGroups     int
}

// Count computes the summary figures of r.
func Count(r model.AccountRegionReport) Counts {
	c := Counts{
		Instances:      len(r.Instances),
		SecurityGroups: len(r.SecurityGroups),
	}

	for _, inst := range r.Instances {
		if !inst.Exposed() {
			continue
		}
		c.Exposed++
		if inst.PublicIP != "" {
			c.PublicIPs++
		}
		if len(inst.SecurityGroupIDs) == 0 {
			c.Ungrouped++
		}
	}

	for _, sg := range r.SecurityGroups {
		if openToAnywhere(sg) {
			c.OpenGroups++
		}
	}

	return c
}

func openToAnywhere(sg model.SecurityGroupRecord) bool {
	for _, perm := range sg.IPPermissions {
		for _, r := range perm.IPRanges {
			if r.CidrIP == model.CIDRAnywhere {
				return true
			}
		}
	}
	return false
}

func formatStatus(risky bool) string {
	if risky {
		return text.FgRed.Sprint(StatusInvestigate)
	}
	return text.FgGreen.Sprint(StatusNoRemarks)
}

// DrawSkipped prints the pairs that hold no instance.
func DrawSkipped(skipped []model.ScanTarget) {
	if len(skipped) == 0 {
		return
	}

	fmt.Println()
	for _, target := range skipped {
		fmt.Println(text.FgHiBlack.Sprintf("Account %s has no EC2 instances in %s.", target.Account.ID, target.Region))
	}
}

// DrawFailures renders the pairs that could not be scanned.
func DrawFailures(failures []model.ScanFailure) {
	if len(failures) == 0 {
		return
	}

	fmt.Println("\n" + text.FgYellow.Sprintf("⚠️  %d account/region scans failed", len(failures)))

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Account", "Region", "Error"})

	for _, f := range failures {
		t.AppendRow(table.Row{
			f.Target.Account.ID,
			f.Target.Region,
			truncate(f.Err.Error(), 80),
		})
	}

	t.SetStyle(table.StyleRounded)
	t.Render()
}

// DrawAccountsTable renders the organization accounts.
func DrawAccountsTable(accounts []model.Account) {
	fmt.Printf("\n🏢 %d active accounts\n", len(accounts))

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Account", "Name", "Email"})

	for _, a := range accounts {
		t.AppendRow(table.Row{a.ID, a.Name, a.Email})
	}

	t.SetStyle(table.StyleRounded)
	t.Render()
}

// DrawRegions prints the resolved regions, one per line.
func DrawRegions(regions []string) {
	fmt.Printf("\n🌍 %d regions\n", len(regions))
	fmt.Println("   " + strings.Join(regions, "\n   "))
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
