package flag

import (
	"fmt"
	"strings"

	"github.com/OpenSecOps-Org/Foundation-instance-port-report/model"
	"github.com/OpenSecOps-Org/Foundation-instance-port-report/service/regions"
	"github.com/spf13/pflag"
)

// NewService registers the report flags on fs. Values are read by
// GetParsedFlags once fs has been parsed.
func NewService(fs *pflag.FlagSet) Service {
	return &service{
		profile:     fs.StringP("profile", "p", "", "AWS profile to use"),
		region:      fs.StringP("region", "r", "", "AWS region to use"),
		regions:     fs.String("regions", "", "Regions to scan, comma-separated or a list such as ['eu-north-1', 'eu-west-2']"),
		allRegions:  fs.Bool("all-regions", false, "Scan all enabled AWS regions"),
		orgScan:     fs.Bool("org-scan", false, "Scan all active organization accounts (management account required)"),
		orgRoleName: fs.String("org-role-name", "", "Role assumed in member accounts (default OrganizationAccountAccessRole)"),
		externalID:  fs.String("external-id", "", "External ID for the member account role"),
		accountIDs:  fs.StringSlice("account-id", nil, "Only scan these account IDs"),
		accountName: fs.String("account-name", "", "Display name of the current account outside --org-scan"),
		maxParallel: fs.Int("max-parallel", 0, "Maximum concurrent region scans (default 3)"),
		bestEffort:  fs.Bool("best-effort", false, "Continue when an account or region cannot be scanned"),
		version:     fs.BoolP("version", "v", false, "Show version information"),
		output:      fs.StringP("output", "o", OutputTable, "Output format (table, json, or html)"),
		outputFile:  fs.StringP("output-file", "f", "", "Output file path (html defaults to reports/instance-port-report_<time>.html)"),
		recipient:   fs.String("recipient", "", "Comma-separated report recipients"),
		ticketID:    fs.String("ticket-id", "", "Ticket reference shown at the top of the emailed report"),
		signee:      fs.String("signee", "", "Sender shown below the report title"),
		noEmail:     fs.Bool("no-email", false, "Do not send the report by email"),
		configPath:  fs.String("config-path", "", "Path to a YAML settings file"),
	}
}

// GetParsedFlags returns the parsed command-line flags.
func (s *service) GetParsedFlags() (model.Flags, error) {
	output := strings.ToLower(strings.TrimSpace(*s.output))
	switch output {
	case OutputTable, OutputJSON, OutputHTML:
	default:
		return model.Flags{}, fmt.Errorf("invalid output format %q (table, json, or html)", *s.output)
	}

	if *s.maxParallel < 0 {
		return model.Flags{}, fmt.Errorf("--max-parallel must not be negative")
	}

	parsedRegions, err := regions.Parse(*s.regions)
	if err != nil {
		return model.Flags{}, fmt.Errorf("--regions: %w", err)
	}

	var accountIDs []string
	for _, id := range *s.accountIDs {
		if id = strings.TrimSpace(id); id != "" {
			accountIDs = append(accountIDs, id)
		}
	}

	flags := model.Flags{
		Profile:     *s.profile,
		Region:      *s.region,
		Regions:     parsedRegions,
		AllRegions:  *s.allRegions,
		OrgScan:     *s.orgScan,
		OrgRoleName: *s.orgRoleName,
		ExternalID:  *s.externalID,
		AccountIDs:  accountIDs,
		AccountName: *s.accountName,
		MaxParallel: *s.maxParallel,
		BestEffort:  *s.bestEffort,
		Version:     *s.version,
		Output:      output,
		OutputFile:  *s.outputFile,
		Recipient:   *s.recipient,
		TicketID:    *s.ticketID,
		Signee:      *s.signee,
		NoEmail:     *s.noEmail,
		ConfigPath:  *s.configPath,
	}

	return flags, nil
}
