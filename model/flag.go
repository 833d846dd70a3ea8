package model

// Flags represents the command line flags.
type Flags struct {
	Profile     string
	Region      string
	Regions     []string
	AllRegions  bool
	OrgScan     bool
	OrgRoleName string
	ExternalID  string
	AccountIDs  []string
	AccountName string
	MaxParallel int
	BestEffort  bool
	Version     bool
	Output      string
	OutputFile  string
	Recipient   string
	TicketID    string
	Signee      string
	NoEmail     bool
	ConfigPath  string
	Input       string
}
