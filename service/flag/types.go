package flag

import "github.com/OpenSecOps-Org/Foundation-instance-port-report/model"

// Output formats.
const (
	OutputTable = "table"
	OutputJSON  = "json"
	OutputHTML  = "html"
)

type service struct {
	profile     *string
	region      *string
	regions     *string
	allRegions  *bool
	orgScan     *bool
	orgRoleName *string
	externalID  *string
	accountIDs  *[]string
	accountName *string
	maxParallel *int
	bestEffort  *bool
	version     *bool
	output      *string
	outputFile  *string
	recipient   *string
	ticketID    *string
	signee      *string
	noEmail     *bool
	configPath  *string
}

// Service is the interface for CLI flag service.
type Service interface {
	GetParsedFlags() (model.Flags, error)
}
