package model

// Account is an AWS account taking part in the audit.
type Account struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	ARN   string `json:"arn,omitempty"`
}

// ScanTarget identifies one account×region pair.
type ScanTarget struct {
	Account Account `json:"account"`
	Region  string  `json:"region"`
}

// ScanFailure is a pair that could not be scanned.
type ScanFailure struct {
	Target ScanTarget
	Err    error
}

// RegionInventory is the raw instance listing of one account/region.
type RegionInventory struct {
	AccountID   string
	AccountName string
	Region      string
	Instances   []RawInstance
}

// RawInstance is an instance as described by the EC2 API.
type RawInstance struct {
	ID                string
	Tags              []Tag
	SecurityGroupRefs []SecurityGroupRef
	PrivateIP         *string
	PublicIP          *string
}

// Tag is a resource tag.
type Tag struct {
	Key   string
	Value string
}

// SecurityGroupRef is a security group attached to an instance.
type SecurityGroupRef struct {
	ID   string
	Name string
}

// SecurityGroupDetail is the part of a security group description the report
// needs. IPPermissions are in API order.
type SecurityGroupDetail struct {
	Description   *string
	IPPermissions []PermissionRecord
}
