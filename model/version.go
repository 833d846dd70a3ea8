// Package model holds the data types shared between packages.
package model

import "fmt"

// VersionInfo is stamped in at build time through -ldflags.
type VersionInfo struct {
	Version string
	Commit  string
	Date    string
}

func (v VersionInfo) String() string {
	return fmt.Sprintf("instance-port-report version %s\ncommit: %s\nbuilt at: %s\n", v.Version, v.Commit, v.Date)
}
