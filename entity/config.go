package entity

import "time"

// LinkedProject binds a local directory to a remote project. The directory
// path doubles as the map key in RailwayConfig, so there is at most one
// link per directory.
type LinkedProject struct {
	ProjectPath     string  `json:"projectPath"`
	Name            *string `json:"name,omitempty"`
	Project         string  `json:"project"`
	Environment     string  `json:"environment"`
	EnvironmentName *string `json:"environmentName,omitempty"`
	Service         *string `json:"service,omitempty"`
}

type RailwayUser struct {
	Token *string `json:"token,omitempty"`
}

// RailwayConfig is the entire persisted document. It is read and written
// as a whole; there are no partial-field updates on disk.
type RailwayConfig struct {
	Projects            map[string]*LinkedProject `json:"projects"`
	User                RailwayUser               `json:"user"`
	LastUpdateCheck     *time.Time                `json:"lastUpdateCheck,omitempty"`
	NewVersionAvailable *string                   `json:"newVersionAvailable,omitempty"`
}
