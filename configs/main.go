package configs

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/railwayapp/cli/entity"
	"github.com/railwayapp/cli/ui"
)

// LoadOutcome records which path construction took, so callers and tests
// can tell a fresh document from a regenerated one without scraping stderr.
type LoadOutcome int

const (
	// ConfigLoaded means the on-disk document parsed and is used verbatim.
	ConfigLoaded LoadOutcome = iota
	// ConfigAbsent means no file existed; an empty document was synthesized.
	ConfigAbsent
	// ConfigRegenerated means the file existed but could not be used; an
	// empty document was synthesized and the file is left untouched until
	// the next Write.
	ConfigRegenerated
)

// Configs owns the in-memory RailwayConfig and the path of its backing
// file. One instance per command invocation; mutations stay in memory
// until Write is called.
type Configs struct {
	RootConfig       *entity.RailwayConfig
	LoadOutcome      LoadOutcome
	RegenerateReason error

	rootConfigPath   string
	envs             *Envs
	workingDirectory func() (string, error)
	stdoutIsTerminal func() bool
	fetchRelease     ReleaseFetcher
}

// New loads the config document for the selected environment, or
// synthesizes an empty one. The only fatal condition is an unresolvable
// home directory; a missing or corrupt file never blocks the CLI.
func New() (*Configs, error) {
	return NewWithEnvs(LoadEnvs())
}

func NewWithEnvs(envs *Envs) (*Configs, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, errors.Wrap(err, "unable to get home directory")
	}
	return newFromPath(rootConfigPath(home, envs.Environment()), envs), nil
}

// rootConfigPath returns <home>/.railway/config<suffix>.json. The suffix
// keeps production, staging and dev installs from sharing state.
func rootConfigPath(home string, environment Environment) string {
	name := "config.json"
	switch environment {
	case Staging:
		name = "config-staging.json"
	case Dev:
		name = "config-dev.json"
	}
	return filepath.Join(home, ".railway", name)
}

func newFromPath(path string, envs *Envs) *Configs {
	c := &Configs{
		rootConfigPath:   path,
		envs:             envs,
		workingDirectory: os.Getwd,
		stdoutIsTerminal: ui.SupportsANSICodes,
		fetchRelease:     fetchLatestRelease,
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		c.RootConfig = emptyRootConfig()
		if os.IsNotExist(err) {
			c.LoadOutcome = ConfigAbsent
		} else {
			ui.Warn("Unable to read config file, regenerating")
			c.LoadOutcome = ConfigRegenerated
			c.RegenerateReason = err
		}
		return c
	}

	var root entity.RailwayConfig
	if err := json.Unmarshal(raw, &root); err != nil {
		ui.Warn("Unable to parse config file, regenerating")
		c.RootConfig = emptyRootConfig()
		c.LoadOutcome = ConfigRegenerated
		c.RegenerateReason = err
		return c
	}

	if root.Projects == nil {
		root.Projects = make(map[string]*entity.LinkedProject)
	}
	c.RootConfig = &root
	c.LoadOutcome = ConfigLoaded
	return c
}

func emptyRootConfig() *entity.RailwayConfig {
	return &entity.RailwayConfig{
		Projects: make(map[string]*entity.LinkedProject),
		User:     entity.RailwayUser{},
	}
}

// Reset replaces the in-memory document with an empty one. Used by logout.
// The change is not durable until Write.
func (c *Configs) Reset() {
	c.RootConfig = emptyRootConfig()
}
