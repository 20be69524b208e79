package configs

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Environment int

const (
	Production Environment = iota
	Staging
	Dev
)

// Envs is a snapshot of the environment variables the CLI consumes, taken
// once at startup. Resolution functions operate on the snapshot instead of
// reading the process environment ad hoc, so they stay deterministic and
// testable.
type Envs struct {
	RailwayEnv      string
	RailwayToken    string
	RailwayAPIToken string
	CI              string
}

func LoadEnvs() *Envs {
	v := viper.New()
	bind := func(key, env string) string {
		v.SetDefault(key, "")
		// explicit name: viper's key casing must not leak into the lookup
		_ = v.BindEnv(key, env)
		return v.GetString(key)
	}
	return &Envs{
		RailwayEnv:      bind("railway_env", "RAILWAY_ENV"),
		RailwayToken:    bind("railway_token", "RAILWAY_TOKEN"),
		RailwayAPIToken: bind("railway_api_token", "RAILWAY_API_TOKEN"),
		CI:              bind("ci", "CI"),
	}
}

// Environment maps RAILWAY_ENV to a release channel. dev and develop are
// synonyms; anything unrecognized, including unset, is Production.
func (e *Envs) Environment() Environment {
	switch strings.ToLower(e.RailwayEnv) {
	case "staging":
		return Staging
	case "dev", "develop":
		return Dev
	default:
		return Production
	}
}

func (c *Configs) GetHost() string {
	switch c.envs.Environment() {
	case Staging:
		return "railway-staging.com"
	case Dev:
		return "railway-develop.com"
	default:
		return "railway.com"
	}
}

func (c *Configs) GetBackboard() string {
	return fmt.Sprintf("https://backboard.%s/graphql/v2", c.GetHost())
}

// GetRelayHostPath returns the relay host and path without a protocol so
// callers can prefix https:// or wss:// as needed.
func (c *Configs) GetRelayHostPath() string {
	return fmt.Sprintf("backboard.%s/relay", c.GetHost())
}
