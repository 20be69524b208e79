package errors

import (
	"fmt"

	"github.com/railwayapp/cli/ui"
)

type RailwayError error

var (
	NoLinkedProject RailwayError = fmt.Errorf("%s\nRun %s to connect this directory to a project on Railway.", ui.RedText("No linked project found."), ui.Bold("railway link"))
	ProjectNotFound RailwayError = fmt.Errorf("%s\nRun %s to connect this directory to a project on Railway.", ui.RedText("Project not found."), ui.Bold("railway link"))
	NotLoggedIn     RailwayError = fmt.Errorf("%s\nRun %s or set the RAILWAY_API_TOKEN environment variable.", ui.RedText("Not logged in."), ui.Bold("railway login"))
	LoginInCI       RailwayError = fmt.Errorf("%s\nSet the RAILWAY_API_TOKEN environment variable instead.", ui.RedText("Cannot login interactively in CI."))
)
