package constants

// Version is overridden at build time via
// -ldflags "-X github.com/railwayapp/cli/constants.Version=vX.Y.Z"
var Version = "source"

// Coordinates of the GitHub repository whose releases the update check polls.
const (
	ReleaseOwner = "railwayapp"
	ReleaseRepo  = "cli"
)

const RailwayDocsURL = "https://docs.railway.com"

var ProjectURLMap = map[string]string{
	"project":   "https://railway.com/project/%s",
	"settings":  "https://railway.com/project/%s/settings",
	"dashboard": "https://railway.com/dashboard",
}
