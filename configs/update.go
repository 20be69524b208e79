package configs

import (
	"context"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/google/go-github/github"
	"github.com/pkg/errors"
	"github.com/railwayapp/cli/constants"
)

// ReleaseFetcher returns the tag name of the latest published release.
type ReleaseFetcher func(ctx context.Context) (string, error)

func fetchLatestRelease(ctx context.Context) (string, error) {
	client := github.NewClient(nil)
	release, _, err := client.Repositories.GetLatestRelease(ctx, constants.ReleaseOwner, constants.ReleaseRepo)
	if err != nil {
		return "", err
	}
	return release.GetTagName(), nil
}

// CheckUpdate fetches the latest release tag and returns it if it is
// strictly newer than the running binary, throttled to once per calendar
// day. It is skipped entirely when stdout is not a terminal, so update
// banners never corrupt piped or CI output. force overrides both skips.
//
// The throttle timestamp is stamped and persisted before the fetch result
// is inspected; a failed fetch still counts as checked today, which keeps
// a flaky network from turning every invocation into a retry.
func (c *Configs) CheckUpdate(ctx context.Context, force bool) (string, error) {
	if !c.stdoutIsTerminal() && !force {
		return "", nil
	}

	if last := c.RootConfig.LastUpdateCheck; last != nil && !force {
		if sameDate(*last, time.Now()) {
			return "", nil
		}
	}

	tag, fetchErr := c.fetchRelease(ctx)

	now := time.Now().UTC()
	c.RootConfig.LastUpdateCheck = &now
	if err := c.Write(); err != nil {
		return "", errors.Wrap(err, "unable to save time of last update check")
	}

	if fetchErr != nil {
		return "", errors.Wrap(fetchErr, "unable to fetch latest release")
	}

	latest, newer := NewerVersion(constants.Version, tag)
	if !newer {
		return "", nil
	}
	return latest, nil
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}

// NewerVersion reports the fetched version when it is strictly newer than
// current under semantic-version ordering. Unparseable versions (such as
// the "source" placeholder of an uninstalled dev build) report nothing.
func NewerVersion(current, fetched string) (string, bool) {
	fetched = strings.TrimPrefix(fetched, "v")
	currentVersion, err := semver.NewVersion(strings.TrimPrefix(current, "v"))
	if err != nil {
		return "", false
	}
	fetchedVersion, err := semver.NewVersion(fetched)
	if err != nil {
		return "", false
	}
	if fetchedVersion.GreaterThan(currentVersion) {
		return fetched, true
	}
	return "", false
}
