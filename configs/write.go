package configs

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// Write persists the whole document atomically: serialize to a sibling
// .tmp file, sync it, then rename onto the final path. The rename is
// atomic on the same volume, so a reader sees either the old document or
// the new one, never a torn file. In-memory state stays valid when this
// fails; the failure only means durability was not achieved.
func (c *Configs) Write() error {
	if err := os.MkdirAll(filepath.Dir(c.rootConfigPath), 0o755); err != nil {
		return errors.Wrap(err, "unable to create config directory")
	}

	tmpPath := strings.TrimSuffix(c.rootConfigPath, filepath.Ext(c.rootConfigPath)) + ".tmp"
	file, err := os.OpenFile(tmpPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return errors.Wrap(err, "unable to open temporary config file")
	}

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(c.RootConfig); err != nil {
		file.Close()
		return errors.Wrap(err, "unable to serialize config")
	}
	if err := file.Sync(); err != nil {
		file.Close()
		return errors.Wrap(err, "unable to sync temporary config file")
	}
	if err := file.Close(); err != nil {
		return errors.Wrap(err, "unable to close temporary config file")
	}

	return errors.Wrap(os.Rename(tmpPath, c.rootConfigPath), "unable to replace config file")
}
