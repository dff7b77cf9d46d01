package config

import (
	"os"

	"github.com/cockroachdb/errors"

	"github.com/archium/archium/pkg/config"
)

// MigrateLegacyParu converts the legacy marker file (whose presence meant
// "use paru") into package_manager = "paru" and removes the marker.
// It reports whether a migration happened. An empty marker path is a no-op.
func MigrateLegacyParu(w *Writer, marker string) (bool, error) {
	if marker == "" {
		return false, nil
	}

	if _, err := os.Stat(marker); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}

		return false, errors.Wrapf(err, "failed to stat %s", marker)
	}

	if err := w.Set("package_manager", config.PackageManagerParu); err != nil {
		return false, errors.Wrap(err, "failed to migrate legacy paru preference")
	}

	if err := os.Remove(marker); err != nil {
		return true, errors.Wrapf(err, "failed to remove %s", marker)
	}

	return true, nil
}
