package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/knadh/koanf/v2"
	"github.com/pelletier/go-toml/v2"

	"github.com/archium/archium/pkg/config"
)

const (
	// ConfigFileMode is the file mode for configuration files (user read/write only).
	ConfigFileMode = 0o600

	// ConfigDirMode is the file mode for configuration directories (user rwx only).
	ConfigDirMode = 0o700
)

// ErrUnknownKey is returned by Set for keys outside the schema.
var ErrUnknownKey = errors.New("unknown configuration key")

// keyKind describes how Set parses a value.
type keyKind int

const (
	kindString keyKind = iota
	kindBool
	kindList
)

// settableKeys maps every key accepted by Set to its value kind.
var settableKeys = map[string]keyKind{
	"verbose":           kindBool,
	"package_manager":   kindString,
	"json_output":       kindBool,
	"batch_mode":        kindBool,
	"plugins.enabled":   kindBool,
	"plugins.directory": kindString,
	"plugins.ignore":    kindList,
	"plugins.lua":       kindBool,
}

// IsSettableKey reports whether key can be changed with Set.
func IsSettableKey(key string) bool {
	_, ok := settableKeys[key]

	return ok
}

// Writer handles writing configuration to TOML files.
type Writer struct {
	loader *Loader
}

// NewWriter creates a new Writer for the loader's config file.
func NewWriter(loader *Loader) *Writer {
	return &Writer{loader: loader}
}

// Set changes one key in the config file, leaving every other key as written.
// The result is validated before it is written.
func (w *Writer) Set(key, value string) error {
	kind, ok := settableKeys[key]
	if !ok {
		return errors.Wrapf(ErrUnknownKey, "%q", key)
	}

	k, err := w.loader.LoadFileOnly()
	if err != nil {
		return err
	}

	parsed, err := parseValue(kind, value)
	if err != nil {
		return errors.Wrapf(ErrInvalidOption, "%s: %v", key, err)
	}

	if err := k.Set(key, parsed); err != nil {
		return errors.Wrapf(err, "failed to set %s", key)
	}

	var cfg config.Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return errors.Wrap(err, "failed to unmarshal config")
	}

	if err := Validate(&cfg); err != nil {
		return err
	}

	return w.WriteFile(w.loader.ConfigFile(), &cfg)
}

// WriteFile writes cfg to path atomically: the TOML is written to a temporary
// file in the same directory and renamed over path.
func (*Writer) WriteFile(path string, cfg *config.Config) error {
	if cfg == nil {
		return errors.Wrap(ErrInvalidConfig, "config is nil")
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, ConfigDirMode); err != nil {
		return errors.Wrapf(err, "failed to create directory %s", dir)
	}

	var buf bytes.Buffer

	encoder := toml.NewEncoder(&buf)
	encoder.SetIndentTables(true)

	if err := encoder.Encode(cfg); err != nil {
		return errors.Wrap(err, "failed to encode config to TOML")
	}

	tmp, err := os.CreateTemp(dir, ".config-*.toml")
	if err != nil {
		return errors.Wrap(err, "failed to create temporary config file")
	}

	tmpPath := tmp.Name()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmpPath)

		return errors.Wrapf(err, "failed to write %s", tmpPath)
	}

	if err := tmp.Chmod(ConfigFileMode); err != nil {
		tmp.Close()
		os.Remove(tmpPath)

		return errors.Wrapf(err, "failed to chmod %s", tmpPath)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)

		return errors.Wrapf(err, "failed to close %s", tmpPath)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)

		return errors.Wrapf(err, "failed to write config file %s", path)
	}

	return nil
}

func parseValue(kind keyKind, value string) (any, error) {
	switch kind {
	case kindBool:
		return strconv.ParseBool(value)
	case kindList:
		return splitList(value), nil
	default:
		return value, nil
	}
}
