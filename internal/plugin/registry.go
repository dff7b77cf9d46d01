package plugin

import (
	"strings"
	"unicode"

	"github.com/cockroachdb/errors"

	"github.com/archium/archium/pkg/plugin"
)

// MaxPlugins is the registry capacity.
const MaxPlugins = 32

// Record is one admitted plugin. Records are immutable once registered;
// optional entry points are nil when the plugin does not provide them.
type Record struct {
	Name        string
	Command     string
	Description string

	// APIVersion is the reported API version, or 0 when the plugin does not
	// export GetAPIVersion.
	APIVersion int

	Module Module

	Execute       plugin.ExecuteFunc
	Init          plugin.InitFunc
	BeforeCommand plugin.BeforeCommandFunc
	AfterCommand  plugin.AfterCommandFunc
	OnExit        plugin.OnExitFunc
	Cleanup       plugin.CleanupFunc
}

// Path returns the file the plugin was loaded from.
func (r *Record) Path() string {
	if r.Module == nil {
		return ""
	}

	return r.Module.Path()
}

// IsLegacy reports whether the plugin declared an API version older than
// plugin.APIVersion.
func (r *Record) IsLegacy() bool {
	return r.APIVersion != 0 && r.APIVersion < plugin.APIVersion
}

// Registry is the bounded, ordered set of admitted plugins.
// Records keep registration order, which is also hook dispatch order.
type Registry struct {
	records []*Record
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{records: make([]*Record, 0, MaxPlugins)}
}

// Add appends rec. It fails when the registry is full or the command is
// already taken; the first registrant keeps the command.
func (r *Registry) Add(rec *Record) error {
	if r.IsFull() {
		return ErrRegistryFull
	}

	if r.FindByCommand(rec.Command) != -1 {
		return errors.Wrapf(ErrDuplicateCommand, "%q", rec.Command)
	}

	r.records = append(r.records, rec)

	return nil
}

// FindByCommand returns the index of the record whose command equals
// command exactly, or -1.
func (r *Registry) FindByCommand(command string) int {
	if command == "" {
		return -1
	}

	for i, rec := range r.records {
		if rec.Command == command {
			return i
		}
	}

	return -1
}

// Get returns the record at index i, or nil when out of range.
func (r *Registry) Get(i int) *Record {
	if i < 0 || i >= len(r.records) {
		return nil
	}

	return r.records[i]
}

// IsPluginCommand reports whether the first token of input is a
// registered command.
func (r *Registry) IsPluginCommand(input string) bool {
	return r.FindByCommand(CommandToken(input)) != -1
}

// Len returns the number of records.
func (r *Registry) Len() int {
	return len(r.records)
}

// IsFull reports whether the registry holds MaxPlugins records.
func (r *Registry) IsFull() bool {
	return len(r.records) >= MaxPlugins
}

// Records returns a copy of the records in registration order.
func (r *Registry) Records() []*Record {
	out := make([]*Record, len(r.records))
	copy(out, r.records)

	return out
}

// reset empties the registry. Only the unloader calls it.
func (r *Registry) reset() {
	clear(r.records)
	r.records = r.records[:0]
}

// CommandToken extracts the command token from a typed line: leading
// whitespace is skipped, the token ends at the next whitespace, and tokens
// longer than plugin.MaxCommandLength-1 bytes are truncated.
func CommandToken(input string) string {
	input = strings.TrimLeftFunc(input, unicode.IsSpace)

	if end := strings.IndexFunc(input, unicode.IsSpace); end != -1 {
		input = input[:end]
	}

	if len(input) > plugin.MaxCommandLength-1 {
		input = input[:plugin.MaxCommandLength-1]
	}

	return input
}
