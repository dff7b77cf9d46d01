package plugin

import (
	"fmt"

	"github.com/cockroachdb/errors"

	"github.com/archium/archium/pkg/plugin"
)

// protect runs fn and turns a panic into an error wrapping ErrPluginPanic.
// Entry points run without a timeout; a plugin that blocks stalls the caller.
func protect(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Wrap(ErrPluginPanic, SanitizePanicMessage(fmt.Sprint(r)))
		}
	}()

	fn()

	return nil
}

// BeforeCommand runs every before-command hook in registration order. The
// first non-success result stops the sequence and is returned; a panicking
// hook counts as ErrorCodePlugin.
func (m *Manager) BeforeCommand(command, args, packageManager string) plugin.ErrorCode {
	m.mu.Lock()
	defer m.mu.Unlock()

	ctx := m.contexts.Fill(command, args, packageManager)

	for _, rec := range m.registry.records {
		if rec.BeforeCommand == nil {
			continue
		}

		result := plugin.ErrorCodeSuccess
		c := *ctx

		if err := protect(func() { result = rec.BeforeCommand(&c) }); err != nil {
			m.log.Error("before-command hook panicked", "plugin", rec.Command, "error", err)

			result = plugin.ErrorCodePlugin
		}

		if !result.IsSuccess() {
			m.log.Debug("command vetoed by plugin",
				"plugin", rec.Command,
				"command", command,
				"code", result.String(),
			)

			return result
		}
	}

	return plugin.ErrorCodeSuccess
}

// AfterCommand notifies every after-command hook of result. All hooks run.
// Each hook gets its own copy of the context, so changes made by one plugin
// are not seen by the next.
func (m *Manager) AfterCommand(command, args, packageManager string, result plugin.ErrorCode) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ctx := m.contexts.Fill(command, args, packageManager)

	for _, rec := range m.registry.records {
		if rec.AfterCommand == nil {
			continue
		}

		c := *ctx

		if err := protect(func() { rec.AfterCommand(&c, result) }); err != nil {
			m.log.Error("after-command hook panicked", "plugin", rec.Command, "error", err)
		}
	}
}

// NotifyExit calls every on-exit hook. It runs before modules are released.
func (m *Manager) NotifyExit(command, args, packageManager string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ctx := m.contexts.Fill(command, args, packageManager)

	for _, rec := range m.registry.records {
		if rec.OnExit == nil {
			continue
		}

		c := *ctx

		if err := protect(func() { rec.OnExit(&c) }); err != nil {
			m.log.Error("on-exit hook panicked", "plugin", rec.Command, "error", err)
		}
	}
}
