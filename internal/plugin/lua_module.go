package plugin

import (
	"bytes"
	"sync"

	"github.com/cockroachdb/errors"
	lua "github.com/yuin/gopher-lua"

	"github.com/archium/archium/pkg/plugin"
)

// luaGlobals maps exported symbol names to the Lua globals implementing them.
var luaGlobals = map[string]string{
	plugin.SymbolGetName:        "get_name",
	plugin.SymbolGetCommand:     "get_command",
	plugin.SymbolGetDescription: "get_description",
	plugin.SymbolExecute:        "execute",
	plugin.SymbolGetAPIVersion:  "get_api_version",
	plugin.SymbolInit:           "init",
	plugin.SymbolBeforeCommand:  "before_command",
	plugin.SymbolAfterCommand:   "after_command",
	plugin.SymbolOnExit:         "on_exit",
	plugin.SymbolCleanup:        "cleanup",
}

// luaModule runs a Lua script plugin in its own interpreter state.
//
// LState is not goroutine-safe; every call into the state holds mu.
type luaModule struct {
	mu     sync.Mutex
	path   string
	L      *lua.LState
	closed bool
}

// OpenLuaModule loads a Lua script plugin. The state gets the base, table,
// string and math libraries only, plus an "archium" table holding the API
// version and every shared error code by name.
//
//nolint:ireturn // Opener signature
func OpenLuaModule(path string) (Module, error) {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})

	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	L.SetGlobal("archium", archiumTable(L))

	if err := doWithRecovery(func() error { return L.DoFile(path) }); err != nil {
		L.Close()

		return nil, errors.Wrap(err, "failed to load Lua plugin")
	}

	return &luaModule{path: path, L: L}, nil
}

func archiumTable(L *lua.LState) *lua.LTable {
	tbl := L.NewTable()
	tbl.RawSetString("api_version", lua.LNumber(plugin.APIVersion))

	for _, code := range plugin.KnownErrorCodes() {
		tbl.RawSetString(code.String(), lua.LNumber(code))
	}

	return tbl
}

// Path returns the script path.
func (m *luaModule) Path() string {
	return m.path
}

// Lookup returns a Go function of the exported signature for symbol, backed
// by the matching Lua global. A global that is not a function is returned
// as is, so type checks reject it.
func (m *luaModule) Lookup(symbol string) (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil, ErrModuleClosed
	}

	global, ok := luaGlobals[symbol]
	if !ok {
		return nil, errors.Wrapf(ErrSymbolNotFound, "%s", symbol)
	}

	fn := m.L.GetGlobal(global)
	if fn == lua.LNil {
		return nil, errors.Wrapf(ErrSymbolNotFound, "%s (Lua global %s)", symbol, global)
	}

	if fn.Type() != lua.LTFunction {
		return fn, nil
	}

	return m.bind(symbol, fn), nil
}

//nolint:cyclop // one case per entry point
func (m *luaModule) bind(symbol string, fn lua.LValue) any {
	switch symbol {
	case plugin.SymbolGetName, plugin.SymbolGetCommand, plugin.SymbolGetDescription:
		return func() string {
			ret := m.call(fn)
			if ret == lua.LNil {
				return ""
			}

			return lua.LVAsString(ret)
		}
	case plugin.SymbolExecute:
		return func(args, packageManager string) plugin.ErrorCode {
			return toErrorCode(m.call(fn, lua.LString(args), lua.LString(packageManager)))
		}
	case plugin.SymbolGetAPIVersion:
		return func() int {
			return int(lua.LVAsNumber(m.call(fn)))
		}
	case plugin.SymbolInit, plugin.SymbolOnExit:
		return func(ctx *plugin.Context) {
			m.callWithContext(fn, ctx)
		}
	case plugin.SymbolBeforeCommand:
		return func(ctx *plugin.Context) plugin.ErrorCode {
			return toErrorCode(m.callWithContext(fn, ctx))
		}
	case plugin.SymbolAfterCommand:
		return func(ctx *plugin.Context, result plugin.ErrorCode) {
			m.callWithContext(fn, ctx, lua.LNumber(result))
		}
	default:
		return func() {
			m.call(fn)
		}
	}
}

// call invokes fn and returns its first result. Lua errors panic; callers
// run entry points under recovery.
func (m *luaModule) call(fn lua.LValue, args ...lua.LValue) lua.LValue {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		panic(ErrModuleClosed)
	}

	err := m.L.CallByParam(lua.P{Fn: fn, NRet: 1, Protect: true}, args...)
	if err != nil {
		panic(errors.Wrapf(err, "lua error in %s", m.path))
	}

	ret := m.L.Get(-1)
	m.L.Pop(1)

	return ret
}

func (m *luaModule) callWithContext(fn lua.LValue, ctx *plugin.Context, extra ...lua.LValue) lua.LValue {
	m.mu.Lock()
	tbl := contextTable(m.L, ctx)
	m.mu.Unlock()

	return m.call(fn, append([]lua.LValue{tbl}, extra...)...)
}

// contextTable exposes ctx to Lua. Callbacks are plain functions:
// ctx.log_info(msg), ctx.log_error(msg, code), ctx.run_command(cmd) returning
// status and output.
func contextTable(L *lua.LState, ctx *plugin.Context) *lua.LTable {
	tbl := L.NewTable()

	if ctx == nil {
		return tbl
	}

	tbl.RawSetString("package_manager", lua.LString(ctx.PackageManager))
	tbl.RawSetString("command", lua.LString(ctx.Command))
	tbl.RawSetString("args", lua.LString(ctx.Args))
	tbl.RawSetString("verbose", lua.LBool(ctx.Verbose))
	tbl.RawSetString("config_dir", lua.LString(ctx.ConfigDir))
	tbl.RawSetString("plugin_dir", lua.LString(ctx.PluginDir))
	tbl.RawSetString("cache_dir", lua.LString(ctx.CacheDir))

	logFn := func(log func(string)) *lua.LFunction {
		return L.NewFunction(func(L *lua.LState) int {
			log(L.CheckString(1))

			return 0
		})
	}

	tbl.RawSetString("log_info", logFn(ctx.Info))
	tbl.RawSetString("log_debug", logFn(ctx.Debug))
	tbl.RawSetString("log_action", logFn(ctx.Action))
	tbl.RawSetString("log_error", L.NewFunction(func(L *lua.LState) int {
		ctx.Error(L.CheckString(1), plugin.ErrorCode(L.OptInt(2, int(plugin.ErrorCodePlugin))))

		return 0
	}))
	tbl.RawSetString("run_command", L.NewFunction(func(L *lua.LState) int {
		var out bytes.Buffer

		status := ctx.Run(L.CheckString(1), &out)
		L.Push(lua.LNumber(status))
		L.Push(lua.LString(out.String()))

		return 2
	}))

	return tbl
}

// toErrorCode converts a Lua result to an ErrorCode. Non-numeric results,
// including no result at all, mean success.
func toErrorCode(v lua.LValue) plugin.ErrorCode {
	if n, ok := v.(lua.LNumber); ok {
		return plugin.ErrorCode(int(n))
	}

	return plugin.ErrorCodeSuccess
}

// Close closes the interpreter state. Further calls are no-ops.
func (m *luaModule) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil
	}

	m.L.Close()
	m.closed = true

	return nil
}

// doWithRecovery executes a function with panic recovery.
func doWithRecovery(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Newf("lua panic: %v", r)
		}
	}()

	return fn()
}
