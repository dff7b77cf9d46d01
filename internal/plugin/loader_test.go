package plugin_test

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/archium/archium/internal/plugin"
	"github.com/archium/archium/pkg/logger"
	api "github.com/archium/archium/pkg/plugin"
)

var _ = Describe("Loader", func() {
	var (
		dir    string
		fd     *fakeDir
		reg    *plugin.Registry
		loader *plugin.Loader
	)

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
		fd = newFakeDir(dir)
		reg = plugin.NewRegistry()
		loader = plugin.NewLoader(&plugin.ContextBuilder{}, plugin.WithOpeners(fd.openers()))
	})

	Describe("Extensions", func() {
		It("lists the default suffixes", func() {
			l := plugin.NewLoader(&plugin.ContextBuilder{})
			Expect(l.Extensions()).To(Equal([]string{plugin.ExtLua, plugin.ExtGoPlugin}))
		})

		It("drops Lua when disabled", func() {
			l := plugin.NewLoader(&plugin.ContextBuilder{}, plugin.WithOpeners(plugin.DefaultOpeners(false)))
			Expect(l.Extensions()).To(Equal([]string{plugin.ExtGoPlugin}))
		})
	})

	Context("when the directory is missing", func() {
		It("loads nothing", func() {
			Expect(loader.Load(reg, filepath.Join(dir, "missing"))).To(Succeed())
			Expect(reg.Len()).To(Equal(0))
		})
	})

	Context("when the directory is empty", func() {
		It("loads nothing", func() {
			Expect(loader.Load(reg, dir)).To(Succeed())
			Expect(reg.Len()).To(Equal(0))
			Expect(fd.opened).To(BeEmpty())
		})
	})

	It("admits a valid module", func() {
		fd.add("hello.so", validSymbols("hello"))

		Expect(loader.Load(reg, dir)).To(Succeed())
		Expect(reg.Len()).To(Equal(1))

		rec := reg.Get(0)
		Expect(rec.Name).To(Equal("Hello Plugin"))
		Expect(rec.Command).To(Equal("hello"))
		Expect(rec.Description).To(Equal("A hello world plugin"))
		Expect(rec.Path()).To(Equal(filepath.Join(dir, "hello.so")))
		Expect(rec.APIVersion).To(Equal(0))
		Expect(rec.Hooks()).To(BeEmpty())
	})

	DescribeTable("rejects modules missing a required symbol",
		func(symbol string) {
			symbols := validSymbols("hello")
			delete(symbols, symbol)

			mod := fd.add("hello.so", symbols)

			Expect(loader.Load(reg, dir)).To(Succeed())
			Expect(reg.Len()).To(Equal(0))
			Expect(mod.closed).To(Equal(1))
		},
		Entry("GetName", api.SymbolGetName),
		Entry("GetCommand", api.SymbolGetCommand),
		Entry("GetDescription", api.SymbolGetDescription),
		Entry("Execute", api.SymbolExecute),
	)

	It("resolves every required symbol before calling a getter", func() {
		called := false

		symbols := validSymbols("hello")
		symbols[api.SymbolGetName] = func() string {
			called = true

			return "Hello Plugin"
		}
		delete(symbols, api.SymbolExecute)

		fd.add("hello.so", symbols)

		Expect(loader.Load(reg, dir)).To(Succeed())
		Expect(called).To(BeFalse())
	})

	It("accepts exported variables holding entry points", func() {
		getName := func() string { return "Var Plugin" }
		getCommand := func() string { return "var" }
		getDescription := func() string { return "Exports variables" }
		execute := func(string, string) api.ErrorCode { return api.ErrorCodeSuccess }

		fd.add("var.so", map[string]any{
			api.SymbolGetName:        &getName,
			api.SymbolGetCommand:     &getCommand,
			api.SymbolGetDescription: &getDescription,
			api.SymbolExecute:        &execute,
		})

		Expect(loader.Load(reg, dir)).To(Succeed())
		Expect(reg.IsPluginCommand("var")).To(BeTrue())
	})

	DescribeTable("rejects malformed metadata",
		func(symbol string, value string) {
			symbols := validSymbols("hello")
			symbols[symbol] = func() string { return value }

			mod := fd.add("bad.so", symbols)

			Expect(loader.Load(reg, dir)).To(Succeed())
			Expect(reg.Len()).To(Equal(0))
			Expect(mod.closed).To(Equal(1))
		},
		Entry("empty name", api.SymbolGetName, ""),
		Entry("empty command", api.SymbolGetCommand, ""),
		Entry("empty description", api.SymbolGetDescription, ""),
		Entry("name at the bound", api.SymbolGetName, strings.Repeat("n", api.MaxNameLength)),
		Entry("command at the bound", api.SymbolGetCommand, strings.Repeat("c", api.MaxCommandLength)),
		Entry("description at the bound", api.SymbolGetDescription, strings.Repeat("d", api.MaxDescriptionLength)),
	)

	It("accepts metadata one byte under the bound", func() {
		symbols := validSymbols(strings.Repeat("c", api.MaxCommandLength-1))
		symbols[api.SymbolGetName] = func() string { return strings.Repeat("n", api.MaxNameLength-1) }
		symbols[api.SymbolGetDescription] = func() string {
			return strings.Repeat("d", api.MaxDescriptionLength-1)
		}

		fd.add("long.so", symbols)

		Expect(loader.Load(reg, dir)).To(Succeed())
		Expect(reg.Len()).To(Equal(1))
	})

	It("rejects a required symbol with the wrong signature", func() {
		symbols := validSymbols("hello")
		symbols[api.SymbolGetName] = func() int { return 1 }

		mod := fd.add("typed.so", symbols)

		Expect(loader.Load(reg, dir)).To(Succeed())
		Expect(reg.Len()).To(Equal(0))
		Expect(mod.closed).To(Equal(1))
	})

	It("rejects an optional symbol with the wrong signature", func() {
		symbols := validSymbols("hello")
		symbols[api.SymbolBeforeCommand] = func() {}

		mod := fd.add("typed.so", symbols)

		Expect(loader.Load(reg, dir)).To(Succeed())
		Expect(reg.Len()).To(Equal(0))
		Expect(mod.closed).To(Equal(1))
	})

	It("rejects modules whose getter panics", func() {
		symbols := validSymbols("hello")
		symbols[api.SymbolGetDescription] = func() string { panic("boom") }

		mod := fd.add("panic.so", symbols)

		Expect(loader.Load(reg, dir)).To(Succeed())
		Expect(reg.Len()).To(Equal(0))
		Expect(mod.closed).To(Equal(1))
	})

	It("admits exactly one module per command", func() {
		a := fd.add("a.so", validSymbols("dup"))
		b := fd.add("b.so", validSymbols("dup"))

		Expect(loader.Load(reg, dir)).To(Succeed())
		Expect(reg.Len()).To(Equal(1))
		Expect(a.closed + b.closed).To(Equal(1))
		Expect(reg.Get(0).Module.(*fakeModule).closed).To(Equal(0))
	})

	It("stops once the registry is full", func() {
		for i := range 40 {
			fd.add(fmt.Sprintf("p%02d.so", i), validSymbols(fmt.Sprintf("cmd%02d", i)))
		}

		Expect(loader.Load(reg, dir)).To(Succeed())
		Expect(reg.Len()).To(Equal(plugin.MaxPlugins))
		Expect(fd.opened).To(HaveLen(plugin.MaxPlugins))
	})

	It("only opens regular files with an accepted suffix", func() {
		fd.add("hello.so", validSymbols("hello"))
		Expect(os.WriteFile(filepath.Join(dir, "README.md"), []byte("docs"), 0o600)).To(Succeed())
		Expect(os.WriteFile(filepath.Join(dir, "hello.so.bak"), []byte("old"), 0o600)).To(Succeed())
		Expect(os.Mkdir(filepath.Join(dir, "nested.so"), 0o700)).To(Succeed())

		Expect(loader.Load(reg, dir)).To(Succeed())
		Expect(fd.opened).To(ConsistOf("hello.so"))
		Expect(reg.Len()).To(Equal(1))
	})

	It("skips files matching an ignore pattern", func() {
		fd.add("hello.so", validSymbols("hello"))
		fd.add("disabled-world.so", validSymbols("world"))

		loader = plugin.NewLoader(&plugin.ContextBuilder{},
			plugin.WithOpeners(fd.openers()),
			plugin.WithIgnore([]string{"disabled-*"}),
		)

		Expect(loader.Load(reg, dir)).To(Succeed())
		Expect(fd.opened).To(ConsistOf("hello.so"))
		Expect(reg.IsPluginCommand("world")).To(BeFalse())
	})

	It("loads nothing when no opener is configured", func() {
		fd.add("hello.so", validSymbols("hello"))
		Expect(os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o600)).To(Succeed())

		loader = plugin.NewLoader(&plugin.ContextBuilder{}, plugin.WithOpeners(map[string]plugin.Opener{}))

		Expect(loader.Extensions()).To(BeEmpty())
		Expect(func() { Expect(loader.Load(reg, dir)).To(Succeed()) }).NotTo(Panic())
		Expect(reg.Len()).To(Equal(0))
		Expect(fd.opened).To(BeEmpty())
	})

	It("skips suffixes whose opener is nil", func() {
		fd.add("hello.so", validSymbols("hello"))

		loader = plugin.NewLoader(&plugin.ContextBuilder{},
			plugin.WithOpeners(map[string]plugin.Opener{plugin.ExtGoPlugin: nil}))

		Expect(func() { Expect(loader.Load(reg, dir)).To(Succeed()) }).NotTo(Panic())
		Expect(reg.Len()).To(Equal(0))
	})

	It("skips files that fail to open and continues", func() {
		Expect(os.WriteFile(filepath.Join(dir, "broken.so"), []byte("junk"), 0o600)).To(Succeed())
		fd.add("hello.so", validSymbols("hello"))

		Expect(loader.Load(reg, dir)).To(Succeed())
		Expect(fd.opened).To(ConsistOf("broken.so", "hello.so"))
		Expect(reg.Len()).To(Equal(1))
	})

	It("calls Init once with an empty invocation context", func() {
		var contexts []*api.Context

		symbols := validSymbols("hello")
		symbols[api.SymbolInit] = func(ctx *api.Context) { contexts = append(contexts, ctx) }

		fd.add("hello.so", symbols)

		loader = plugin.NewLoader(&plugin.ContextBuilder{PluginDir: dir}, plugin.WithOpeners(fd.openers()))

		Expect(loader.Load(reg, dir)).To(Succeed())
		Expect(contexts).To(HaveLen(1))
		Expect(contexts[0].Command).To(BeEmpty())
		Expect(contexts[0].Args).To(BeEmpty())
		Expect(contexts[0].PackageManager).To(BeEmpty())
		Expect(contexts[0].PluginDir).To(Equal(dir))
	})

	It("keeps a module whose Init panics", func() {
		symbols := validSymbols("hello")
		symbols[api.SymbolInit] = func(*api.Context) { panic("init failed") }

		fd.add("hello.so", symbols)

		Expect(loader.Load(reg, dir)).To(Succeed())
		Expect(reg.Len()).To(Equal(1))
	})

	It("records the API version and logs legacy plugins", func() {
		var buf bytes.Buffer

		symbols := validSymbols("old")
		symbols[api.SymbolGetAPIVersion] = func() int { return 1 }

		fd.add("old.so", symbols)

		loader = plugin.NewLoader(&plugin.ContextBuilder{},
			plugin.WithOpeners(fd.openers()),
			plugin.WithLoaderLogger(logger.NewFileLoggerWithWriter(&buf, logger.LevelDebug)),
		)

		Expect(loader.Load(reg, dir)).To(Succeed())
		Expect(reg.Get(0).APIVersion).To(Equal(1))
		Expect(reg.Get(0).IsLegacy()).To(BeTrue())
		Expect(buf.String()).To(ContainSubstring("loaded plugin"))
		Expect(buf.String()).To(ContainSubstring("legacy API version"))
	})

	It("closes a rejected module exactly once", func() {
		ctrl := gomock.NewController(GinkgoT())

		Expect(os.WriteFile(filepath.Join(dir, "mock.so"), []byte("module"), 0o600)).To(Succeed())

		mod := plugin.NewMockModule(ctrl)
		mod.EXPECT().Lookup(api.SymbolGetName).
			Return(nil, errors.Wrap(plugin.ErrSymbolNotFound, api.SymbolGetName))
		mod.EXPECT().Close().Return(nil).Times(1)

		loader = plugin.NewLoader(&plugin.ContextBuilder{}, plugin.WithOpeners(map[string]plugin.Opener{
			plugin.ExtGoPlugin: func(string) (plugin.Module, error) { return mod, nil },
		}))

		Expect(loader.Load(reg, dir)).To(Succeed())
		Expect(reg.Len()).To(Equal(0))
	})
})
