package plugin_test

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/archium/archium/internal/plugin"
	api "github.com/archium/archium/pkg/plugin"
)

var _ = Describe("Manager", func() {
	var (
		dir string
		fd  *fakeDir
		m   *plugin.Manager
	)

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
		fd = newFakeDir(dir)
		m = plugin.NewManager(
			plugin.WithDir(dir),
			plugin.WithLoaderOptions(plugin.WithOpeners(fd.openers())),
		)
	})

	Describe("Init", func() {
		It("marks resolver failures as ErrConfigUnavailable", func() {
			m = plugin.NewManager(plugin.WithDirResolver(func() (string, error) {
				return "", errors.New("no home")
			}))

			err := m.Init()
			Expect(err).To(HaveOccurred())
			Expect(errors.Is(err, plugin.ErrConfigUnavailable)).To(BeTrue())
			Expect(m.Len()).To(Equal(0))
		})

		It("succeeds with zero plugins when the directory is missing", func() {
			m = plugin.NewManager(plugin.WithDir(filepath.Join(dir, "nope")))

			Expect(m.Init()).To(Succeed())
			Expect(m.Len()).To(Equal(0))
			Expect(m.Dir()).To(Equal(filepath.Join(dir, "nope")))
		})

		It("fails without a configured directory", func() {
			err := plugin.NewManager().Init()
			Expect(errors.Is(err, plugin.ErrConfigUnavailable)).To(BeTrue())
		})
	})

	Describe("Execute", func() {
		It("round-trips the hello plugin", func() {
			var gotArgs, gotPM string

			symbols := validSymbols("hello")
			symbols[api.SymbolExecute] = func(args, pm string) api.ErrorCode {
				gotArgs, gotPM = args, pm

				return api.ErrorCodeSuccess
			}

			fd.add("hello.so", symbols)

			Expect(m.Init()).To(Succeed())
			Expect(m.Len()).To(Equal(1))
			Expect(m.IsPluginCommand("hello")).To(BeTrue())
			Expect(m.IsPluginCommand("  hello world")).To(BeTrue())
			Expect(m.Execute("hello", "world", "yay")).To(Equal(api.ErrorCodeSuccess))
			Expect(gotArgs).To(Equal("world"))
			Expect(gotPM).To(Equal("yay"))
		})

		It("returns the plugin's result unchanged", func() {
			symbols := validSymbols("fail")
			symbols[api.SymbolExecute] = func(string, string) api.ErrorCode { return api.ErrorCode(-123) }

			fd.add("fail.so", symbols)

			Expect(m.Init()).To(Succeed())
			Expect(m.Execute("fail", "", "paru")).To(Equal(api.ErrorCode(-123)))
		})

		It("rejects unknown commands", func() {
			Expect(m.Init()).To(Succeed())
			Expect(m.Execute("nope", "", "yay")).To(Equal(api.ErrorCodeInvalidInput))
			Expect(m.Execute("", "", "yay")).To(Equal(api.ErrorCodeInvalidInput))
		})

		It("contains a panicking plugin", func() {
			symbols := validSymbols("boom")
			symbols[api.SymbolExecute] = func(string, string) api.ErrorCode { panic("boom") }

			fd.add("boom.so", symbols)

			Expect(m.Init()).To(Succeed())
			Expect(m.Execute("boom", "", "yay")).To(Equal(api.ErrorCodePlugin))
		})
	})

	Describe("hooks", func() {
		var calls []string

		hooked := func(name string, before api.ErrorCode) map[string]any {
			symbols := validSymbols(name)
			symbols[api.SymbolBeforeCommand] = func(*api.Context) api.ErrorCode {
				calls = append(calls, "before:"+name)

				return before
			}
			symbols[api.SymbolAfterCommand] = func(_ *api.Context, result api.ErrorCode) {
				calls = append(calls, fmt.Sprintf("after:%s:%d", name, result))
			}
			symbols[api.SymbolOnExit] = func(*api.Context) {
				calls = append(calls, "exit:"+name)
			}

			return symbols
		}

		BeforeEach(func() {
			calls = nil
		})

		countPrefix := func(prefix string) int {
			n := 0

			for _, c := range calls {
				if len(c) >= len(prefix) && c[:len(prefix)] == prefix {
					n++
				}
			}

			return n
		}

		It("returns success when every before hook allows the command", func() {
			for i := range 3 {
				fd.add(fmt.Sprintf("p%d.so", i), hooked(fmt.Sprintf("p%d", i), api.ErrorCodeSuccess))
			}

			Expect(m.Init()).To(Succeed())
			Expect(m.BeforeCommand("u", "", "yay")).To(Equal(api.ErrorCodeSuccess))
			Expect(countPrefix("before:")).To(Equal(3))
		})

		It("stops at the first veto", func() {
			fd.add("a.so", hooked("a", api.ErrorCodeSuccess))
			fd.add("b.so", hooked("b", api.ErrorCodePermission))
			fd.add("c.so", hooked("c", api.ErrorCodeSuccess))

			Expect(m.Init()).To(Succeed())

			result := m.BeforeCommand("u", "", "yay")
			Expect(result).To(Equal(api.ErrorCodePermission))

			// Registration order follows directory order; the veto is always
			// the last hook that ran.
			Expect(calls).NotTo(BeEmpty())
			Expect(calls[len(calls)-1]).To(Equal("before:b"))

			var order []string
			for _, rec := range m.Records() {
				order = append(order, "before:"+rec.Command)
			}

			Expect(calls).To(Equal(order[:len(calls)]))
		})

		It("treats a panicking before hook as a plugin error veto", func() {
			symbols := validSymbols("boom")
			symbols[api.SymbolBeforeCommand] = func(*api.Context) api.ErrorCode { panic("boom") }

			fd.add("boom.so", symbols)

			Expect(m.Init()).To(Succeed())
			Expect(m.BeforeCommand("u", "", "yay")).To(Equal(api.ErrorCodePlugin))
		})

		It("passes the invocation to before hooks", func() {
			var seen *api.Context

			symbols := validSymbols("spy")
			symbols[api.SymbolBeforeCommand] = func(ctx *api.Context) api.ErrorCode {
				seen = ctx

				return api.ErrorCodeSuccess
			}

			fd.add("spy.so", symbols)

			Expect(m.Init()).To(Succeed())
			m.BeforeCommand("i", "firefox", "paru")

			Expect(seen).NotTo(BeNil())
			Expect(seen.Command).To(Equal("i"))
			Expect(seen.Args).To(Equal("firefox"))
			Expect(seen.PackageManager).To(Equal("paru"))
			Expect(seen.PluginDir).To(Equal(dir))
		})

		It("runs every after hook with the result", func() {
			fd.add("a.so", hooked("a", api.ErrorCodeSuccess))
			fd.add("b.so", hooked("b", api.ErrorCodeSuccess))

			Expect(m.Init()).To(Succeed())
			m.AfterCommand("u", "", "yay", api.ErrorCodePackageNotFound)

			Expect(calls).To(ConsistOf(
				fmt.Sprintf("after:a:%d", api.ErrorCodePackageNotFound),
				fmt.Sprintf("after:b:%d", api.ErrorCodePackageNotFound),
			))
		})

		It("keeps running after hooks when one panics", func() {
			symbols := validSymbols("boom")
			symbols[api.SymbolAfterCommand] = func(*api.Context, api.ErrorCode) { panic("boom") }

			fd.add("boom.so", symbols)
			fd.add("a.so", hooked("a", api.ErrorCodeSuccess))

			Expect(m.Init()).To(Succeed())
			Expect(func() { m.AfterCommand("u", "", "yay", api.ErrorCodeSuccess) }).NotTo(Panic())
			Expect(countPrefix("after:a")).To(Equal(1))
		})

		It("notifies every exit hook", func() {
			fd.add("a.so", hooked("a", api.ErrorCodeSuccess))
			fd.add("b.so", hooked("b", api.ErrorCodeSuccess))

			Expect(m.Init()).To(Succeed())
			m.NotifyExit("", "", "yay")

			Expect(calls).To(ConsistOf("exit:a", "exit:b"))
		})

		It("does nothing without plugins", func() {
			Expect(m.Init()).To(Succeed())
			Expect(m.BeforeCommand("u", "", "yay")).To(Equal(api.ErrorCodeSuccess))
			m.AfterCommand("u", "", "yay", api.ErrorCodeSuccess)
			m.NotifyExit("", "", "yay")
			Expect(calls).To(BeEmpty())
		})

		It("gives every hook its own context", func() {
			type view struct {
				command, args string
				hasLogInfo    bool
			}

			var views []view

			tamper := func(ctx *api.Context) {
				views = append(views, view{ctx.Command, ctx.Args, ctx.LogInfo != nil})
				ctx.Command = "hijacked"
				ctx.Args = "rm -rf"
				ctx.LogInfo = nil
			}

			for _, name := range []string{"a", "b"} {
				symbols := validSymbols(name)
				symbols[api.SymbolBeforeCommand] = func(ctx *api.Context) api.ErrorCode {
					tamper(ctx)

					return api.ErrorCodeSuccess
				}
				symbols[api.SymbolAfterCommand] = func(ctx *api.Context, _ api.ErrorCode) { tamper(ctx) }
				symbols[api.SymbolOnExit] = func(ctx *api.Context) { tamper(ctx) }

				fd.add(name+".so", symbols)
			}

			Expect(m.Init()).To(Succeed())
			Expect(m.BeforeCommand("r", "vim", "yay")).To(Equal(api.ErrorCodeSuccess))
			m.AfterCommand("r", "vim", "yay", api.ErrorCodeSuccess)
			m.NotifyExit("r", "vim", "yay")

			Expect(views).To(HaveLen(6))
			Expect(views).To(HaveEach(view{"r", "vim", true}))
		})
	})

	Describe("shutdown during a hook", func() {
		It("waits for the running hook before exit hooks and cleanup", func() {
			var (
				mu     sync.Mutex
				events []string
			)

			record := func(event string) {
				mu.Lock()
				defer mu.Unlock()

				events = append(events, event)
			}

			started := make(chan struct{})

			symbols := validSymbols("slow")
			symbols[api.SymbolAfterCommand] = func(*api.Context, api.ErrorCode) {
				record("after:start")
				close(started)
				time.Sleep(100 * time.Millisecond)
				record("after:end")
			}
			symbols[api.SymbolOnExit] = func(*api.Context) { record("exit") }
			symbols[api.SymbolCleanup] = func() { record("cleanup") }

			mod := fd.add("slow.so", symbols)

			Expect(m.Init()).To(Succeed())

			done := make(chan any, 1)

			go func() {
				defer GinkgoRecover()
				defer func() { done <- recover() }()

				m.AfterCommand("u", "", "yay", api.ErrorCodeSuccess)
			}()

			Eventually(started).Should(BeClosed())

			m.NotifyExit("", "", "yay")
			Expect(m.Close()).To(Succeed())

			Eventually(done).Should(Receive(BeNil()))

			mu.Lock()
			defer mu.Unlock()

			Expect(events).To(Equal([]string{"after:start", "after:end", "exit", "cleanup"}))
			Expect(mod.closed).To(Equal(1))
		})

		It("runs no hooks after Close", func() {
			calls := 0

			symbols := validSymbols("late")
			symbols[api.SymbolBeforeCommand] = func(*api.Context) api.ErrorCode {
				calls++

				return api.ErrorCodeSuccess
			}
			symbols[api.SymbolAfterCommand] = func(*api.Context, api.ErrorCode) { calls++ }
			symbols[api.SymbolOnExit] = func(*api.Context) { calls++ }

			fd.add("late.so", symbols)

			Expect(m.Init()).To(Succeed())
			Expect(m.Close()).To(Succeed())

			Expect(m.BeforeCommand("u", "", "yay")).To(Equal(api.ErrorCodeSuccess))
			m.AfterCommand("u", "", "yay", api.ErrorCodeSuccess)
			m.NotifyExit("", "", "yay")
			Expect(m.Execute("late", "", "yay")).To(Equal(api.ErrorCodeInvalidInput))
			Expect(calls).To(BeZero())
		})
	})

	Describe("Close", func() {
		It("runs cleanup, closes modules and empties the registry once", func() {
			cleanups := 0

			symbols := validSymbols("hello")
			symbols[api.SymbolCleanup] = func() { cleanups++ }

			mod := fd.add("hello.so", symbols)

			Expect(m.Init()).To(Succeed())
			Expect(m.Close()).To(Succeed())
			Expect(m.Close()).To(Succeed())

			Expect(cleanups).To(Equal(1))
			Expect(mod.closed).To(Equal(1))
			Expect(m.Len()).To(Equal(0))
			Expect(m.IsPluginCommand("hello")).To(BeFalse())
			Expect(m.Execute("hello", "", "yay")).To(Equal(api.ErrorCodeInvalidInput))
		})

		It("closes a mocked module exactly once", func() {
			ctrl := gomock.NewController(GinkgoT())

			fd.add("mock.so", nil)

			mod := plugin.NewMockModule(ctrl)
			symbols := validSymbols("mock")

			mod.EXPECT().Lookup(gomock.Any()).DoAndReturn(func(symbol string) (any, error) {
				if sym, ok := symbols[symbol]; ok {
					return sym, nil
				}

				return nil, plugin.ErrSymbolNotFound
			}).AnyTimes()
			mod.EXPECT().Path().Return(filepath.Join(dir, "mock.so")).AnyTimes()
			mod.EXPECT().Close().Return(nil).Times(1)

			m = plugin.NewManager(
				plugin.WithDir(dir),
				plugin.WithLoaderOptions(plugin.WithOpeners(map[string]plugin.Opener{
					plugin.ExtGoPlugin: func(string) (plugin.Module, error) { return mod, nil },
				})),
			)

			Expect(m.Init()).To(Succeed())
			Expect(m.Len()).To(Equal(1))
			Expect(m.Close()).To(Succeed())
			Expect(m.Close()).To(Succeed())
		})

		It("reports module close errors", func() {
			ctrl := gomock.NewController(GinkgoT())

			fd.add("mock.so", nil)

			mod := plugin.NewMockModule(ctrl)
			symbols := validSymbols("mock")

			mod.EXPECT().Lookup(gomock.Any()).DoAndReturn(func(symbol string) (any, error) {
				if sym, ok := symbols[symbol]; ok {
					return sym, nil
				}

				return nil, plugin.ErrSymbolNotFound
			}).AnyTimes()
			mod.EXPECT().Path().Return(filepath.Join(dir, "mock.so")).AnyTimes()
			mod.EXPECT().Close().Return(errors.New("busy"))

			m = plugin.NewManager(
				plugin.WithDir(dir),
				plugin.WithLoaderOptions(plugin.WithOpeners(map[string]plugin.Opener{
					plugin.ExtGoPlugin: func(string) (plugin.Module, error) { return mod, nil },
				})),
			)

			Expect(m.Init()).To(Succeed())

			err := m.Close()
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("busy"))
		})

		It("survives a panicking cleanup", func() {
			symbols := validSymbols("hello")
			symbols[api.SymbolCleanup] = func() { panic("boom") }

			mod := fd.add("hello.so", symbols)

			Expect(m.Init()).To(Succeed())
			Expect(m.Close()).To(Succeed())
			Expect(mod.closed).To(Equal(1))
		})

		It("can be reopened by Init", func() {
			fd.add("hello.so", validSymbols("hello"))

			Expect(m.Init()).To(Succeed())
			Expect(m.Close()).To(Succeed())
			Expect(m.Init()).To(Succeed())
			Expect(m.IsPluginCommand("hello")).To(BeTrue())
		})

		It("is a no-op on an empty manager", func() {
			Expect(plugin.NewManager().Close()).To(Succeed())
		})
	})
})
