package plugin_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/archium/archium/internal/color"
	"github.com/archium/archium/internal/plugin"
	api "github.com/archium/archium/pkg/plugin"
)

var _ = Describe("Listing", func() {
	var (
		dir   string
		fd    *fakeDir
		m     *plugin.Manager
		buf   bytes.Buffer
		theme color.Theme
	)

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
		fd = newFakeDir(dir)
		m = plugin.NewManager(
			plugin.WithDir(dir),
			plugin.WithLoaderOptions(plugin.WithOpeners(fd.openers())),
		)
		buf.Reset()
		theme = color.NewTheme(false)
	})

	Describe("ListLoaded", func() {
		It("reports when nothing is loaded", func() {
			Expect(m.Init()).To(Succeed())
			Expect(m.ListLoaded(&buf, theme)).To(Succeed())
			Expect(buf.String()).To(Equal("No plugins loaded.\n"))
		})

		It("lists every plugin", func() {
			symbols := validSymbols("hello")
			symbols[api.SymbolGetAPIVersion] = func() int { return api.APIVersion }

			fd.add("hello.so", symbols)
			fd.add("world.so", validSymbols("world"))

			Expect(m.Init()).To(Succeed())
			Expect(m.ListLoaded(&buf, theme)).To(Succeed())

			out := buf.String()
			Expect(out).To(HavePrefix("Loaded plugins:\n"))
			Expect(out).To(ContainSubstring("Command"))
			Expect(out).To(ContainSubstring("hello"))
			Expect(out).To(ContainSubstring("world"))
			Expect(out).To(ContainSubstring("Hello Plugin"))
			Expect(out).To(ContainSubstring("A hello world plugin"))
			Expect(out).To(ContainSubstring("hello.so"))
		})
	})

	Describe("DisplayHelp", func() {
		It("writes nothing without plugins", func() {
			Expect(m.Init()).To(Succeed())
			Expect(m.DisplayHelp(&buf, theme)).To(Succeed())
			Expect(buf.String()).To(BeEmpty())
		})

		It("pads commands to a fixed column", func() {
			fd.add("hello.so", validSymbols("hello"))

			Expect(m.Init()).To(Succeed())
			Expect(m.DisplayHelp(&buf, theme)).To(Succeed())
			Expect(buf.String()).To(Equal(
				"\nPlugin commands:\nhello        - A hello world plugin\n",
			))
		})

		It("does not pad commands wider than the column", func() {
			long := strings.Repeat("x", 20)
			fd.add("long.so", validSymbols(long))

			Expect(m.Init()).To(Succeed())
			Expect(m.DisplayHelp(&buf, theme)).To(Succeed())
			Expect(buf.String()).To(ContainSubstring(long + " - A hello world plugin\n"))
		})
	})

	Describe("Summaries", func() {
		It("describes loaded plugins and their hooks", func() {
			symbols := validSymbols("hello")
			symbols[api.SymbolOnExit] = func(*api.Context) {}

			fd.add("hello.so", symbols)

			Expect(m.Init()).To(Succeed())
			Expect(m.Summaries()).To(Equal([]plugin.Summary{{
				Command:     "hello",
				Name:        "Hello Plugin",
				Description: "A hello world plugin",
				Path:        filepath.Join(dir, "hello.so"),
				Hooks:       []string{"on_exit"},
			}}))
		})
	})

	Describe("CreateExample", func() {
		It("writes the source and build files", func() {
			target := filepath.Join(dir, "plugins")
			m = plugin.NewManager(plugin.WithDir(target))

			Expect(m.Init()).To(Succeed())

			got, err := m.CreateExample()
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(target))

			source, err := os.ReadFile(filepath.Join(target, plugin.ExampleSource))
			Expect(err).NotTo(HaveOccurred())
			Expect(string(source)).To(ContainSubstring("package main"))
			Expect(string(source)).To(ContainSubstring(plugin.APIPackage))
			Expect(string(source)).To(ContainSubstring("func Execute("))

			makefile, err := os.ReadFile(filepath.Join(target, plugin.ExampleMakefile))
			Expect(err).NotTo(HaveOccurred())
			Expect(string(makefile)).To(ContainSubstring("-buildmode=plugin"))
			Expect(string(makefile)).To(ContainSubstring("\tgo build"))
		})

		It("resolves the directory without Init", func() {
			target := filepath.Join(dir, "fresh")
			m = plugin.NewManager(plugin.WithDir(target))

			got, err := m.CreateExample()
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(target))
			Expect(filepath.Join(target, plugin.ExampleSource)).To(BeAnExistingFile())
		})

		It("refuses to write after Close", func() {
			target := filepath.Join(dir, "closed")
			m = plugin.NewManager(plugin.WithDir(target))

			Expect(m.Close()).To(Succeed())

			_, err := m.CreateExample()
			Expect(errors.Is(err, plugin.ErrManagerClosed)).To(BeTrue())
			Expect(filepath.Join(target, plugin.ExampleSource)).NotTo(BeAnExistingFile())

			Expect(m.Init()).To(Succeed())

			_, err = m.CreateExample()
			Expect(err).NotTo(HaveOccurred())
		})
	})
})
