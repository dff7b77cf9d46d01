package plugin_test

import (
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/archium/archium/internal/plugin"
)

var _ = Describe("Security", func() {
	Describe("ResolveDir", func() {
		DescribeTable("should reject traversal",
			func(path string) {
				_, err := plugin.ResolveDir(path)
				Expect(err).To(HaveOccurred())
				Expect(errors.Is(err, plugin.ErrPathTraversal)).To(BeTrue())
			},
			Entry("simple traversal", "../secret"),
			Entry("nested traversal", "plugins/../../secret"),
			Entry("trailing traversal", "plugins/.."),
			Entry("bare parent", ".."),
		)

		It("should reject an empty path", func() {
			_, err := plugin.ResolveDir("")
			Expect(err).To(HaveOccurred())

			_, err = plugin.ResolveDir("   ")
			Expect(err).To(HaveOccurred())
		})

		It("should keep absolute paths", func() {
			dir := GinkgoT().TempDir()

			resolved, err := plugin.ResolveDir(dir)
			Expect(err).NotTo(HaveOccurred())
			Expect(resolved).To(Equal(dir))
		})

		It("should expand the home directory", func() {
			home, err := os.UserHomeDir()
			Expect(err).NotTo(HaveOccurred())

			resolved, err := plugin.ResolveDir("~/.config/archium/plugins")
			Expect(err).NotTo(HaveOccurred())
			Expect(resolved).To(Equal(filepath.Join(home, ".config", "archium", "plugins")))
		})

		It("should make relative paths absolute", func() {
			resolved, err := plugin.ResolveDir("plugins")
			Expect(err).NotTo(HaveOccurred())
			Expect(filepath.IsAbs(resolved)).To(BeTrue())
			Expect(filepath.Base(resolved)).To(Equal("plugins"))
		})

		It("should accept names that merely contain dots", func() {
			_, err := plugin.ResolveDir("my..plugins")
			Expect(err).NotTo(HaveOccurred())
		})
	})

	Describe("ValidateExtension", func() {
		allowed := []string{plugin.ExtLua, plugin.ExtGoPlugin}

		DescribeTable("should check suffixes exactly",
			func(path string, ok bool) {
				err := plugin.ValidateExtension(path, allowed)
				if ok {
					Expect(err).NotTo(HaveOccurred())
				} else {
					Expect(errors.Is(err, plugin.ErrInvalidExtension)).To(BeTrue())
				}
			},
			Entry("go plugin", "hello.so", true),
			Entry("lua script", "hooks.lua", true),
			Entry("upper case", "hello.SO", false),
			Entry("versioned library", "hello.so.1", false),
			Entry("no extension", "hello", false),
			Entry("source file", "hello.go", false),
			Entry("full path", "/usr/lib/archium/hello.so", true),
		)

		It("should accept nothing without an allow list", func() {
			err := plugin.ValidateExtension("hello.so", nil)
			Expect(errors.Is(err, plugin.ErrInvalidExtension)).To(BeTrue())
		})
	})

	Describe("SanitizePanicMessage", func() {
		It("should remove file paths", func() {
			msg := plugin.SanitizePanicMessage("open /home/user/.config/archium/secret.toml: denied")
			Expect(msg).NotTo(ContainSubstring("/home/user"))
			Expect(msg).To(ContainSubstring("[path]"))
		})

		It("should truncate long messages", func() {
			msg := plugin.SanitizePanicMessage(strings.Repeat("x", 500))
			Expect(len(msg)).To(BeNumerically("<=", 203))
			Expect(msg).To(HaveSuffix("..."))
		})

		It("should keep empty messages empty", func() {
			Expect(plugin.SanitizePanicMessage("")).To(BeEmpty())
		})

		It("should keep only the first line", func() {
			msg := plugin.SanitizePanicMessage("hooks.lua:12: exploded\nstack traceback:\n\t[G]: in function 'error'")
			Expect(msg).To(Equal("hooks.lua:12: exploded"))
		})

		It("should not split multibyte characters when truncating", func() {
			msg := plugin.SanitizePanicMessage("x" + strings.Repeat("é", 150))
			Expect(utf8.ValidString(msg)).To(BeTrue())
			Expect(msg).To(HaveSuffix("..."))
		})

		It("should keep short messages", func() {
			Expect(plugin.SanitizePanicMessage("boom")).To(Equal("boom"))
		})
	})
})
