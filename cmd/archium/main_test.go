package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"syscall"

	"github.com/cockroachdb/errors"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	internalplugin "github.com/archium/archium/internal/plugin"
	"github.com/archium/archium/pkg/logger"
	"github.com/archium/archium/pkg/plugin"
)

var _ = Describe("writeSummaries", func() {
	summaries := []internalplugin.Summary{
		{
			Command:     "hello",
			Name:        "Hello",
			Description: "A hello world plugin",
			APIVersion:  plugin.APIVersion,
			Path:        "/plugins/hello.so",
			Hooks:       []string{"init"},
		},
	}

	It("writes indented JSON", func() {
		var buf bytes.Buffer
		Expect(writeSummaries(&buf, formatJSON, summaries)).To(Succeed())

		var decoded []map[string]any
		Expect(json.Unmarshal(buf.Bytes(), &decoded)).To(Succeed())
		Expect(decoded).To(HaveLen(1))
		Expect(decoded[0]).To(HaveKeyWithValue("command", "hello"))
		Expect(decoded[0]).To(HaveKeyWithValue("path", "/plugins/hello.so"))
		Expect(buf.String()).To(ContainSubstring("\n  {"))
	})

	It("writes YAML", func() {
		var buf bytes.Buffer
		Expect(writeSummaries(&buf, formatYAML, summaries)).To(Succeed())

		var decoded []map[string]any
		Expect(yaml.Unmarshal(buf.Bytes(), &decoded)).To(Succeed())
		Expect(decoded[0]).To(HaveKeyWithValue("description", "A hello world plugin"))
		Expect(decoded[0]).To(HaveKeyWithValue("hooks", []any{"init"}))
	})

	It("writes an empty JSON list without plugins", func() {
		var buf bytes.Buffer
		Expect(writeSummaries(&buf, formatJSON, []internalplugin.Summary{})).To(Succeed())
		Expect(buf.String()).To(Equal("[]\n"))
	})

	It("rejects unknown formats", func() {
		err := writeSummaries(&bytes.Buffer{}, "xml", summaries)
		Expect(errors.Is(err, ErrUnknownFormat)).To(BeTrue())
	})
})

var _ = Describe("flagValues", func() {
	var cmd *cobra.Command

	BeforeEach(func() {
		verboseFlag, pluginDirFlag, noPluginsFlag = false, "", false

		cmd = &cobra.Command{Use: "test"}
		cmd.Flags().BoolVarP(&verboseFlag, "verbose", "v", false, "")
		cmd.Flags().StringVar(&pluginDirFlag, "plugin-dir", "", "")
		cmd.Flags().BoolVar(&noPluginsFlag, "no-plugins", false, "")
	})

	It("is empty when no flag was set", func() {
		Expect(cmd.ParseFlags(nil)).To(Succeed())
		Expect(flagValues(cmd)).To(BeEmpty())
	})

	It("includes only the flags that were set", func() {
		Expect(cmd.ParseFlags([]string{"--plugin-dir", "/tmp/p", "--no-plugins"})).To(Succeed())

		Expect(flagValues(cmd)).To(Equal(map[string]any{
			"plugin-dir": "/tmp/p",
			"no-plugins": true,
		}))
	})

	It("keeps an explicit false", func() {
		Expect(cmd.ParseFlags([]string{"--verbose=false"})).To(Succeed())
		Expect(flagValues(cmd)).To(HaveKeyWithValue("verbose", false))
	})
})

var _ = Describe("versionString", func() {
	It("names the program and the plugin API", func() {
		out := versionString()

		Expect(out).To(HavePrefix("archium " + version + "\n"))
		Expect(out).To(ContainSubstring("plugin api: 2"))
	})
})

var _ = Describe("exit signals", func() {
	It("include SIGABRT", func() {
		Expect(exitSignals).To(ContainElements(os.Interrupt, syscall.SIGTERM, syscall.SIGABRT))
	})

	It("cancel the session instead of exiting", func() {
		ctx, stop := signal.NotifyContext(context.Background(), exitSignals...)
		DeferCleanup(stop)

		var out bytes.Buffer
		a := &app{log: logger.NewNoOpLogger(), out: &out}
		Expect(a.interrupted(ctx)).To(BeFalse())

		Expect(syscall.Kill(os.Getpid(), syscall.SIGABRT)).To(Succeed())
		Eventually(ctx.Done()).Should(BeClosed())

		Expect(a.interrupted(ctx)).To(BeTrue())
		Expect(out.String()).To(Equal("\n"))
	})
})
