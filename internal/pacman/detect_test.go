package pacman_test

import (
	"context"
	"io"

	"github.com/cockroachdb/errors"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/archium/archium/internal/exec"
	"github.com/archium/archium/internal/pacman"
)

var _ = Describe("Detector", func() {
	var (
		ctrl  *gomock.Controller
		tools *exec.MockToolChecker
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		tools = exec.NewMockToolChecker(ctrl)
	})

	It("looks up yay, paru and pacman in order under auto", func() {
		tools.EXPECT().FindTool("yay", "paru", "pacman").Return("paru")

		pm, err := pacman.NewDetector(tools, "auto", nil).Detect()
		Expect(err).NotTo(HaveOccurred())
		Expect(pm).To(Equal("paru"))
	})

	It("treats an empty preference as auto", func() {
		tools.EXPECT().FindTool("yay", "paru", "pacman").Return("yay")

		pm, err := pacman.NewDetector(tools, "", nil).Detect()
		Expect(err).NotTo(HaveOccurred())
		Expect(pm).To(Equal("yay"))
	})

	It("prefers the configured package manager", func() {
		tools.EXPECT().IsAvailable("paru").Return(true)

		pm, err := pacman.NewDetector(tools, "paru", nil).Detect()
		Expect(err).NotTo(HaveOccurred())
		Expect(pm).To(Equal("paru"))
	})

	It("falls back when the preference is not installed", func() {
		tools.EXPECT().IsAvailable("paru").Return(false)
		tools.EXPECT().FindTool("yay", "paru", "pacman").Return("pacman")

		pm, err := pacman.NewDetector(tools, "paru", nil).Detect()
		Expect(err).NotTo(HaveOccurred())
		Expect(pm).To(Equal("pacman"))
	})

	It("fails when nothing is installed", func() {
		tools.EXPECT().FindTool("yay", "paru", "pacman").Return("")

		_, err := pacman.NewDetector(tools, "auto", nil).Detect()
		Expect(errors.Is(err, pacman.ErrNoPackageManager)).To(BeTrue())
	})
})

var _ = Describe("Version", func() {
	var (
		ctrl   *gomock.Controller
		runner *exec.MockShellRunner
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		runner = exec.NewMockShellRunner(ctrl)
	})

	It("returns the first output line", func() {
		runner.EXPECT().
			Run(gomock.Any(), "yay --version", gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, stdout, _ io.Writer) (*exec.ShellResult, error) {
				_, _ = io.WriteString(stdout, "yay v12.3.5 - libalpm v14.0.0\nextra\n")

				return &exec.ShellResult{}, nil
			})

		Expect(pacman.Version(context.Background(), runner, "yay")).To(Equal("yay v12.3.5 - libalpm v14.0.0"))
	})

	It("reports unknown on failure", func() {
		runner.EXPECT().
			Run(gomock.Any(), "paru --version", gomock.Any(), gomock.Any()).
			Return(&exec.ShellResult{ExitCode: 127}, nil)

		Expect(pacman.Version(context.Background(), runner, "paru")).To(Equal(pacman.UnknownVersion))
	})

	It("reports unknown without a package manager", func() {
		Expect(pacman.Version(context.Background(), runner, "")).To(Equal(pacman.UnknownVersion))
	})
})
