package console_test

import (
	"bytes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/inspect-tools/inspect2sonar"
	"github.com/inspect-tools/inspect2sonar/console"
)

var _ = Describe("Summary writer", func() {
	result := &inspect2sonar.Result{
		Input:    "report.xml",
		Solution: `C:\work\Sample.sln`,
		Projects: []inspect2sonar.ProjectResult{
			{Name: inspect2sonar.RootName, OutputPath: "out/sonarqube-report.json", Placeholder: true},
			{Name: "App", OutputPath: "out/App/sonarqube-report.json", Issues: 2, Skipped: 1},
			{Name: "Empty", OutputPath: "out/Empty/sonarqube-report.json", Placeholder: true},
		},
	}

	It("should render one line per written report", func() {
		var out bytes.Buffer
		Expect(console.WriteSummary(&out, result, false)).To(Succeed())

		summary := out.String()
		Expect(summary).To(ContainSubstring("Converted report.xml"))
		Expect(summary).To(ContainSubstring(`solution C:\work\Sample.sln`))
		Expect(summary).To(ContainSubstring("App: 2 issues (1 skipped) -> out/App/sonarqube-report.json"))
		Expect(summary).To(ContainSubstring("Empty: empty report -> out/Empty/sonarqube-report.json"))
		Expect(summary).To(ContainSubstring("(root): empty report -> out/sonarqube-report.json"))
	})

	It("should not emit escape codes when color is disabled", func() {
		var out bytes.Buffer
		Expect(console.WriteSummary(&out, result, false)).To(Succeed())
		Expect(out.String()).NotTo(ContainSubstring("\x1b["))
	})
})
