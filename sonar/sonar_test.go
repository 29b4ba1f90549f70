package sonar_test

import (
	"bytes"
	"encoding/json"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/inspect-tools/inspect2sonar/sonar"
)

var _ = Describe("Sonar", func() {
	Context("when writing a report", func() {
		It("should marshal an empty report with an issues array", func() {
			var out bytes.Buffer
			Expect(sonar.WriteReport(&out, sonar.NewReport())).To(Succeed())
			Expect(out.String()).To(MatchJSON(`{"issues": []}`))
		})

		It("should emit all issue fields and omit absent keys", func() {
			report := sonar.NewReport()
			location := sonar.NewLocation("message", `Sub\Foo.cs`, sonar.NewTextRange(3))
			report.Issues = append(report.Issues, sonar.NewIssue("T1", "MINOR", location))

			var out bytes.Buffer
			Expect(sonar.WriteReport(&out, report)).To(Succeed())
			Expect(out.String()).To(MatchJSON(`{
				"issues": [
					{
						"engineId": "inspectcode",
						"ruleId": "T1",
						"type": "CODE_SMELL",
						"severity": "MINOR",
						"primaryLocation": {
							"message": "message",
							"filePath": "Sub\\Foo.cs",
							"textRange": {
								"startLine": 3
							}
						}
					}
				]
			}`))
		})

		It("should drop the text range key when no range is known", func() {
			report := sonar.NewReport()
			report.Issues = append(report.Issues, sonar.NewIssue("T1", "MINOR",
				sonar.NewLocation("message", "Foo.cs", nil)))

			var out bytes.Buffer
			Expect(sonar.WriteReport(&out, report)).To(Succeed())
			Expect(out.String()).NotTo(ContainSubstring("textRange"))
			Expect(out.String()).NotTo(ContainSubstring("null"))
		})
	})

	Context("when validating a report against the import schema", func() {
		marshal := func(report *sonar.Report) []byte {
			raw, err := json.Marshal(report)
			Expect(err).ShouldNot(HaveOccurred())
			return raw
		}

		It("should accept an empty report", func() {
			Expect(sonar.Validate(marshal(sonar.NewReport()))).To(Succeed())
		})

		It("should accept a converted issue", func() {
			report := sonar.NewReport()
			report.Issues = append(report.Issues, sonar.NewIssue("T1", "MINOR",
				sonar.NewLocation("message", "Foo.cs", sonar.NewTextRange(1))))
			Expect(sonar.Validate(marshal(report))).To(Succeed())
		})

		It("should reject a severity outside the platform vocabulary", func() {
			report := sonar.NewReport()
			report.Issues = append(report.Issues, sonar.NewIssue("T1", "SEVERE",
				sonar.NewLocation("message", "Foo.cs", sonar.NewTextRange(1))))
			Expect(sonar.Validate(marshal(report))).To(HaveOccurred())
		})

		It("should reject a start line below 1", func() {
			report := sonar.NewReport()
			report.Issues = append(report.Issues, sonar.NewIssue("T1", "MINOR",
				sonar.NewLocation("message", "Foo.cs", sonar.NewTextRange(0))))
			Expect(sonar.Validate(marshal(report))).To(HaveOccurred())
		})
	})
})
