package inspect2sonar_test

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/inspect-tools/inspect2sonar"
)

var _ = Describe("Configuration", func() {
	Context("when created", func() {
		It("should default the output file name", func() {
			config := inspect2sonar.NewConfig()
			Expect(config.Output).To(Equal(inspect2sonar.DefaultOutput))
			Expect(config.Project).To(BeEmpty())
			Expect(config.OutputRoot).To(BeEmpty())
			Expect(config.Validate).To(BeFalse())
		})
	})

	Context("when loading from a reader", func() {
		It("should apply all settings", func() {
			config := inspect2sonar.NewConfig()
			_, err := config.ReadFrom(strings.NewReader(`
project: App
output: issues.json
outputRoot: build/reports
validate: true
`))
			Expect(err).ShouldNot(HaveOccurred())
			Expect(config.Project).To(Equal("App"))
			Expect(config.Output).To(Equal("issues.json"))
			Expect(config.OutputRoot).To(Equal("build/reports"))
			Expect(config.Validate).To(BeTrue())
		})

		It("should keep the default output name when the file omits it", func() {
			config := inspect2sonar.NewConfig()
			_, err := config.ReadFrom(strings.NewReader(`project: App`))
			Expect(err).ShouldNot(HaveOccurred())
			Expect(config.Output).To(Equal(inspect2sonar.DefaultOutput))
		})

		It("should fail on malformed configuration", func() {
			config := inspect2sonar.NewConfig()
			_, err := config.ReadFrom(strings.NewReader("\tnot yaml"))
			Expect(err).Should(HaveOccurred())
		})
	})
})
