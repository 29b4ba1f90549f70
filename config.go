// (c) Copyright 2016 Hewlett Packard Enterprise Development LP
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package inspect2sonar

import (
	"io"

	"gopkg.in/yaml.v3"
)

// DefaultOutput is the report file name the consuming scanner looks for in
// each project directory.
const DefaultOutput = "sonarqube-report.json"

// Config carries the caller-facing settings of a conversion run.
type Config struct {
	// Project restricts the run to a single project, matched
	// case-insensitively against the report's project names.
	Project string `yaml:"project"`

	// Output is the file name written into every resolved directory.
	Output string `yaml:"output"`

	// OutputRoot is prefixed to every resolved directory. Empty means the
	// current working directory.
	OutputRoot string `yaml:"outputRoot"`

	// Validate re-checks every generated report against the issue import
	// schema before it is written.
	Validate bool `yaml:"validate"`
}

// NewConfig initializes a configuration instance with defaults. Settings can
// then be loaded via c.ReadFrom(strings.NewReader("config data")) or from a
// *os.File.
func NewConfig() *Config {
	return &Config{
		Output: DefaultOutput,
	}
}

// ReadFrom implements the io.ReaderFrom interface. This should be used with
// io.Reader to load configuration from a file or from a string etc.
func (c *Config) ReadFrom(r io.Reader) (int64, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return int64(len(data)), err
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return int64(len(data)), err
	}
	if c.Output == "" {
		c.Output = DefaultOutput
	}
	return int64(len(data)), nil
}
