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

// Package convert maps inspected issues onto the issue import format.
package convert

import (
	"log"
	"strings"

	"github.com/inspect-tools/inspect2sonar/inspection"
	"github.com/inspect-tools/inspect2sonar/sonar"
	"github.com/inspect-tools/inspect2sonar/winpath"
)

// severityMap translates inspection severities into the platform's
// vocabulary. An inspection severity outside this table cannot be imported
// and drops the issue.
var severityMap = map[string]string{
	"ERROR":      "CRITICAL",
	"WARNING":    "MINOR",
	"SUGGESTION": "INFO",
	"HINT":       "INFO",
}

// Project is one project's converted report together with conversion
// bookkeeping for the run summary.
type Project struct {
	Name    string
	Report  *sonar.Report
	Skipped int
}

// Mapper converts per-project issue groups using the report's rule-type
// catalog. It never fails a run; issues it cannot map are skipped with a
// diagnostic.
type Mapper struct {
	types  map[string]inspection.IssueType
	depth  int
	logger *log.Logger
}

// NewMapper instantiate a Mapper. depth is the solution directory depth
// derived from the input report's path.
func NewMapper(types map[string]inspection.IssueType, depth int, logger *log.Logger) *Mapper {
	return &Mapper{
		types:  types,
		depth:  depth,
		logger: logger,
	}
}

// Map converts a single project's issues.
func (m *Mapper) Map(group inspection.ProjectIssues) *Project {
	converted := &Project{
		Name:   group.Name,
		Report: sonar.NewReport(),
	}
	for _, issue := range group.Issues {
		issueType, found := m.types[issue.TypeID]
		if !found {
			m.logger.Printf("unable to find issue type %s, skipping issue in %s", issue.TypeID, issue.File)
			converted.Skipped++
			continue
		}
		severity, found := severityMap[issueType.Severity]
		if !found {
			m.logger.Printf("unable to map severity %s of issue type %s, skipping issue in %s",
				issueType.Severity, issue.TypeID, issue.File)
			converted.Skipped++
			continue
		}
		location := sonar.NewLocation(issue.Message, m.normalizePath(group.Name, issue.File),
			sonar.NewTextRange(startLine(issue.Line)))
		converted.Report.Issues = append(converted.Report.Issues, sonar.NewIssue(issue.TypeID, severity, location))
	}
	return converted
}

// normalizePath makes the recorded file path relative to its project
// directory. Recorded paths always lead with the project name; when the
// solution itself sits below additional directories the whole leading run is
// stripped instead, the extra segment covering that implicit project name.
func (m *Mapper) normalizePath(projectName, file string) string {
	if m.depth > 0 {
		return winpath.StripLeadingSegments(file, m.depth+1)
	}
	return strings.TrimPrefix(file, projectName+winpath.Separator)
}

// startLine clamps missing line numbers to the first line. The inspector
// occasionally reports an issue it can only place at file granularity.
func startLine(line int) int {
	if line > 0 {
		return line
	}
	return 1
}
