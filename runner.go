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

// Package inspect2sonar converts .NET inspection reports into per-project
// issue import files placed inside the solution's directory tree.
package inspect2sonar

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/inspect-tools/inspect2sonar/convert"
	"github.com/inspect-tools/inspect2sonar/inspection"
	"github.com/inspect-tools/inspect2sonar/resolver"
	"github.com/inspect-tools/inspect2sonar/solution"
	"github.com/inspect-tools/inspect2sonar/sonar"
	"github.com/inspect-tools/inspect2sonar/winpath"
)

// RootName labels the root placeholder report in run results.
const RootName = "(root)"

// ProjectResult records one written report for the run summary.
type ProjectResult struct {
	Name        string
	OutputPath  string
	Issues      int
	Skipped     int
	Placeholder bool
}

// Result is what a run produced.
type Result struct {
	Input    string
	Solution string
	Projects []ProjectResult
}

// Runner drives one synchronous conversion run: load the report, map every
// project, resolve output directories and write the report files.
type Runner struct {
	config *Config
	logger *log.Logger
}

// NewRunner instantiate a Runner
func NewRunner(config *Config, logger *log.Logger) *Runner {
	return &Runner{
		config: config,
		logger: logger,
	}
}

// Run converts the inspection report at inputPath. Only a missing or
// malformed input report is fatal; everything downstream is logged and the
// run carries on with whatever it can still write.
func (r *Runner) Run(inputPath string) (*Result, error) {
	report, err := inspection.Load(inputPath)
	if err != nil {
		return nil, err
	}
	depth := winpath.SolutionDepth(inputPath)

	mapper := convert.NewMapper(report.TypeCatalog(), depth, r.logger)
	converted := make([]*convert.Project, 0, len(report.Projects))
	for _, group := range report.Projects {
		converted = append(converted, mapper.Map(group))
	}

	result := &Result{
		Input:    inputPath,
		Solution: report.Information.Solution,
	}
	if r.config.Project != "" {
		r.writeTarget(converted, result)
		return result, nil
	}
	r.writeAll(report.Information.Solution, converted, depth, result)
	return result, nil
}

func (r *Runner) writeAll(solutionPath string, converted []*convert.Project, depth int, result *Result) {
	sln, err := solution.Parse(solutionPath)
	if err != nil {
		r.logger.Printf("unable to parse solution %q, falling back to bare project directories: %v", solutionPath, err)
		sln = &solution.Solution{}
	}

	// The scanner falls back to a root-level report when a project has
	// none, which would attribute another project's stale issues to it.
	// An explicit empty root report neutralizes that lookup.
	if path, err := r.emit("", sonar.NewReport()); err != nil {
		r.logger.Printf("unable to write root report: %v", err)
	} else {
		result.Projects = append(result.Projects, ProjectResult{
			Name:        RootName,
			OutputPath:  path,
			Placeholder: true,
		})
	}

	written := make(map[string]bool, len(converted))
	for _, project := range converted {
		written[project.Name] = true
		dir := resolver.Resolve(sln, project, depth)
		path, err := r.emit(dir, project.Report)
		if err != nil {
			r.logger.Printf("unable to write report for project %s: %v", project.Name, err)
			continue
		}
		result.Projects = append(result.Projects, ProjectResult{
			Name:       project.Name,
			OutputPath: path,
			Issues:     len(project.Report.Issues),
			Skipped:    project.Skipped,
		})
	}

	// Projects without findings still need a fresh report each run.
	for _, p := range sln.Projects {
		if p.IsFolder() || written[p.Name] {
			continue
		}
		written[p.Name] = true
		placeholder := &convert.Project{Name: p.Name, Report: sonar.NewReport()}
		path, err := r.emit(resolver.Resolve(sln, placeholder, depth), placeholder.Report)
		if err != nil {
			r.logger.Printf("unable to write placeholder report for project %s: %v", p.Name, err)
			continue
		}
		result.Projects = append(result.Projects, ProjectResult{
			Name:        p.Name,
			OutputPath:  path,
			Placeholder: true,
		})
	}
}

func (r *Runner) writeTarget(converted []*convert.Project, result *Result) {
	for _, project := range converted {
		if !strings.EqualFold(project.Name, r.config.Project) {
			continue
		}
		path, err := r.emit("", project.Report)
		if err != nil {
			r.logger.Printf("unable to write report for project %s: %v", project.Name, err)
			return
		}
		result.Projects = append(result.Projects, ProjectResult{
			Name:       project.Name,
			OutputPath: path,
			Issues:     len(project.Report.Issues),
			Skipped:    project.Skipped,
		})
		return
	}

	r.logger.Printf("no report was converted for project %s, writing an empty report", r.config.Project)
	path, err := r.emit("", sonar.NewReport())
	if err != nil {
		r.logger.Printf("unable to write empty report for project %s: %v", r.config.Project, err)
		return
	}
	result.Projects = append(result.Projects, ProjectResult{
		Name:        r.config.Project,
		OutputPath:  path,
		Placeholder: true,
	})
}

// emit writes one report below the output root, creating directories as
// needed. dir is backslash-delimited data and is converted to the host
// convention only here.
func (r *Runner) emit(dir string, report *sonar.Report) (string, error) {
	if r.config.Validate {
		raw, err := json.Marshal(report)
		if err != nil {
			return "", err
		}
		if err := sonar.Validate(raw); err != nil {
			return "", err
		}
	}
	hostDir := filepath.Join(winpath.ToHost(r.config.OutputRoot), winpath.ToHost(dir))
	if hostDir == "" {
		hostDir = "."
	}
	if err := os.MkdirAll(hostDir, 0o750); err != nil {
		return "", err
	}
	outPath := filepath.Join(hostDir, r.config.Output)
	outfile, err := os.Create(outPath) // #nosec
	if err != nil {
		return "", err
	}
	defer outfile.Close()
	if err := sonar.WriteReport(outfile, report); err != nil {
		return outPath, err
	}
	return outPath, nil
}
