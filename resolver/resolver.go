// Package resolver places a converted report inside the solution's
// directory tree.
package resolver

import (
	"github.com/inspect-tools/inspect2sonar/convert"
	"github.com/inspect-tools/inspect2sonar/solution"
	"github.com/inspect-tools/inspect2sonar/winpath"
)

// Resolve returns the backslash-delimited directory the project's report
// belongs in, relative to the output root.
//
// Duplicate project names are disambiguated through the report's first
// issue: its nearest-root path segment is matched against each candidate's
// own leading segment and the first match wins. A report with no issues
// cannot be disambiguated and falls back to its bare project name, as does a
// project the solution doesn't list at all.
func Resolve(sln *solution.Solution, project *convert.Project, depth int) string {
	var candidates []string
	for _, p := range sln.Projects {
		if p.IsFolder() || p.Name != project.Name {
			continue
		}
		candidates = append(candidates, p.Path)
	}

	var selected string
	switch {
	case len(candidates) == 1:
		selected = candidates[0]
	case len(candidates) > 1 && len(project.Report.Issues) > 0:
		first := winpath.FirstSegment(project.Report.Issues[0].PrimaryLocation.FilePath)
		for _, candidate := range candidates {
			if winpath.FirstSegment(candidate) == first {
				selected = candidate
				break
			}
		}
	}
	if selected == "" {
		return project.Name
	}
	if depth > 0 {
		selected = winpath.StripLeadingSegments(selected, depth)
	}
	return winpath.Dir(selected)
}
