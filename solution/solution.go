// Package solution reads the project list out of a Visual Studio solution
// file. Only the project records are consumed; build configurations and
// nesting sections are ignored.
package solution

import (
	"bufio"
	"os"
	"regexp"
	"strings"
)

// folderTypeKind is the reserved project-type GUID for solution folders,
// which group projects in the IDE but are never build targets.
const folderTypeKind = "{2150E333-8FDC-42A3-9474-1A3956D46DE8}"

// Project is one project record of a solution file. Path is relative to the
// solution directory and backslash-delimited.
type Project struct {
	Name     string
	Path     string
	TypeKind string
}

// IsFolder reports whether the project is a solution folder rather than a
// real build target.
func (p Project) IsFolder() bool {
	return strings.EqualFold(p.TypeKind, folderTypeKind)
}

// Solution is the parsed project list, in declaration order.
type Solution struct {
	Projects []Project
}

// Project("{TypeGUID}") = "Name", "Rel\Path\Name.csproj", "{ProjectGUID}"
var projectRecord = regexp.MustCompile(`^Project\("(\{[^"]+\})"\)\s*=\s*"([^"]+)",\s*"([^"]+)",\s*"\{[^"]+\}"`)

// Parse reads the solution file at path.
func Parse(path string) (*Solution, error) {
	file, err := os.Open(path) // #nosec
	if err != nil {
		return nil, err
	}
	defer file.Close()

	sln := &Solution{}
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		match := projectRecord.FindStringSubmatch(strings.TrimSpace(scanner.Text()))
		if match == nil {
			continue
		}
		sln.Projects = append(sln.Projects, Project{
			TypeKind: match[1],
			Name:     match[2],
			Path:     match[3],
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return sln, nil
}
