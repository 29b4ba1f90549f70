// Package inspection models the XML report emitted by the .NET code
// inspection tool.
package inspection

import "encoding/xml"

// Report is the root element of an inspection report.
type Report struct {
	XMLName     xml.Name        `xml:"Report"`
	Information Information     `xml:"Information"`
	IssueTypes  []IssueType     `xml:"IssueTypes>IssueType"`
	Projects    []ProjectIssues `xml:"Issues>Project"`
}

// Information carries run metadata; only the solution path is consumed.
type Information struct {
	Solution string `xml:"Solution"`
}

// IssueType is one entry of the report's rule-type catalog.
type IssueType struct {
	ID          string `xml:"Id,attr"`
	Category    string `xml:"Category,attr"`
	Description string `xml:"Description,attr"`
	Severity    string `xml:"Severity,attr"`
}

// ProjectIssues groups the issues reported against a single project.
type ProjectIssues struct {
	Name   string  `xml:"Name,attr"`
	Issues []Issue `xml:"Issue"`
}

// Issue is a single rule violation. Line may be 0 when the inspector could
// not attribute a line; File is relative to the solution directory and
// starts with the project name.
type Issue struct {
	TypeID  string `xml:"TypeId,attr"`
	File    string `xml:"File,attr"`
	Offset  string `xml:"Offset,attr"`
	Line    int    `xml:"Line,attr"`
	Message string `xml:"Message,attr"`
}

// TypeCatalog indexes the rule-type catalog by type id.
func (r *Report) TypeCatalog() map[string]IssueType {
	catalog := make(map[string]IssueType, len(r.IssueTypes))
	for _, issueType := range r.IssueTypes {
		catalog[issueType.ID] = issueType
	}
	return catalog
}
