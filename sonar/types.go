// Package sonar holds the generic issue import format consumed by the code
// quality platform.
package sonar

const (
	// EngineID identifies the producing inspection engine on every issue
	EngineID = "inspectcode"

	// TypeCodeSmell is the issue type reported for all inspections
	TypeCodeSmell = "CODE_SMELL"
)

type TextRange struct {
	StartLine int `json:"startLine"`
}

type Location struct {
	Message   string     `json:"message"`
	FilePath  string     `json:"filePath"`
	TextRange *TextRange `json:"textRange,omitempty"`
}

type Issue struct {
	EngineID        string    `json:"engineId"`
	RuleID          string    `json:"ruleId"`
	Type            string    `json:"type"`
	Severity        string    `json:"severity"`
	PrimaryLocation *Location `json:"primaryLocation,omitempty"`
}

type Report struct {
	Issues []*Issue `json:"issues"`
}

// NewReport instantiate an empty Report. The issue slice is always non-nil
// so an empty report still marshals with an "issues" array.
func NewReport() *Report {
	return &Report{Issues: []*Issue{}}
}
