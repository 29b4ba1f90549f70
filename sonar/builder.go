package sonar

// NewLocation instantiate a Location
func NewLocation(message string, filePath string, textRange *TextRange) *Location {
	return &Location{
		Message:   message,
		FilePath:  filePath,
		TextRange: textRange,
	}
}

// NewTextRange instantiate a TextRange
func NewTextRange(startLine int) *TextRange {
	return &TextRange{
		StartLine: startLine,
	}
}

// NewIssue instantiate an Issue
func NewIssue(ruleID string, severity string, primaryLocation *Location) *Issue {
	return &Issue{
		EngineID:        EngineID,
		RuleID:          ruleID,
		Type:            TypeCodeSmell,
		Severity:        severity,
		PrimaryLocation: primaryLocation,
	}
}
