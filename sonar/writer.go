package sonar

import (
	"encoding/json"
	"io"
)

// WriteReport write a report in the issue import format to the output writer
func WriteReport(w io.Writer, report *Report) error {
	raw, err := json.MarshalIndent(report, "", "\t")
	if err != nil {
		return err
	}
	_, err = w.Write(raw)
	return err
}
