package inspection

import (
	"encoding/xml"
	"fmt"
	"os"
)

// Load reads and decodes an inspection report. The file is held open only
// for the duration of the decode. A missing file or malformed XML is the one
// failure the pipeline treats as fatal.
func Load(path string) (*Report, error) {
	file, err := os.Open(path) // #nosec
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var report Report
	if err := xml.NewDecoder(file).Decode(&report); err != nil {
		return nil, fmt.Errorf("unable to parse inspection report %q: %w", path, err)
	}
	return &report, nil
}
