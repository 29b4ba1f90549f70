package sonar

import (
	_ "embed" // use go embed to import the issue import schema
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema.json
var schemaContent string

// Validate checks a marshalled report against the issue import schema. The
// platform rejects malformed imports with little context, so catching a bad
// report before upload is worth the extra pass.
func Validate(raw []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schemaContent),
		gojsonschema.NewBytesLoader(raw),
	)
	if err != nil {
		return err
	}
	if !result.Valid() {
		details := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			details = append(details, desc.String())
		}
		return fmt.Errorf("report does not match the issue import schema: %s", strings.Join(details, "; "))
	}
	return nil
}
