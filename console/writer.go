// Package console renders the post-run summary.
package console

import (
	_ "embed" // use go embed to import template
	"fmt"
	"io"
	"text/template"

	"github.com/gookit/color"

	"github.com/inspect-tools/inspect2sonar"
)

//go:embed template.txt
var templateContent string

// WriteSummary write a (colorized) summary of a conversion run
func WriteSummary(w io.Writer, result *inspect2sonar.Result, enableColor bool) error {
	t, err := template.
		New("inspect2sonar").
		Funcs(summaryFuncMap(enableColor)).
		Parse(templateContent)
	if err != nil {
		return err
	}

	return t.Execute(w, result)
}

func summaryFuncMap(enableColor bool) template.FuncMap {
	if enableColor {
		return template.FuncMap{
			"danger":  color.Danger.Render,
			"notice":  color.Notice.Render,
			"success": color.Success.Render,
		}
	}

	// by default those functions return the given content untouched
	return template.FuncMap{
		"danger":  fmt.Sprint,
		"notice":  fmt.Sprint,
		"success": fmt.Sprint,
	}
}
