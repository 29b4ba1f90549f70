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

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/inspect-tools/inspect2sonar"
	"github.com/inspect-tools/inspect2sonar/console"
)

const usageText = `
inspect2sonar - .NET inspection report converter

inspect2sonar converts the XML report written by a .NET code inspection run
into issue import files for the quality platform, one per solution project,
placed inside each project's directory.

USAGE:

	# Convert a report, writing one issues file per project
	$ inspect2sonar inspectcode-report.xml

	# Write the report tree below a build directory
	$ inspect2sonar -dir build/reports inspectcode-report.xml

	# Convert only a single project to the output root
	$ inspect2sonar -project MyApp -dir build/reports inspectcode-report.xml


`

var (
	// restrict conversion to a single project
	flagProject = flag.String("project", "", "Only convert the named project (case-insensitive)")

	// output file name
	flagOutput = flag.String("out", "", "File name for generated reports (default "+inspect2sonar.DefaultOutput+")")

	// output root directory
	flagOutputRoot = flag.String("dir", "", "Root directory the report tree is written under")

	// config file
	flagConfig = flag.String("conf", "", "Path to optional config file")

	// log to file or stderr
	flagLogfile = flag.String("log", "", "Log messages to file rather than stderr")

	// quiet
	flagQuiet = flag.Bool("quiet", false, "Only show output when something goes wrong")

	// validate generated reports
	flagValidate = flag.Bool("validate", false, "Check every generated report against the issue import schema")

	// disable summary colors
	flagNoColor = flag.Bool("no-color", false, "Disable color output on the summary")

	logger *log.Logger
)

func usage() {
	fmt.Fprint(os.Stderr, usageText)
	fmt.Fprint(os.Stderr, "OPTIONS:\n\n")
	flag.PrintDefaults()
	fmt.Fprint(os.Stderr, "\n")
}

func loadConfig(configFile string) (*inspect2sonar.Config, error) {
	config := inspect2sonar.NewConfig()
	if configFile != "" {
		// #nosec
		file, err := os.Open(configFile)
		if err != nil {
			return nil, err
		}
		defer file.Close()
		if _, err := config.ReadFrom(file); err != nil {
			return nil, err
		}
	}

	// command line flags win over the config file
	if *flagProject != "" {
		config.Project = *flagProject
	}
	if *flagOutput != "" {
		config.Output = *flagOutput
	}
	if *flagOutputRoot != "" {
		config.OutputRoot = *flagOutputRoot
	}
	if *flagValidate {
		config.Validate = true
	}
	return config, nil
}

func main() {
	// Setup usage description
	flag.Usage = usage

	// Parse command line arguments
	flag.Parse()

	// Ensure the inspection report was specified
	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "\nError: a single inspection report FILE is expected\n") // #nosec
		flag.Usage()
		os.Exit(1)
	}

	// Setup logging
	logWriter := os.Stderr
	if *flagLogfile != "" {
		var e error
		logWriter, e = os.Create(*flagLogfile)
		if e != nil {
			flag.Usage()
			log.Fatal(e)
		}
	}

	if *flagQuiet {
		logger = log.New(io.Discard, "", 0)
	} else {
		logger = log.New(logWriter, "[inspect2sonar] ", log.LstdFlags)
	}

	// Load config
	config, err := loadConfig(*flagConfig)
	if err != nil {
		logger.Fatal(err)
	}

	// Run the conversion
	runner := inspect2sonar.NewRunner(config, logger)
	result, err := runner.Run(flag.Arg(0))
	if err != nil {
		logger.Fatal(err)
	}

	// Print the summary
	if !*flagQuiet {
		if err := console.WriteSummary(os.Stdout, result, !*flagNoColor); err != nil {
			logger.Fatal(err)
		}
	}

	// Finalize logging
	logWriter.Close() // #nosec
}
