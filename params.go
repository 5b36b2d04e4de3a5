package main

import (
	"flag"
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/questboard/api-contract-tests/framework"

	"github.com/alessio/shellescape"
)

type commandParams struct {
	baseURL        string
	configPath     string
	filters        framework.RegexFilters
	requestTimeout time.Duration
	debug          bool
	debugAll       bool
}

func (c *commandParams) Read(args []string) bool {
	fs := flag.NewFlagSet("", flag.ExitOnError)
	fs.StringVar(&c.baseURL, "url", "", "base URL of the API under test")
	fs.StringVar(&c.configPath, "config", "", "path of a YAML configuration file")
	fs.Var(&c.filters.MustMatch, "run", "regex pattern(s) to select checks to run")
	fs.Var(&c.filters.MustNotMatch, "skip", "regex pattern(s) to select checks not to run")
	fs.DurationVar(&c.requestTimeout, "timeout", 0, "per-request timeout (default 10s)")
	fs.BoolVar(&c.debug, "debug", false, "enable debug logging for failed checks")
	fs.BoolVar(&c.debugAll, "debug-all", false, "enable debug logging for all checks")

	if err := fs.Parse(args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fs.Usage()
		return false
	}
	return true
}

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}

// rerunFailedCommand builds a command line that reruns only the checks that
// failed, by turning each failed check's name into an anchored -run pattern.
func rerunFailedCommand(programName string, params commandParams, cfg runConfig, results framework.Results) string {
	var b commandBuilder
	b.add(programName, "-url", cfg.baseURL)
	if params.configPath != "" {
		b.add("-config", params.configPath)
	}
	for _, f := range results.Failures {
		b.add("-run", "^"+regexp.QuoteMeta(f.TestID.String())+"$")
	}
	return b.String()
}
