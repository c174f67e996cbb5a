package selftest

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/sugawarayuuta/sonnet"
	"go.uber.org/zap"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

var banner = strings.Repeat("-", 40)

// Case - A single named check. Run may write demonstration output to out and returns an error
// describing what didn't hold, nil if the case passed.
type Case struct {
	Name string
	Run  func(out io.Writer) error
}

// Suite - A named group of cases. Cases of a Demo suite are printed as blocks with their output
// instead of one line each.
type Suite struct {
	Name  string
	Demo  bool
	Cases []Case
}

// CaseResult - Outcome of a single case
type CaseResult struct {
	Name   string `json:"name"`
	Passed bool   `json:"passed"`
	Error  string `json:"error,omitempty"`
	Output string `json:"output,omitempty"`
}

// SuiteResult - Outcome of a suite
type SuiteResult struct {
	Name   string       `json:"name"`
	Passed int          `json:"passed"`
	Total  int          `json:"total"`
	Cases  []CaseResult `json:"cases"`
}

// Report - Outcome of a whole run
type Report struct {
	Suites []SuiteResult `json:"suites"`
	Passed int           `json:"passed"`
	Total  int           `json:"total"`
}

// Runner - Runs suites and writes their results to out, either progressively as text or
// as one JSON document when all suites are done.
type Runner struct {
	out    io.Writer
	format string
	logger *zap.Logger
}

// NewRunner - Returns a new Runner
//   - out receives the report
//   - format is one of FormatText or FormatJSON
//   - logger receives failure details, nil disables logging
func NewRunner(out io.Writer, format string, logger *zap.Logger) (runner *Runner, err error) {
	if format != FormatText && format != FormatJSON {
		err = fmt.Errorf("unsupported format %q, must be %s or %s", format, FormatText, FormatJSON)
		return
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	runner = &Runner{out: out, format: format, logger: logger}

	return
}

// Run - Runs all suites in order. A failing or panicking case never stops the run.
//
// It returns:
//   - report holds the outcome of every case
//   - err is a standard error if the report couldn't be written to out
func (R *Runner) Run(suites ...Suite) (report Report, err error) {
	for _, suite := range suites {
		var result SuiteResult
		result, err = R.runSuite(suite)
		if err != nil {
			return
		}
		report.Suites = append(report.Suites, result)
		report.Passed += result.Passed
		report.Total += result.Total
	}

	if R.format == FormatJSON {
		var b []byte
		b, err = sonnet.Marshal(report)
		if err != nil {
			err = fmt.Errorf("error while encoding report: %w", err)
			return
		}
		_, err = R.out.Write(append(b, '\n'))
	}

	return
}

func (R *Runner) runSuite(suite Suite) (result SuiteResult, err error) {
	R.logger.Debug("running suite", zap.String("suite", suite.Name), zap.Int("cases", len(suite.Cases)))

	result = SuiteResult{Name: suite.Name, Total: len(suite.Cases)}
	for _, c := range suite.Cases {
		cr := runCase(c)
		if cr.Passed {
			result.Passed++
		} else {
			R.logger.Warn("test case failed",
				zap.String("suite", suite.Name),
				zap.String("case", c.Name),
				zap.String("reason", cr.Error),
			)
		}
		result.Cases = append(result.Cases, cr)

		if R.format == FormatText {
			err = R.printCase(suite.Demo, cr)
			if err != nil {
				return
			}
		}
	}

	if R.format == FormatText {
		_, err = fmt.Fprintf(R.out, "%s\n -- %s: Passed [%d/%d] tests -- \n%s\n\n", banner, suite.Name, result.Passed, result.Total, banner)
	}

	return
}

func (R *Runner) printCase(demo bool, cr CaseResult) (err error) {
	if !demo {
		_, err = fmt.Fprintf(R.out, "Running %s ... %s\n", cr.Name, verdict(cr.Passed))
		return
	}

	_, err = fmt.Fprintf(R.out, "%s\nTesting %s\n%s\n%sResult ... %s\n%s\n\n", banner, cr.Name, banner, cr.Output, verdict(cr.Passed), banner)

	return
}

// runCase - Runs a case turning a panic into a failure
func runCase(c Case) (result CaseResult) {
	result.Name = c.Name
	var out bytes.Buffer

	defer func() {
		if r := recover(); r != nil {
			result.Passed = false
			result.Error = fmt.Sprintf("panic: %v", r)
		}
		result.Output = out.String()
	}()

	err := c.Run(&out)
	if err != nil {
		result.Error = err.Error()
		return
	}
	result.Passed = true

	return
}

func verdict(passed bool) string {
	if passed {
		return "PASSED"
	}
	return "FAILED"
}
