package analyze

import (
	"fmt"
	"strings"

	"code.cloudfoundry.org/lager"
	"github.com/hashicorp/go-multierror"

	"github.com/forgelabs/wordforge/scanners"
)

type Scanner interface {
	Scan(lager.Logger) bool
	Line(lager.Logger) *scanners.Line
	Err() error
}

type Analyzer interface {
	Analyze(lager.Logger, Scanner, ReportHandlerFunc) error
}

type ReportHandlerFunc func(lager.Logger, Report) error

// Report is the per-candidate analysis result.
type Report struct {
	Password    string
	EntropyBits float64
	Passed      bool
	Failures    []string
}

// CSV renders the report as password,entropy_bits,policy_ok,failures
// with failure codes joined by semicolons.
func (r Report) CSV() string {
	return fmt.Sprintf("%s,%.1f,%t,%s", r.Password, r.EntropyBits, r.Passed, strings.Join(r.Failures, ";"))
}

type analyzer struct {
	policy Policy
}

func NewAnalyzer(policy Policy) Analyzer {
	return &analyzer{policy: policy}
}

// Analyze scores every line the scanner produces and hands the report
// to the handler. Handler and scanner errors are collected rather than
// aborting the pass, so one bad line does not lose the rest.
func (a *analyzer) Analyze(logger lager.Logger, scanner Scanner, handleReport ReportHandlerFunc) error {
	logger = logger.Session("analyze")
	logger.Debug("starting")

	var result error

	for scanner.Scan(logger) {
		line := scanner.Line(logger)

		passed, failures := Check(line.Content, a.policy)
		report := Report{
			Password:    line.Content,
			EntropyBits: EstimateEntropy(line.Content),
			Passed:      passed,
			Failures:    failures,
		}

		err := handleReport(logger, report)
		if err != nil {
			logger.Error("failed", err)
			result = multierror.Append(result, err)
		}
	}
	if err := scanner.Err(); err != nil {
		result = multierror.Append(result, err)
	}

	logger.Debug("done")
	return result
}
