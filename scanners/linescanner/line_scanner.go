package linescanner

import (
	"bufio"
	"io"

	"code.cloudfoundry.org/lager"

	"github.com/forgelabs/wordforge/scanners"
)

type lineScanner struct {
	path         string
	bufioScanner *bufio.Scanner
	lineNumber   int
	err          error
}

func New(r io.Reader, name string) *lineScanner {
	return &lineScanner{
		path:         name,
		bufioScanner: bufio.NewScanner(r),
	}
}

func (s *lineScanner) Scan(logger lager.Logger) bool {
	logger = logger.Session("line-scanner")

	success := s.bufioScanner.Scan()

	if err := s.bufioScanner.Err(); err != nil {
		logger.Error("bufio-error", err)
		s.err = err
		return false
	}

	if success {
		s.lineNumber++
	}
	return success
}

func (s *lineScanner) Line(logger lager.Logger) *scanners.Line {
	return &scanners.Line{
		Content:    s.bufioScanner.Text(),
		LineNumber: s.lineNumber,
		Path:       s.path,
	}
}

func (s *lineScanner) Err() error {
	return s.err
}
