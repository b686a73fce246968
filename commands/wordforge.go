package commands

import (
	"fmt"
	"os"

	"code.cloudfoundry.org/lager"

	"github.com/forgelabs/wordforge/audit"
	"github.com/forgelabs/wordforge/wordlog"
)

type WordForgeCommand struct {
	Gen      GenCommand      `command:"gen" description:"Generate keyword-derived password candidates"`
	Analyze  AnalyzeCommand  `command:"analyze" description:"Score a candidates file with entropy and policy heuristics"`
	LabMatch LabMatchCommand `command:"lab-match" description:"Compare candidate digests against a local hash table (lab use only)"`
	Version  VersionCommand  `command:"version" description:"Displays wordforge version" alias:"V"`
}

var WordForge WordForgeCommand

// newLogger keeps stdout clean for command output: normal runs get a
// null logger, --debug gets a lager DEBUG sink on stderr.
func newLogger(component string, debug bool) lager.Logger {
	if !debug {
		return wordlog.NewNullLogger()
	}

	logger := lager.NewLogger(component)
	logger.RegisterSink(lager.NewWriterSink(os.Stderr, lager.DEBUG))
	return logger
}

func newRecorder(path string, disabled bool) audit.Recorder {
	if disabled || path == "" {
		return audit.NewNullRecorder()
	}
	return audit.NewFileRecorder(path)
}

// An unwritable audit log never fails the run; the trail is
// best-effort, like the original tool's run log.
func recordOrWarn(record func() error) {
	if err := record(); err != nil {
		fmt.Fprintln(os.Stderr, yellow("[WARN]"), "could not write audit record:", err)
	}
}
