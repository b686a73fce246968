package commands

import (
	"errors"
	"fmt"
	"os"

	"code.cloudfoundry.org/lager"

	"github.com/forgelabs/wordforge/labmatch"
)

type LabMatchCommand struct {
	Hashes     string `long:"hashes" description:"local hash table file (identifier:sha256hex per line)" required:"yes" value-name:"FILE"`
	Candidates string `long:"candidates" description:"candidates file, one password per line" required:"yes" value-name:"FILE"`
	Lab        bool   `long:"lab" description:"explicit lab mode"`
	Confirm    bool   `long:"confirm" description:"confirm operator intent"`
	MaxChecks  int    `long:"max-checks" description:"cap on candidate lines read" default:"100000" value-name:"N"`
	AuditLog   string `long:"audit-log" description:"append-only run log" default:"runs.log" value-name:"PATH"`
	NoAudit    bool   `long:"no-audit" description:"disable the audit trail"`
	Debug      bool   `long:"debug" description:"enables debug logging"`
}

func (command *LabMatchCommand) Execute(args []string) error {
	// Two independent opt-in flags so nobody runs this by accident.
	if !command.Lab || !command.Confirm {
		return errors.New("lab matching requires both --lab and --confirm; refusing to run")
	}

	logger := newLogger("lab-match", command.Debug)
	logger.Debug("starting", lager.Data{
		"hashes":     command.Hashes,
		"candidates": command.Candidates,
		"max-checks": command.MaxChecks,
	})

	params := lager.Data{
		"hashes":     command.Hashes,
		"candidates": command.Candidates,
		"max-checks": command.MaxChecks,
	}

	recorder := newRecorder(command.AuditLog, command.NoAudit)
	recordOrWarn(func() error { return recorder.RecordStart("lab-match", params) })

	hashFile, err := os.Open(command.Hashes)
	if err != nil {
		return err
	}
	defer hashFile.Close()

	table, skipped, err := labmatch.LoadTable(hashFile)
	if err != nil {
		return err
	}
	if skipped > 0 {
		logger.Debug("skipped-malformed-lines", lager.Data{"count": skipped})
	}

	candidatesFile, err := os.Open(command.Candidates)
	if err != nil {
		return err
	}
	defer candidatesFile.Close()

	candidates, err := labmatch.ReadCandidates(candidatesFile, command.MaxChecks)
	if err != nil {
		return err
	}

	hits := labmatch.Match(table, candidates)

	if len(hits) == 0 {
		fmt.Println(yellow("No hits found in local lab match."))
	} else {
		fmt.Println(red("HITS:"))
		for _, hit := range hits {
			fmt.Printf("%s:%s:%s\n", hit.Identifier, hit.Candidate, hit.Digest)
		}
	}

	recordOrWarn(func() error { return recorder.Record("lab-match", params, len(hits)) })

	logger.Debug("done", lager.Data{"hits": len(hits)})
	return nil
}
