package commands

import (
	"bytes"
	"errors"
	"fmt"
	"io/ioutil"
	"regexp"

	"code.cloudfoundry.org/lager"

	"github.com/forgelabs/wordforge/mutate"
)

type GenCommand struct {
	Args struct {
		Keyword string `positional-arg-name:"KEYWORD" description:"alphanumeric keyword to expand"`
	} `positional-args:"yes" required:"yes"`
	LeetLevel  int    `long:"leet" description:"leet substitution level (0-3)" default:"1" value-name:"LEVEL"`
	MaxResults int    `long:"max-results" description:"cap on leet variants kept" default:"2000" value-name:"N"`
	MinLength  int    `long:"min-len" description:"minimum candidate length" default:"1" value-name:"N"`
	MaxLength  int    `long:"max-len" description:"maximum candidate length" default:"32" value-name:"N"`
	Match      string `long:"match" description:"only keep candidates containing a match" value-name:"REGEXP"`
	Preview    int    `long:"preview" description:"number of candidates to print" default:"20" value-name:"N"`
	OutFile    string `short:"o" long:"out" description:"file to write candidates to" default:"generated_passwords.txt" value-name:"FILE"`
	AuditLog   string `long:"audit-log" description:"append-only run log" default:"runs.log" value-name:"PATH"`
	NoAudit    bool   `long:"no-audit" description:"disable the audit trail"`
	Debug      bool   `long:"debug" description:"enables debug logging"`
}

var keywordPattern = regexp.MustCompile(`^[A-Za-z0-9]+$`)

func (command *GenCommand) Execute(args []string) error {
	keyword := command.Args.Keyword
	if !keywordPattern.MatchString(keyword) {
		return errors.New("invalid keyword: only letters and digits are allowed")
	}

	var allow *regexp.Regexp
	if command.Match != "" {
		re, err := regexp.Compile(command.Match)
		if err != nil {
			return fmt.Errorf("invalid --match pattern: %s", err)
		}
		allow = re
	}

	logger := newLogger("gen", command.Debug)
	logger.Debug("starting", lager.Data{
		"keyword": keyword,
		"leet":    command.LeetLevel,
		"max-len": command.MaxLength,
	})

	params := lager.Data{
		"keyword": keyword,
		"leet":    command.LeetLevel,
		"min-len": command.MinLength,
		"max-len": command.MaxLength,
		"out":     command.OutFile,
	}

	recorder := newRecorder(command.AuditLog, command.NoAudit)
	recordOrWarn(func() error { return recorder.RecordStart("gen", params) })

	seeded := mutate.SeedCommonPasswords(keyword)
	leet := mutate.Generate(keyword, command.LeetLevel, command.MaxResults)
	patterned := mutate.CombineWithPatterns(append(seeded, leet...), mutate.CommonPatterns)
	final := mutate.Filter(patterned, command.MinLength, command.MaxLength, allow)

	if command.Preview > 0 {
		fmt.Println(cyan(fmt.Sprintf("Top %d candidates:", command.Preview)))
		for i, candidate := range final {
			if i >= command.Preview {
				break
			}
			fmt.Println(candidate)
		}
	}

	if command.OutFile != "" {
		if err := writeCandidates(final, command.OutFile); err != nil {
			return err
		}
		fmt.Println(yellow(fmt.Sprintf("Wrote %d candidates to %s", len(final), command.OutFile)))
	}

	recordOrWarn(func() error { return recorder.Record("gen", params, len(final)) })

	logger.Debug("done", lager.Data{"candidates": len(final)})
	return nil
}

// writeCandidates builds the whole list in memory and writes it in one
// shot, so a failed write never leaves a partial file behind.
func writeCandidates(words []string, path string) error {
	var buf bytes.Buffer
	for _, w := range words {
		buf.WriteString(w)
		buf.WriteByte('\n')
	}
	return ioutil.WriteFile(path, buf.Bytes(), 0644)
}
