package commands

import (
	"fmt"
	"io/ioutil"
	"os"

	"code.cloudfoundry.org/lager"
	"github.com/hashicorp/go-multierror"

	"github.com/forgelabs/wordforge/analyze"
	"github.com/forgelabs/wordforge/config"
	"github.com/forgelabs/wordforge/scanners/linescanner"
)

type AnalyzeCommand struct {
	Args struct {
		Path string `positional-arg-name:"FILE" description:"candidates file, one password per line"`
	} `positional-args:"yes" required:"yes"`
	PolicyFile string `long:"policy-file" description:"path to YAML policy file" value-name:"PATH"`
	Debug      bool   `long:"debug" description:"enables debug logging"`
}

func (command *AnalyzeCommand) Execute(args []string) error {
	logger := newLogger("analyze", command.Debug)

	policy, err := command.loadPolicy()
	if err != nil {
		return err
	}

	file, err := os.Open(command.Args.Path)
	if err != nil {
		return err
	}
	defer file.Close()

	fmt.Println(cyan("password,entropy_bits,policy_ok,failures"))

	analyzer := analyze.NewAnalyzer(policy)
	scanner := linescanner.New(file, command.Args.Path)

	return analyzer.Analyze(logger, scanner, func(_ lager.Logger, report analyze.Report) error {
		fmt.Println(report.CSV())
		return nil
	})
}

func (command *AnalyzeCommand) loadPolicy() (analyze.Policy, error) {
	if command.PolicyFile == "" {
		return analyze.DefaultPolicy(), nil
	}

	bs, err := ioutil.ReadFile(command.PolicyFile)
	if err != nil {
		return analyze.Policy{}, err
	}

	c, err := config.LoadPolicyConfig(bs)
	if err != nil {
		return analyze.Policy{}, err
	}

	if errs := c.Validate(); len(errs) > 0 {
		var result error
		for _, e := range errs {
			result = multierror.Append(result, e)
		}
		return analyze.Policy{}, result
	}

	return analyze.Policy{
		MinLength:     c.MinLength,
		RequireUpper:  c.RequireUpper,
		RequireDigit:  c.RequireDigit,
		BanSubstrings: c.BanSubstrings,
	}, nil
}
