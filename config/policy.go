package config

import (
	"errors"

	yaml "gopkg.in/yaml.v2"
)

func LoadPolicyConfig(bs []byte) (*PolicyConfig, error) {
	c := DefaultPolicyConfig()
	err := yaml.Unmarshal(bs, c)
	if err != nil {
		return nil, err
	}

	return c, nil
}

type PolicyConfig struct {
	MinLength     int      `yaml:"min_length"`
	RequireUpper  bool     `yaml:"require_upper"`
	RequireDigit  bool     `yaml:"require_digit"`
	BanSubstrings []string `yaml:"ban_substrings"`
}

func DefaultPolicyConfig() *PolicyConfig {
	return &PolicyConfig{
		MinLength:     8,
		RequireUpper:  true,
		RequireDigit:  true,
		BanSubstrings: []string{"password", "1234"},
	}
}

func (c *PolicyConfig) Validate() []error {
	var errs []error

	if c.MinLength < 1 {
		errs = append(errs, errors.New("min_length must be at least 1"))
	}
	for _, banned := range c.BanSubstrings {
		if banned == "" {
			errs = append(errs, errors.New("ban_substrings entries must not be empty"))
		}
	}

	return errs
}
