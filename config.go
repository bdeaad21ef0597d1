package passgen

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config describes a batch of passwords to generate. Length takes any shape
// ParseLength understands.
type Config struct {
	Policy Policy `mapstructure:"policy" validate:"required,policy"`
	Length any    `mapstructure:"length"`
	Count  int    `mapstructure:"count" validate:"gte=1,lte=10000"`
}

// ConfigFlags returns the flags LoadConfig understands, for hosts that expose
// password generation on their own command line.
func ConfigFlags(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.String("policy", string(PolicyRandom), "password policy: "+strings.Join(policyNames(), ", "))
	fs.String("length", "", `candidate lengths: "12", "8-12" or "8,10,12" (default 8-12)`)
	fs.Int("count", 1, "number of passwords to generate")
	return fs
}

// LoadConfig reads configuration from file and fs. Either may be empty/nil.
// Flags that were set on the command line take precedence over the file.
func LoadConfig(file string, fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetDefault("policy", string(PolicyRandom))
	v.SetDefault("count", 1)

	if fs != nil {
		if err := v.BindPFlags(fs); err != nil {
			return nil, errors.Wrap(err, "binding flags")
		}
	}

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "reading config %s", file)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "decoding config")
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	if _, err := cfg.LengthSpec(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) LengthSpec() (Length, error) {
	return ParseLength(c.Length)
}

// NewFromConfig builds a Generator for the configured length.
func NewFromConfig(c *Config, opts ...Option) (*Generator, error) {
	length, err := c.LengthSpec()
	if err != nil {
		return nil, err
	}
	return New(length, opts...)
}

// Generate produces Count passwords with the configured policy.
func (c *Config) Generate(ctx context.Context, opts ...Option) ([]string, error) {
	g, err := NewFromConfig(c, opts...)
	if err != nil {
		return nil, err
	}
	return g.GenerateN(ctx, c.Policy, c.Count)
}
