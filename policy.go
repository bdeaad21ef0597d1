package passgen

import "github.com/pkg/errors"

// Policy names a character-class policy, as used in configuration.
type Policy string

const (
	PolicyRandom                  Policy = "random"
	PolicyURLSafe                 Policy = "urlsafe"
	PolicyVisualSafe              Policy = "visual_safe"
	PolicyPronounceable           Policy = "pronounceable"
	PolicyPronounceableVisualSafe Policy = "pronounceable_visual_safe"
	PolicyNumeric                 Policy = "numeric"
	PolicyAlphanumeric            Policy = "alphanumeric"
)

var policies = []Policy{
	PolicyRandom,
	PolicyURLSafe,
	PolicyVisualSafe,
	PolicyPronounceable,
	PolicyPronounceableVisualSafe,
	PolicyNumeric,
	PolicyAlphanumeric,
}

// Policies lists every known policy.
func Policies() []Policy {
	return append([]Policy(nil), policies...)
}

func policyNames() []string {
	names := make([]string, 0, len(policies))
	for _, p := range policies {
		names = append(names, string(p))
	}
	return names
}

func (p Policy) Valid() bool {
	for _, known := range policies {
		if p == known {
			return true
		}
	}
	return false
}

// Generate dispatches to the generation method for p.
func (g *Generator) Generate(p Policy) (string, error) {
	switch p {
	case PolicyRandom:
		return g.Random(), nil
	case PolicyURLSafe:
		return g.URLSafe(), nil
	case PolicyVisualSafe:
		return g.VisualSafe(), nil
	case PolicyPronounceable:
		return g.Pronounceable(false), nil
	case PolicyPronounceableVisualSafe:
		return g.Pronounceable(true), nil
	case PolicyNumeric:
		return g.Numeric(), nil
	case PolicyAlphanumeric:
		return g.Alphanumeric(), nil
	}
	return "", errors.Wrapf(ErrUnknownPolicy, "%q", p)
}
