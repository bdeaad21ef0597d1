package passgen

import (
	"strings"
	"unicode/utf8"

	"github.com/source-build/go-passgen/flog"
)

// Generator produces passwords whose length is drawn from a fixed set of
// candidate lengths. It is immutable after New and may be shared between
// goroutines as long as its Source is safe for concurrent use.
type Generator struct {
	lengths []int
	src     Source
	log     *flog.Logger
}

type Option func(*Generator)

// WithSource replaces the default CryptoSource.
func WithSource(src Source) Option {
	return func(g *Generator) {
		if src != nil {
			g.src = src
		}
	}
}

// WithLogger sets the logger for debug output. Passwords themselves are never logged.
func WithLogger(l *flog.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.log = l
		}
	}
}

// New creates a generator for the given length specification; nil selects
// the default range. It fails with ErrInvalidLengthType or ErrInvalidLengthValue.
func New(length Length, opts ...Option) (*Generator, error) {
	lengths, err := Normalize(length)
	if err != nil {
		return nil, err
	}

	g := &Generator{
		lengths: lengths,
		src:     CryptoSource{},
		log:     flog.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}

	g.log.Debug("password generator created", flog.Ints("lengths", lengths))
	return g, nil
}

// Lengths returns a copy of the candidate lengths.
func (g *Generator) Lengths() []int {
	out := make([]int, len(g.lengths))
	copy(out, g.lengths)
	return out
}

// Random draws from AllChars, URL-unsafe punctuation included.
func (g *Generator) Random() string {
	return g.build(PolicyRandom, g.uniform(AllChars))
}

// URLSafe draws from URLSafeChars, i.e. without any of #%/:@&?.
func (g *Generator) URLSafe() string {
	return g.build(PolicyURLSafe, g.uniform(URLSafeChars))
}

// VisualSafe draws from VisualSafeChars, which leaves out the Lookalike glyphs.
func (g *Generator) VisualSafe() string {
	return g.build(PolicyVisualSafe, g.uniform(VisualSafeChars))
}

// Pronounceable alternates consonants and vowels. A coin flip decides which
// class comes first; after that the classes strictly alternate.
func (g *Generator) Pronounceable(visualSafe bool) string {
	consonants, vowels, policy := Consonants, Vowels, PolicyPronounceable
	if visualSafe {
		consonants, vowels, policy = VisualSafeConsonants, VisualSafeVowels, PolicyPronounceableVisualSafe
	}

	consonant := coin(g.src)
	return g.build(policy, func() string {
		consonant = !consonant
		if consonant {
			return consonants.sample(g.src)
		}
		return vowels.sample(g.src)
	})
}

func (g *Generator) uniform(set CharacterSet) func() string {
	return func() string {
		return set.sample(g.src)
	}
}

// build appends tokens while the password is not longer than the target, so
// with single-character tokens the result is one character past the target.
func (g *Generator) build(policy Policy, next func() string) string {
	target := g.target()

	var sb strings.Builder
	sb.Grow(target + 1)
	for n := 0; n <= target; {
		tok := next()
		sb.WriteString(tok)
		n += utf8.RuneCountInString(tok)
	}

	pw := sb.String()
	g.generated(policy, target, pw)
	return pw
}

// target draws one candidate length uniformly.
func (g *Generator) target() int {
	return g.lengths[g.src.Intn(len(g.lengths))]
}

func (g *Generator) generated(policy Policy, target int, pw string) {
	g.log.Debug("password generated",
		flog.String("policy", string(policy)),
		flog.Int("target", target),
		flog.Int("length", utf8.RuneCountInString(pw)),
	)
}

// Random Short-hand for New(length) followed by Generator.Random
func Random(length Length) (string, error) {
	g, err := New(length)
	if err != nil {
		return "", err
	}
	return g.Random(), nil
}

// URLSafe Short-hand for New(length) followed by Generator.URLSafe
func URLSafe(length Length) (string, error) {
	g, err := New(length)
	if err != nil {
		return "", err
	}
	return g.URLSafe(), nil
}

// VisualSafe Short-hand for New(length) followed by Generator.VisualSafe
func VisualSafe(length Length) (string, error) {
	g, err := New(length)
	if err != nil {
		return "", err
	}
	return g.VisualSafe(), nil
}

// Pronounceable Short-hand for New(length) followed by Generator.Pronounceable
func Pronounceable(length Length, visualSafe bool) (string, error) {
	g, err := New(length)
	if err != nil {
		return "", err
	}
	return g.Pronounceable(visualSafe), nil
}
