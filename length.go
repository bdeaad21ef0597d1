package passgen

import (
	"sort"

	"github.com/pkg/errors"
)

// Bounds of the candidate set used when no length is given.
const (
	DefaultMinLength = 8
	DefaultMaxLength = 12
)

// Length specifies the candidate lengths a Generator draws from. It is
// implemented by Exact, Span and Choices; a nil Length selects the default
// range DefaultMinLength..DefaultMaxLength.
type Length interface {
	isLength()
}

// Exact asks for about N characters: N-1, N and N+1 are all candidates.
// N must be positive.
type Exact int

// Span is an inclusive range of candidate lengths.
type Span struct {
	Min int `mapstructure:"min"`
	Max int `mapstructure:"max"`
}

// Choices is an explicit list of candidate lengths.
type Choices []int

type defaultLength struct{}

// DefaultLength returns the Length used when none is given.
func DefaultLength() Length {
	return defaultLength{}
}

func (Exact) isLength()         {}
func (Span) isLength()          {}
func (Choices) isLength()       {}
func (defaultLength) isLength() {}

// Normalize coerces l into a sorted, duplicate-free list of strictly positive
// candidate lengths.
func Normalize(l Length) ([]int, error) {
	var raw []int
	switch v := l.(type) {
	case nil, defaultLength:
		raw = span(DefaultMinLength, DefaultMaxLength)
	case Exact:
		// a non-positive N is rejected even though N+1 may still be positive
		if n := int(v); n > 0 {
			raw = []int{n - 1, n, n + 1}
		}
	case Span:
		raw = span(v.Min, v.Max)
	case Choices:
		raw = v
	default:
		return nil, errors.Wrapf(ErrInvalidLengthType, "length is neither an integer, a range nor a list (got %T)", l)
	}

	lengths := positiveSorted(raw)
	if len(lengths) == 0 {
		return nil, errors.Wrapf(ErrInvalidLengthValue, "cannot coerce %v (%T) into a password length", l, l)
	}
	return lengths, nil
}

// span lists lo..hi, skipping the non-positive part of the range.
func span(lo, hi int) []int {
	if lo < 1 {
		lo = 1
	}
	if hi < lo {
		return nil
	}
	out := make([]int, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		out = append(out, i)
	}
	return out
}

func positiveSorted(raw []int) []int {
	out := make([]int, 0, len(raw))
	for _, n := range raw {
		if n > 0 {
			out = append(out, n)
		}
	}
	sort.Ints(out)

	uniq := out[:0]
	for _, n := range out {
		if len(uniq) == 0 || n != uniq[len(uniq)-1] {
			uniq = append(uniq, n)
		}
	}
	return uniq
}
