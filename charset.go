package passgen

import (
	"bytes"
)

// CharacterSet is an ordered, duplicate-free set of single-character strings.
// A set is never modified once built; every operation returns a new set.
type CharacterSet struct {
	elems []string
	index map[string]struct{}
}

// NewCharacterSet builds a set from elems, keeping the first occurrence of each element.
func NewCharacterSet(elems ...string) CharacterSet {
	s := CharacterSet{
		elems: make([]string, 0, len(elems)),
		index: make(map[string]struct{}, len(elems)),
	}
	for _, e := range elems {
		if _, ok := s.index[e]; ok {
			continue
		}
		s.index[e] = struct{}{}
		s.elems = append(s.elems, e)
	}
	return s
}

// Chars Splits str into one element per character
func Chars(str string) CharacterSet {
	elems := make([]string, 0, len(str))
	for _, r := range str {
		elems = append(elems, string(r))
	}
	return NewCharacterSet(elems...)
}

// CharRange returns the characters from first to last inclusive.
func CharRange(first, last rune) CharacterSet {
	elems := make([]string, 0, last-first+1)
	for r := first; r <= last; r++ {
		elems = append(elems, string(r))
	}
	return NewCharacterSet(elems...)
}

func (s CharacterSet) Len() int {
	return len(s.elems)
}

// At returns the i-th element in set order.
func (s CharacterSet) At(i int) string {
	return s.elems[i]
}

func (s CharacterSet) Contains(e string) bool {
	_, ok := s.index[e]
	return ok
}

// Accepts reports whether every character of str is an element of the set.
func (s CharacterSet) Accepts(str string) bool {
	for _, r := range str {
		if !s.Contains(string(r)) {
			return false
		}
	}
	return true
}

// Strings returns a copy of the elements in set order.
func (s CharacterSet) Strings() []string {
	out := make([]string, len(s.elems))
	copy(out, s.elems)
	return out
}

// String Splices all elements in set order
func (s CharacterSet) String() string {
	var buf bytes.Buffer
	for _, e := range s.elems {
		buf.WriteString(e)
	}
	return buf.String()
}

// Union returns the elements of s followed by the elements of o not already in s.
func (s CharacterSet) Union(o CharacterSet) CharacterSet {
	elems := make([]string, 0, len(s.elems)+len(o.elems))
	elems = append(elems, s.elems...)
	elems = append(elems, o.elems...)
	return NewCharacterSet(elems...)
}

// Difference returns the elements of s that are not in o.
func (s CharacterSet) Difference(o CharacterSet) CharacterSet {
	return s.filter(func(e string) bool { return !o.Contains(e) })
}

// Intersect returns the elements of s that are also in o.
func (s CharacterSet) Intersect(o CharacterSet) CharacterSet {
	return s.filter(o.Contains)
}

func (s CharacterSet) filter(keep func(string) bool) CharacterSet {
	elems := make([]string, 0, len(s.elems))
	for _, e := range s.elems {
		if keep(e) {
			elems = append(elems, e)
		}
	}
	return NewCharacterSet(elems...)
}

// sample draws one element uniformly. The set must not be empty.
func (s CharacterSet) sample(src Source) string {
	return s.elems[src.Intn(len(s.elems))]
}
