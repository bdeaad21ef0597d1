// Package passgen generates passwords from fixed character-class policies:
// fully random, URL-safe, visually unambiguous and pronounceable.
//
// A Generator is built from a length specification (nil for 8..12, Exact,
// Span or Choices) which is normalised once into a set of candidate lengths.
// Every call draws one target length from that set and appends characters
// while the password is not longer than the target, so a password from the
// single-character policies is always one character longer than the drawn
// target:
//
//	g, err := passgen.New(passgen.Span{Min: 10, Max: 14})
//	if err != nil {
//		return err
//	}
//	pw := g.Pronounceable(true)
//
// The character sets (SafeChars, AllChars, VisualSafeChars, Consonants, ...)
// are built at package initialisation and never change.
package passgen
