package passgen

import (
	"testing"

	c "github.com/smartystreets/goconvey/convey"
)

func TestCharacterSetAlgebra(t *testing.T) {
	c.Convey("Given two overlapping sets", t, func() {
		a := Chars("abcd")
		b := Chars("cdef")

		c.Convey("Union keeps the left order and appends new elements", func() {
			c.So(a.Union(b).String(), c.ShouldEqual, "abcdef")
			c.So(b.Union(a).String(), c.ShouldEqual, "cdefab")
		})

		c.Convey("Difference keeps the left order", func() {
			c.So(a.Difference(b).String(), c.ShouldEqual, "ab")
		})

		c.Convey("Intersect keeps the left order", func() {
			c.So(b.Intersect(a).String(), c.ShouldEqual, "cd")
		})

		c.Convey("the operands are unchanged", func() {
			_ = a.Union(b)
			_ = a.Difference(b)
			c.So(a.String(), c.ShouldEqual, "abcd")
			c.So(b.String(), c.ShouldEqual, "cdef")
		})
	})

	c.Convey("NewCharacterSet drops duplicates", t, func() {
		s := NewCharacterSet("x", "y", "x", "z", "y")
		c.So(s.Strings(), c.ShouldResemble, []string{"x", "y", "z"})
		c.So(s.Len(), c.ShouldEqual, 3)
		c.So(s.At(2), c.ShouldEqual, "z")
	})

	c.Convey("Strings returns a copy", t, func() {
		s := Chars("abc")
		elems := s.Strings()
		elems[0] = "z"
		c.So(s.String(), c.ShouldEqual, "abc")
	})

	c.Convey("the zero set is empty", t, func() {
		var s CharacterSet
		c.So(s.Len(), c.ShouldEqual, 0)
		c.So(s.Contains("a"), c.ShouldBeFalse)
		c.So(s.Accepts(""), c.ShouldBeTrue)
	})

	c.Convey("Accepts checks every character", t, func() {
		c.So(Vowels.Accepts("aeiouy"), c.ShouldBeTrue)
		c.So(Vowels.Accepts("ab"), c.ShouldBeFalse)
	})
}

func TestRegistry(t *testing.T) {
	c.Convey("set sizes", t, func() {
		c.So(SafeChars.Len(), c.ShouldEqual, 85)
		c.So(URLUnsafe.Len(), c.ShouldEqual, 7)
		c.So(AllChars.Len(), c.ShouldEqual, 92)
		c.So(URLSafeChars.Len(), c.ShouldEqual, SafeChars.Len())
		c.So(Lookalike.Len(), c.ShouldEqual, 14)
		c.So(VisualSafeChars.Len(), c.ShouldEqual, 71)
		c.So(Consonants.Len(), c.ShouldEqual, 19)
		c.So(Vowels.Len(), c.ShouldEqual, 6)
		c.So(VisualSafeConsonants.Len(), c.ShouldEqual, 16)
		c.So(VisualSafeVowels.Len(), c.ShouldEqual, 4)
		c.So(Compound.Len(), c.ShouldEqual, 37)
	})

	c.Convey("SafeChars holds letters, digits and the fixed punctuation", t, func() {
		c.So(SafeChars.Accepts("AZaz09"), c.ShouldBeTrue)
		c.So(SafeChars.Accepts(`-_.,;+!*()[]{}|~^<>"'$=`), c.ShouldBeTrue)
		for _, u := range URLUnsafe.Strings() {
			c.So(SafeChars.Contains(u), c.ShouldBeFalse)
		}
	})

	c.Convey("AllChars is SafeChars followed by URLUnsafe", t, func() {
		c.So(AllChars.String(), c.ShouldEqual, SafeChars.String()+URLUnsafe.String())
	})

	c.Convey("VisualSafeChars has no lookalike glyph", t, func() {
		for _, l := range Lookalike.Strings() {
			c.So(VisualSafeChars.Contains(l), c.ShouldBeFalse)
		}
		c.So(VisualSafeChars.Len(), c.ShouldEqual, SafeChars.Len()-Lookalike.Len())
	})

	c.Convey("visually safe consonants and vowels", t, func() {
		c.So(VisualSafeConsonants.String(), c.ShouldEqual, "cdfghjkmnprtvwxz")
		c.So(VisualSafeVowels.String(), c.ShouldEqual, "aeuy")
	})

	c.Convey("consonants and vowels are disjoint", t, func() {
		c.So(Consonants.Intersect(Vowels).Len(), c.ShouldEqual, 0)
	})

	c.Convey("Compound extends Consonants with clusters", t, func() {
		c.So(Compound.Contains("sch"), c.ShouldBeTrue)
		c.So(Compound.Contains("b"), c.ShouldBeTrue)
		c.So(Compound.At(Consonants.Len()), c.ShouldEqual, "ch")
	})
}
