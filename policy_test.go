package passgen

import (
	"testing"

	"github.com/pkg/errors"
	c "github.com/smartystreets/goconvey/convey"
)

func TestGenerate(t *testing.T) {
	charsets := map[Policy]CharacterSet{
		PolicyRandom:                  AllChars,
		PolicyURLSafe:                 URLSafeChars,
		PolicyVisualSafe:              VisualSafeChars,
		PolicyPronounceable:           Consonants.Union(Vowels),
		PolicyPronounceableVisualSafe: VisualSafeConsonants.Union(VisualSafeVowels),
		PolicyNumeric:                 CharRange('0', '9'),
		PolicyAlphanumeric:            alphanumerics,
	}

	c.Convey("every policy has a character set under test", t, func() {
		c.So(charsets, c.ShouldHaveLength, len(Policies()))
	})

	g := mustNew(t, Choices{32})
	for _, p := range Policies() {
		c.Convey(string(p)+" dispatches to its method", t, func() {
			c.So(p.Valid(), c.ShouldBeTrue)
			for i := 0; i < 50; i++ {
				pw, err := g.Generate(p)
				c.So(err, c.ShouldBeNil)
				c.So(charsets[p].Accepts(pw), c.ShouldBeTrue)
			}
		})
	}

	c.Convey("an unknown policy is rejected", t, func() {
		c.So(Policy("bogus").Valid(), c.ShouldBeFalse)

		pw, err := g.Generate("bogus")
		c.So(pw, c.ShouldBeEmpty)
		c.So(errors.Is(err, ErrUnknownPolicy), c.ShouldBeTrue)
		c.So(err.Error(), c.ShouldContainSubstring, `"bogus"`)
	})
}

func TestPresetsUseExactTarget(t *testing.T) {
	c.Convey("Numeric and Alphanumeric produce exactly the drawn length", t, func() {
		g := mustNew(t, Choices{10})
		for i := 0; i < 50; i++ {
			c.So(g.Numeric(), c.ShouldHaveLength, 10)
			c.So(g.Alphanumeric(), c.ShouldHaveLength, 10)
		}
	})
}
