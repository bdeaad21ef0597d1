package passgen

// Character sets used by the generation methods. They are computed once at
// package initialisation and never modified.
var (
	SafeChars = alphanumerics.Union(Chars(`-_.,;+!*()[]{}|~^<>"'$=`))

	// URLUnsafe characters are reserved in URL syntax.
	URLUnsafe = Chars("#%/:@&?")

	// Lookalike glyphs are easily confused with one another, e.g. 0 and O.
	Lookalike = Chars("Ss5Bb8|Iio01lO")

	AllChars        = SafeChars.Union(URLUnsafe)
	URLSafeChars    = SafeChars
	VisualSafeChars = SafeChars.Difference(Lookalike)

	Consonants = NewCharacterSet("b", "c", "d", "f", "g", "h", "j", "k", "l", "m", "n", "p", "r", "s", "t", "v", "w", "x", "z")
	Vowels     = NewCharacterSet("a", "e", "i", "o", "u", "y")

	VisualSafeConsonants = Consonants.Intersect(VisualSafeChars)
	VisualSafeVowels     = Vowels.Intersect(VisualSafeChars)

	// Compound adds common digraphs and trigraphs to Consonants. No generation
	// method draws from it.
	Compound = Consonants.Union(NewCharacterSet(
		"ch", "cr", "fr", "nd", "ng", "nk", "nt", "ph", "pr",
		"qu", "rd", "sch", "sh", "sl", "sp", "st", "th", "tr",
	))
)

var alphanumerics = CharRange('A', 'Z').Union(CharRange('a', 'z')).Union(CharRange('0', '9'))
