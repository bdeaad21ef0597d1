package passgen_test

import (
	"fmt"
	"unicode/utf8"

	passgen "github.com/source-build/go-passgen"
)

func ExampleNew() {
	g, err := passgen.New(passgen.Choices{10})
	if err != nil {
		panic(err)
	}

	fmt.Println(g.Lengths())
	fmt.Println(utf8.RuneCountInString(g.URLSafe()))
	// Output:
	// [10]
	// 11
}

func ExampleNormalize() {
	lengths, err := passgen.Normalize(passgen.Exact(5))
	fmt.Println(lengths, err)

	_, err = passgen.Normalize(passgen.Exact(0))
	fmt.Println(err)
	// Output:
	// [4 5 6] <nil>
	// cannot coerce 0 (passgen.Exact) into a password length: invalid length value
}

func ExampleParseLength() {
	l, err := passgen.ParseLength("8-12")
	fmt.Printf("%#v %v\n", l, err)
	// Output:
	// passgen.Span{Min:8, Max:12} <nil>
}
