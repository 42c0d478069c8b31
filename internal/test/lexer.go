package test

import (
	"math/rand"
	"strings"
)

var (
	literals  = []string{"0", "1", "42", "1234567", `"this is a string"`, `'single quoted'`, `""`}
	operators = []string{"+", "-", "*", "/"}
	trivia    = []string{" ", "\n", "\t", "// comment\n", "/* block */", "/* multi\nline */"}
)

// GetRandomSource returns size well-formed statements separated by random
// whitespace and comments.
func GetRandomSource(size int) string {
	return GetRandomSourceWithRand(rand.New(rand.NewSource(rand.Int63())), size)
}

func GetRandomSourceWithRand(rng *rand.Rand, size int) string {
	var src strings.Builder
	for i := 0; i < size; i++ {
		src.WriteString(pick(rng, trivia))
		src.WriteString(pick(rng, literals))

		for n := rng.Intn(4); n > 0; n-- {
			src.WriteString(pick(rng, trivia))
			// Spaced so a following comment cannot merge with a slash
			src.WriteString(" " + pick(rng, operators) + " ")
			src.WriteString(pick(rng, trivia))
			src.WriteString(pick(rng, literals))
		}

		src.WriteString(";")
	}

	return src.String()
}

func pick(rng *rand.Rand, from []string) string {
	return from[rng.Intn(len(from))]
}
