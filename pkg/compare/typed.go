package compare

import (
	"cmp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Ordered returns the natural ascending order for T.
func Ordered[T cmp.Ordered]() func(a, b *T) int {
	return func(a, b *T) int {
		return cmp.Compare(*a, *b)
	}
}

// Reverse inverts c.
func Reverse[T any](c func(a, b *T) int) func(a, b *T) int {
	return func(a, b *T) int {
		return c(b, a)
	}
}

// By orders elements by the key that key extracts.
//
//	byAge := compare.By(func(p *Person) int { return p.Age })
func By[T any, K cmp.Ordered](key func(*T) K) func(a, b *T) int {
	return func(a, b *T) int {
		return cmp.Compare(key(a), key(b))
	}
}

// Collated orders strings by the collation rules of tag, e.g. language.Swedish
// or language.English with collate.IgnoreCase.
func Collated(tag language.Tag, opts ...collate.Option) func(a, b *string) int {
	c := collate.New(tag, opts...)
	return func(a, b *string) int {
		return c.CompareString(*a, *b)
	}
}

// Folded orders strings after Unicode case folding, so "Go" and "gO" compare equal.
func Folded() func(a, b *string) int {
	fold := cases.Fold()
	return func(a, b *string) int {
		return strings.Compare(fold.String(*a), fold.String(*b))
	}
}
