// Package grammar implements the prose-matching half of the dual-channel
// parser as small composable functions, in the spirit of a nom/nom_supreme
// combinator grammar: each rule consumes a prefix of the input and returns
// what's left, the value it parsed, and whether it matched at all.
package grammar

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/baseball-sim/feedcore/domain"
)

// Rule is the shape every grammar function has: try to consume a prefix of
// input, returning the unconsumed remainder, the parsed value, and ok.
type Rule[T any] func(input string) (rest string, value T, ok bool)

// Lit matches a literal prefix exactly, producing no value.
func Lit(literal string) Rule[struct{}] {
	return func(input string) (string, struct{}, bool) {
		if strings.HasPrefix(input, literal) {
			return input[len(literal):], struct{}{}, true
		}
		return input, struct{}{}, false
	}
}

// Alt tries each rule in order and returns the first match. Order matters:
// callers must list the most specific / longest alternative first, since
// there is no backtracking across a partial match once one rule says ok.
func Alt[T any](rules ...Rule[T]) Rule[T] {
	return func(input string) (string, T, bool) {
		for _, r := range rules {
			if rest, v, ok := r(input); ok {
				return rest, v, ok
			}
		}
		var zero T
		return input, zero, false
	}
}

// Seq2 runs a then b, threading the remainder, and combines their values.
func Seq2[A, B, T any](a Rule[A], b Rule[B], combine func(A, B) T) Rule[T] {
	return func(input string) (string, T, bool) {
		var zero T
		rest, av, ok := a(input)
		if !ok {
			return input, zero, false
		}
		rest, bv, ok := b(rest)
		if !ok {
			return input, zero, false
		}
		return rest, combine(av, bv), true
	}
}

// TakeUntil consumes everything up to (not including) the first occurrence
// of marker and returns it, failing if marker never occurs or the span
// would cross a newline (display lines are single-line).
func TakeUntil(marker string) Rule[string] {
	return func(input string) (string, string, bool) {
		idx := strings.Index(input, marker)
		if idx < 0 {
			return input, "", false
		}
		taken := input[:idx]
		if strings.Contains(taken, "\n") {
			return input, "", false
		}
		return input[idx:], taken, true
	}
}

// NameUntilPeriod extracts a name terminated by the first ". " (a period
// followed by more text) or, if there is none, by the final "." of the
// input; the terminating period is consumed and not part of the name.
// This is the "Kaj Statter Jr." rule: a name that ends in its own period
// is followed by the sentence's period (".."), and only the second period
// terminates, so "Kaj Statter Jr.." yields "Kaj Statter Jr.". A period
// inside a name that is followed by a space ("J. Smith") still ends the
// name there.
func NameUntilPeriod() Rule[string] {
	return func(input string) (string, string, bool) {
		if idx := strings.Index(input, ". "); idx >= 0 {
			name := input[:idx+1]
			if strings.Contains(name, "\n") {
				return input, "", false
			}
			return input[idx+1:], name[:len(name)-1], true
		}
		if strings.HasSuffix(input, ".") && !strings.Contains(input[:len(input)-1], "\n") {
			return "", input[:len(input)-1], true
		}
		return input, "", false
	}
}

// NameFrom matches a specific player's raw name as a literal prefix. The
// feed delivers names unescaped; only the renderer (domain.PlayerDesc.
// DisplayName) substitutes "'" with "&#x27;" for display, per spec.md
// §4.2's "Escaping" note, so the grammar must match against Name, not
// DisplayName.
func NameFrom(player domain.PlayerDesc) Rule[domain.PlayerDesc] {
	name := player.Name
	return func(input string) (string, domain.PlayerDesc, bool) {
		if strings.HasPrefix(input, name) {
			return input[len(name):], player, true
		}
		return input, domain.PlayerDesc{}, false
	}
}

// Count matches the literal "{balls}-{strikes}" count suffix the feed
// renders after every pitch result.
func Count(balls, strikes int) Rule[struct{}] {
	return Lit(fmt.Sprintf("%d-%d", balls, strikes))
}

// ParseInt reads a run of ASCII digits as an integer.
func ParseInt() Rule[int] {
	return func(input string) (string, int, bool) {
		i := 0
		for i < len(input) && input[i] >= '0' && input[i] <= '9' {
			i++
		}
		if i == 0 {
			return input, 0, false
		}
		n, err := strconv.Atoi(input[:i])
		if err != nil {
			return input, 0, false
		}
		return input[i:], n, true
	}
}

// Final requires rule to match and fully consume input, mirroring
// nom_supreme's final_parser: a grammar rule that leaves unconsumed text
// behind is a mismatch, not a partial success.
func Final[T any](r Rule[T]) func(input string) (T, bool) {
	return func(input string) (T, bool) {
		rest, v, ok := r(input)
		if !ok || rest != "" {
			var zero T
			return zero, false
		}
		return v, true
	}
}
