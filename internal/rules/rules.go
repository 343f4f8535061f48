// Package rules implements ordered (predicate, label) lists evaluated top to bottom.
//
// Rule order is significant: First returns the label of the first matching rule
// and All collects every matching label in list order. All matching is
// case-insensitive.
package rules

import (
	"fmt"
	"strings"
)

// Match kinds accepted in table files.
const (
	MatchPrefix   = "prefix"
	MatchContains = "contains"
	MatchSuffix   = "suffix"
	MatchAny      = "any"
)

// Predicate reports whether a rule applies to s.
type Predicate func(s string) bool

// Prefix matches strings starting with pattern.
func Prefix(pattern string) Predicate {
	p := strings.ToLower(pattern)
	return func(s string) bool { return strings.HasPrefix(strings.ToLower(s), p) }
}

// Contains matches strings containing pattern anywhere.
func Contains(pattern string) Predicate {
	p := strings.ToLower(pattern)
	return func(s string) bool { return strings.Contains(strings.ToLower(s), p) }
}

// Suffix matches strings ending with pattern.
func Suffix(pattern string) Predicate {
	p := strings.ToLower(pattern)
	return func(s string) bool { return strings.HasSuffix(strings.ToLower(s), p) }
}

// Any matches every string. Use it as the last rule for a catch-all.
func Any() Predicate {
	return func(string) bool { return true }
}

// Rule pairs a predicate with the label it yields.
type Rule[L any] struct {
	Label L
	Match Predicate
}

// List is an ordered rule list.
type List[L any] []Rule[L]

// First returns the label of the first rule matching s.
func (l List[L]) First(s string) (L, bool) {
	for _, r := range l {
		if r.Match(s) {
			return r.Label, true
		}
	}
	var zero L
	return zero, false
}

// All returns the labels of every rule matching s, in list order.
func (l List[L]) All(s string) []L {
	var out []L
	for _, r := range l {
		if r.Match(s) {
			out = append(out, r.Label)
		}
	}
	return out
}

// Spec is the serialized form of a rule.
type Spec struct {
	Match   string `yaml:"match" json:"match" validate:"required,oneof=prefix contains suffix any"`
	Pattern string `yaml:"pattern" json:"pattern" validate:"required_unless=Match any"`
	Label   string `yaml:"label" json:"label" validate:"required"`
}

// Predicate builds the predicate described by s.
func (s Spec) Predicate() (Predicate, error) {
	switch s.Match {
	case MatchPrefix:
		return Prefix(s.Pattern), nil
	case MatchContains:
		return Contains(s.Pattern), nil
	case MatchSuffix:
		return Suffix(s.Pattern), nil
	case MatchAny:
		return Any(), nil
	default:
		return nil, fmt.Errorf("unknown match kind %q", s.Match)
	}
}

// Compile turns specs into a rule list, converting labels with the ~string type L.
func Compile[L ~string](specs []Spec) (List[L], error) {
	list := make(List[L], 0, len(specs))
	for i, s := range specs {
		pred, err := s.Predicate()
		if err != nil {
			return nil, fmt.Errorf("rule %d: %w", i, err)
		}
		list = append(list, Rule[L]{Label: L(s.Label), Match: pred})
	}
	return list, nil
}

// MustCompile is like Compile but panics on error. Intended for built-in tables.
func MustCompile[L ~string](specs []Spec) List[L] {
	list, err := Compile[L](specs)
	if err != nil {
		panic(err)
	}
	return list
}
