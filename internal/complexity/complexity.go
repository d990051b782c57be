// Package complexity decides whether a candidate password is acceptable
// before it is hashed. A Checker runs a fixed sequence of rules (length,
// character-class diversity, username and full-name leakage, dictionary
// composition) and reports the first violation as a typed error.
//
// The dictionary rule does not estimate real entropy. Each stripped word is
// credited a fixed equivalent character count toward the minimum length; the
// credit is a tuning knob, not a cryptographic measure.
package complexity

import (
	"math"
	"strings"
	"unicode"
)

// Config holds the thresholds and switches governing which rules run.
// It is read-only once handed to New.
type Config struct {
	// MinLength is the minimum password length. 0 disables the length rule
	// (and with it the dictionary rule, which reuses the same threshold).
	MinLength int

	// MinClasses is the number of distinct character classes (lowercase,
	// uppercase, digit, symbol) the password must span. 0 disables the rule.
	MinClasses int

	// CheckUsername enables the username leakage rule. The rule still only
	// runs when a username is supplied to Check.
	CheckUsername bool

	// CheckFullName enables the full-name leakage rule, applied per
	// whitespace-separated name component.
	CheckFullName bool

	// WordCredit is the equivalent character count credited per stripped
	// dictionary word when computing effective length. 0 disables the
	// dictionary rule.
	WordCredit float64

	// Words is the dictionary used by the composition rule. Entries are
	// normalized to lower case at construction.
	Words []string
}

// Checker validates candidate passwords against a fixed Config. It keeps no
// state between calls and is safe for concurrent use.
type Checker struct {
	cfg   Config
	words []string // normalized and length-sorted once at construction
}

// New builds a Checker. The dictionary is normalized and sorted longest-first
// here so every Check call matches words in the same order.
func New(cfg Config) *Checker {
	c := &Checker{cfg: cfg}
	if cfg.WordCredit > 0 && len(cfg.Words) > 0 {
		normalized := make([]string, 0, len(cfg.Words))
		for _, word := range cfg.Words {
			word = strings.ToLower(strings.TrimSpace(word))
			if word != "" {
				normalized = append(normalized, word)
			}
		}
		c.words = sortForMatching(normalized)
	}
	return c
}

// Check runs the active rules in a fixed order: length, class diversity,
// username, full name, dictionary composition. It returns the first
// violation, or nil when the password is acceptable. Rules whose inputs are
// missing (empty username or full name, no dictionary) are skipped.
func (c *Checker) Check(password, username, fullname string) error {
	if c.cfg.MinLength > 0 && len(password) < c.cfg.MinLength {
		return &TooShortError{Required: c.cfg.MinLength}
	}

	if c.cfg.MinClasses > 0 {
		if found := ClassCount(password); found < c.cfg.MinClasses {
			return &InsufficientClassesError{Required: c.cfg.MinClasses, Found: found}
		}
	}

	// Leakage and dictionary rules compare case-insensitively. The lowered
	// copy is for comparison only and never leaves this function.
	lower := strings.ToLower(password)

	if c.cfg.CheckUsername && username != "" {
		if spellsOut(lower, strings.ToLower(username)) {
			return &UsernameError{Username: username}
		}
	}

	if c.cfg.CheckFullName && fullname != "" {
		for _, component := range strings.Fields(strings.ToLower(fullname)) {
			if spellsOut(lower, component) {
				return &NameComponentError{Component: component}
			}
		}
	}

	if c.cfg.WordCredit > 0 && len(c.words) > 0 && c.cfg.MinLength > 0 {
		remaining, matches := stripSorted(lower, c.words)
		effective := len(remaining) + int(math.Floor(float64(matches)*c.cfg.WordCredit))
		if effective < c.cfg.MinLength {
			return &DictionaryError{EffectiveLength: effective, Required: c.cfg.MinLength}
		}
	}

	return nil
}

// ClassCount reports how many of the four character classes (lowercase,
// uppercase, digit, symbol) appear in the password. Anything that is not a
// letter or digit counts as a symbol.
func ClassCount(password string) int {
	var lower, upper, digit, symbol bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		default:
			symbol = true
		}
	}

	count := 0
	for _, present := range []bool{lower, upper, digit, symbol} {
		if present {
			count++
		}
	}
	return count
}

// spellsOut reports whether the password characters that overlap the name's
// character set reproduce the name as one contiguous run. Both inputs must
// already be lower case.
//
// This is deliberately narrower than a raw substring search: "al1c3xyz" does
// not spell out "alice" because the digits break the run, while "alicexyz"
// does. Membership is per character set, not per position.
func spellsOut(password, name string) bool {
	if name == "" {
		return false
	}
	var filtered strings.Builder
	for _, r := range password {
		if strings.ContainsRune(name, r) {
			filtered.WriteRune(r)
		}
	}
	return strings.Contains(filtered.String(), name)
}
