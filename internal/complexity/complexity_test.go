package complexity

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckLength(t *testing.T) {
	checker := New(Config{MinLength: 10})

	err := checker.Check("short", "", "")
	var tooShort *TooShortError
	require.ErrorAs(t, err, &tooShort)
	assert.Equal(t, 10, tooShort.Required)

	assert.NoError(t, checker.Check("exactlyten", "", ""))
	assert.NoError(t, checker.Check("longer than ten", "", ""))

	// MinLength 0 disables the rule entirely.
	assert.NoError(t, New(Config{}).Check("", "", ""))
}

func TestCheckClasses(t *testing.T) {
	checker := New(Config{MinClasses: 3})

	err := checker.Check("lowercaseonly", "", "")
	var insufficient *InsufficientClassesError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, 3, insufficient.Required)
	assert.Equal(t, 1, insufficient.Found)

	assert.NoError(t, checker.Check("Mixed123", "", ""))
}

// A password failing both length and class diversity must report the length
// violation: rules run in a fixed order and stop at the first failure.
func TestCheckShortCircuitOrder(t *testing.T) {
	checker := New(Config{MinLength: 10, MinClasses: 3})

	err := checker.Check("abc", "", "")
	var tooShort *TooShortError
	assert.ErrorAs(t, err, &tooShort)
	var insufficient *InsufficientClassesError
	assert.False(t, errors.As(err, &insufficient))
}

func TestCheckUsername(t *testing.T) {
	checker := New(Config{CheckUsername: true})

	// Only a, l, c of the password overlap "alice" and they do not
	// reproduce it contiguously.
	assert.NoError(t, checker.Check("al1c3xyz", "alice", ""))

	err := checker.Check("alicexyz", "alice", "")
	var leaked *UsernameError
	require.ErrorAs(t, err, &leaked)
	assert.Equal(t, "alice", leaked.Username)

	// Case-insensitive on both sides.
	assert.Error(t, checker.Check("AlIcExyz", "ALICE", ""))

	// No username supplied: rule is skipped, not failed.
	assert.NoError(t, checker.Check("alicexyz", "", ""))

	// Disabled rule is skipped even with a username present.
	assert.NoError(t, New(Config{}).Check("alicexyz", "alice", ""))
}

func TestCheckFullName(t *testing.T) {
	checker := New(Config{CheckFullName: true})

	err := checker.Check("xyzsmithxyz", "", "Jane Smith")
	var leaked *NameComponentError
	require.ErrorAs(t, err, &leaked)
	assert.Equal(t, "smith", leaked.Component)

	// Each component is checked independently; neither is spelled out here.
	assert.NoError(t, checker.Check("j4n3sm1th", "", "Jane Smith"))

	assert.NoError(t, checker.Check("xyzsmithxyz", "", ""))
}

func TestCheckDictionary(t *testing.T) {
	checker := New(Config{
		MinLength:  10,
		WordCredit: 1.5,
		Words:      []string{"password", "dragon"},
	})

	// "password123" strips to "123"; effective = 3 + floor(1*1.5) = 4.
	err := checker.Check("password123", "", "")
	var dict *DictionaryError
	require.ErrorAs(t, err, &dict)
	assert.Equal(t, 4, dict.EffectiveLength)
	assert.Equal(t, 10, dict.Required)

	// Matching is case-insensitive.
	err = checker.Check("PASSword123", "", "")
	require.ErrorAs(t, err, &dict)
	assert.Equal(t, 4, dict.EffectiveLength)

	assert.NoError(t, checker.Check("Tr0ub4dor&3X", "", ""))
}

func TestCheckDictionaryPreconditions(t *testing.T) {
	// Zero credit disables the rule.
	assert.NoError(t, New(Config{
		MinLength: 10,
		Words:     []string{"password"},
	}).Check("password12", "", ""))

	// No dictionary disables the rule.
	assert.NoError(t, New(Config{
		MinLength:  10,
		WordCredit: 1.5,
	}).Check("password12", "", ""))

	// Without an active length rule there is no threshold to compare against.
	assert.NoError(t, New(Config{
		WordCredit: 1.5,
		Words:      []string{"password"},
	}).Check("password", "", ""))
}

func TestCheckEndToEnd(t *testing.T) {
	checker := New(Config{
		MinLength:     10,
		MinClasses:    3,
		CheckUsername: true,
		CheckFullName: true,
		WordCredit:    1.5,
		Words:         []string{"password", "dragon"},
	})

	assert.NoError(t, checker.Check("Tr0ub4dor&3X", "alice", "Alice Example"))

	// Both "dragon"s strip away leaving "#": effective = 1 + floor(2*1.5) = 4.
	var dict *DictionaryError
	require.ErrorAs(t, checker.Check("Dragon#Dragon", "", ""), &dict)
	assert.Equal(t, 4, dict.EffectiveLength)
}
