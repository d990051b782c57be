package complexity

import "fmt"

// The violation types below form the complete set of reasons Check can
// reject a password. Callers match them with errors.As; the messages are a
// default rendering and carry the same values as the struct fields.

// TooShortError reports a password below the configured minimum length.
type TooShortError struct {
	Required int
}

func (e *TooShortError) Error() string {
	return fmt.Sprintf("password must be at least %d characters long", e.Required)
}

// InsufficientClassesError reports a password drawing on too few character
// classes.
type InsufficientClassesError struct {
	Required int
	Found    int
}

func (e *InsufficientClassesError) Error() string {
	return fmt.Sprintf("password uses %d of the 4 character classes, needs at least %d", e.Found, e.Required)
}

// UsernameError reports a password that spells out the username.
type UsernameError struct {
	Username string
}

func (e *UsernameError) Error() string {
	return "password must not contain the username"
}

// NameComponentError reports a password that spells out part of the user's
// full name.
type NameComponentError struct {
	Component string
}

func (e *NameComponentError) Error() string {
	return fmt.Sprintf("password must not contain the name %q", e.Component)
}

// DictionaryError reports a password built mostly from dictionary words.
type DictionaryError struct {
	EffectiveLength int
	Required        int
}

func (e *DictionaryError) Error() string {
	return fmt.Sprintf("password is mostly dictionary words: effective length %d, needs at least %d", e.EffectiveLength, e.Required)
}
