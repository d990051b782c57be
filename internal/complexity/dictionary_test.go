package complexity

import "testing"

func TestStripWords(t *testing.T) {
	tests := []struct {
		name        string
		password    string
		words       []string
		want        string
		wantMatches int
	}{
		{
			name:     "empty dictionary",
			password: "sunshine",
			want:     "sunshine",
		},
		{
			name:     "no matches",
			password: "zebra",
			words:    []string{"password", "dragon"},
			want:     "zebra",
		},
		{
			name:        "longest word wins over its prefix",
			password:    "category",
			words:       []string{"cat", "category"},
			want:        "",
			wantMatches: 1,
		},
		{
			name:     "repeated runs collapse without any match",
			password: "xxxxyyyy",
			words:    []string{},
			want:     "xy",
		},
		{
			name:        "collapse happens after removal",
			password:    "aapasswordaa",
			words:       []string{"password"},
			want:        "a",
			wantMatches: 1,
		},
		{
			name:        "all occurrences of a word are removed",
			password:    "dogcatdog",
			words:       []string{"dog"},
			want:        "cat",
			wantMatches: 2,
		},
		{
			name:     "single character words never match",
			password: "abcd",
			words:    []string{"a", "b"},
			want:     "abcd",
		},
		{
			name:        "later words match the reduced string",
			password:    "catdogcat",
			words:       []string{"cat", "catdog"},
			want:        "",
			wantMatches: 2,
		},
		{
			name:        "equal length words match lexicographically",
			password:    "abcd",
			words:       []string{"bcd", "abc"},
			want:        "d",
			wantMatches: 1,
		},
		{
			name:        "overlapping occurrences count once",
			password:    "aaa",
			words:       []string{"aa"},
			want:        "a",
			wantMatches: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, matches := StripWords(tt.password, tt.words)
			if got != tt.want {
				t.Errorf("StripWords(%q, %v) remaining = %q, want %q", tt.password, tt.words, got, tt.want)
			}
			if matches != tt.wantMatches {
				t.Errorf("StripWords(%q, %v) matches = %d, want %d", tt.password, tt.words, matches, tt.wantMatches)
			}
		})
	}
}

func TestStripWordsLeavesInputUntouched(t *testing.T) {
	words := []string{"cat", "category"}
	StripWords("category", words)
	if words[0] != "cat" || words[1] != "category" {
		t.Errorf("StripWords reordered the caller's dictionary: %v", words)
	}
}

func TestClassCount(t *testing.T) {
	tests := []struct {
		password string
		want     int
	}{
		{"", 0},
		{"abc", 1},
		{"ABC", 1},
		{"123", 1},
		{"!!!", 1},
		{"abc123", 2},
		{"Abc123", 3},
		{"Abc123!", 4},
		{"Tr0ub4dor&3X", 4},
	}

	for _, tt := range tests {
		if got := ClassCount(tt.password); got != tt.want {
			t.Errorf("ClassCount(%q) = %d, want %d", tt.password, got, tt.want)
		}
	}
}

// Adding a character of an absent class must never lower the count.
func TestClassCountMonotonic(t *testing.T) {
	base := "abc"
	count := ClassCount(base)
	for _, add := range []string{"Z", "7", "#"} {
		if got := ClassCount(base + add); got <= count {
			t.Errorf("ClassCount(%q) = %d, want > %d", base+add, got, count)
		}
	}
}
