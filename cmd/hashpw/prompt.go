package main

import (
	"fmt"
	"os"
	"syscall"

	"golang.org/x/term"
)

var readPassword = term.ReadPassword

// getPassword resolves the candidate password from HASHPW_PASSWORD, the
// --password flag, or an interactive prompt. With confirm set the password
// must be typed twice and both entries must match.
func getPassword(prompt string, confirm bool) (string, error) {
	// Check environment variable first
	if pass := os.Getenv("HASHPW_PASSWORD"); pass != "" {
		return pass, nil
	}

	// Check if password flag was set
	if passwordFlag != "" {
		return passwordFlag, nil
	}

	// Interactive prompt
	fmt.Print(prompt)
	first, err := readPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	if confirm {
		fmt.Print("Confirm password: ")
		second, err := readPassword(int(syscall.Stdin))
		fmt.Println()
		if err != nil {
			return "", fmt.Errorf("failed to read password: %w", err)
		}
		if string(second) != string(first) {
			return "", fmt.Errorf("passwords do not match")
		}
	}

	return string(first), nil
}
