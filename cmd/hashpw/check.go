package main

import (
	"fmt"

	"github.com/pwtools/hashpw/internal/hash"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check <hash>",
	Short: "Verify a password against an existing hash",
	Long:  `Check whether a password matches a previously generated bcrypt or argon2id hash`,
	Example: `  # Verify interactively
  hashpw check '$2a$12$...'

  # Verify with the password from the environment
  HASHPW_PASSWORD=secret hashpw check '$2a$12$...'`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		password, err := getPassword("Enter password: ", false)
		if err != nil {
			return err
		}
		if !hash.Verify(password, args[0]) {
			return fmt.Errorf("password does not match hash")
		}
		fmt.Fprintln(cmd.OutOrStdout(), "OK")
		return nil
	},
}
