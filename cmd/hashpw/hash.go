package main

import (
	"fmt"

	"github.com/pwtools/hashpw/internal/complexity"
	"github.com/pwtools/hashpw/internal/config"
	"github.com/pwtools/hashpw/internal/hash"
	"github.com/pwtools/hashpw/internal/logging"
	"github.com/pwtools/hashpw/internal/wordlist"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	methodFlag     string
	minLengthFlag  int
	minClassesFlag int
	wordCreditFlag float64
	dictFlag       string
	usernameFlag   string
	fullnameFlag   string
	passwordFlag   string
	logLevelFlag   string
	logFormatFlag  string
)

func init() {
	flags := rootCmd.Flags()
	flags.StringVarP(&methodFlag, "method", "m", "", "hashing method: bcrypt or argon2id")
	flags.IntVar(&minLengthFlag, "min-length", 0, "minimum password length (0 disables the rule)")
	flags.IntVar(&minClassesFlag, "min-classes", 0, "minimum distinct character classes (0 disables the rule)")
	flags.Float64Var(&wordCreditFlag, "word-credit", 0, "length credit per stripped dictionary word (0 disables the rule)")
	flags.StringVarP(&dictFlag, "dict", "d", "", "path to a word list the password is stripped against, one word per line")
	flags.StringVarP(&usernameFlag, "username", "u", "", "username the password must not spell out")
	flags.StringVarP(&fullnameFlag, "fullname", "n", "", "full name the password must not spell out")

	persistent := rootCmd.PersistentFlags()
	persistent.StringVarP(&passwordFlag, "password", "p", "", "password to process (or use HASHPW_PASSWORD env var)")
	persistent.StringVar(&logLevelFlag, "log-level", "", "log level: debug, info, warn, error")
	persistent.StringVar(&logFormatFlag, "log-format", "", "log format: json, console, or auto")
}

func runHash(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logging.Init(logging.Config{
		Level:     cfg.LogLevel,
		Format:    cfg.LogFormat,
		Component: "hashpw",
	})

	method, err := hash.ParseMethod(cfg.Method)
	if err != nil {
		return err
	}

	var words []string
	if cfg.DictPath != "" {
		if words, err = wordlist.Load(cfg.DictPath); err != nil {
			return err
		}
		log.Debug().Int("words", len(words)).Str("path", cfg.DictPath).Msg("Word list loaded")
	}

	checker := complexity.New(complexity.Config{
		MinLength:     cfg.MinLength,
		MinClasses:    cfg.MinClasses,
		CheckUsername: cfg.CheckUsername,
		CheckFullName: cfg.CheckFullName,
		WordCredit:    cfg.WordCredit,
		Words:         words,
	})

	password, err := getPassword("Enter password: ", true)
	if err != nil {
		return err
	}

	// First violation only; the caller fixes one thing and retries.
	if err := checker.Check(password, usernameFlag, fullnameFlag); err != nil {
		return fmt.Errorf("password rejected: %w", err)
	}

	hashed, err := hash.Hash(method, password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), hashed)
	return nil
}

// loadConfig resolves env-driven settings and applies explicit flag
// overrides on top.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("method") {
		cfg.Method = methodFlag
	}
	if flags.Changed("min-length") {
		if minLengthFlag < 0 {
			return nil, fmt.Errorf("min-length must not be negative")
		}
		cfg.MinLength = minLengthFlag
	}
	if flags.Changed("min-classes") {
		if minClassesFlag < 0 {
			return nil, fmt.Errorf("min-classes must not be negative")
		}
		cfg.MinClasses = minClassesFlag
	}
	if flags.Changed("word-credit") {
		if wordCreditFlag < 0 {
			return nil, fmt.Errorf("word-credit must not be negative")
		}
		cfg.WordCredit = wordCreditFlag
	}
	if flags.Changed("dict") {
		cfg.DictPath = dictFlag
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevelFlag
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = logFormatFlag
	}

	return cfg, nil
}
