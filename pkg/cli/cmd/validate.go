package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/2getpro/installer/pkg/validate"
)

// validators exposed on the command line, by rule name.
var validatorRules = map[string]func(string) bool{
	"token":   validate.BotToken,
	"id":      validate.TelegramID,
	"id-list": validate.IDList,
	"url":     validate.URL,
	"email":   validate.Email,
	"domain":  validate.Domain,
}

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <rule> <value>",
		Short: "Check a value against one input format rule",
		Long: `validate checks a single value against one of the installer's input
format rules: token, id, id-list, url, email, domain. The exit code
reports the result, so it is scriptable.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rule, value := args[0], args[1]
			fn, ok := validatorRules[rule]
			if !ok {
				return fmt.Errorf("unknown rule %q", rule)
			}
			if !fn(value) {
				printError("%q does not match rule %s", value, rule)
				return fmt.Errorf("validation failed")
			}
			printSuccess("%q matches rule %s", value, rule)
			return nil
		},
	}
	return cmd
}
