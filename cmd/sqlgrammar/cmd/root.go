// Package cmd implements the sqlgrammar CLI: parse, format and tokenize
// SQL source files from the command line.
package cmd

import (
	"fmt"

	"github.com/gofrs/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vippsas/sqlgrammar"
	"github.com/vippsas/sqlgrammar/dialect"
)

var (
	rootCmd = &cobra.Command{
		Use:          "sqlgrammar",
		Short:        "sqlgrammar",
		SilenceUsage: true,
		Long:         `CLI tool for tokenizing, parsing and canonically re-formatting SQL text against a chosen dialect.`,
	}

	dialectName string
	logger      = logrus.StandardLogger()
)

// Execute runs the root command.
func Execute() error {
	defaultDialect := "generic"
	if cfg, err := loadConfig(); err == nil && cfg.Dialect != "" {
		defaultDialect = cfg.Dialect
	}
	rootCmd.PersistentFlags().StringVarP(&dialectName, "dialect", "x", defaultDialect, "dialect to parse under: generic, postgres, mssql, ansi")
	return rootCmd.Execute()
}

// requestID tags one CLI invocation's log lines, mirroring how a server
// process would correlate a request's log lines.
func requestID() string {
	id, err := uuid.NewV4()
	if err != nil {
		return "unknown"
	}
	return id.String()
}

func currentDialect() (dialect.Dialect, error) {
	d, ok := sqlgrammar.Dialects[dialectName]
	if !ok {
		return nil, fmt.Errorf("unknown dialect %q", dialectName)
	}
	return d, nil
}
