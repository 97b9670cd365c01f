package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/alecthomas/repr"
	"github.com/spf13/cobra"

	"github.com/vippsas/sqlgrammar"
)

var (
	parseCmd = &cobra.Command{
		Use:   "parse <file.sql>",
		Short: "Parse a SQL file and print its AST",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				_ = cmd.Help()
				return errors.New("expected exactly one file argument")
			}
			log := logger.WithField("request_id", requestID())

			d, err := currentDialect()
			if err != nil {
				return err
			}
			source, err := os.ReadFile(args[0])
			if err != nil {
				log.WithError(err).Error("could not read input file")
				return err
			}

			stmts, err := sqlgrammar.Parse(d, string(source))
			if err != nil {
				log.WithError(err).Error("parse failed")
				return err
			}
			for _, s := range stmts {
				fmt.Println(repr.String(s, repr.Indent("  ")))
			}
			return nil
		},
	}
)

func init() {
	rootCmd.AddCommand(parseCmd)
}
