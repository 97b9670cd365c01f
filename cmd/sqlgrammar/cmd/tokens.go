package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vippsas/sqlgrammar"
	"github.com/vippsas/sqlgrammar/token"
)

var (
	tokensCmd = &cobra.Command{
		Use:   "tokens <file.sql>",
		Short: "Print the raw token stream of a SQL file",
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

			toks, err := sqlgrammar.Tokenize(d, string(source))
			if err != nil {
				log.WithError(err).Error("tokenize failed")
				return err
			}
			for _, t := range toks {
				if t.Kind == token.Whitespace || t.Kind == token.EOF {
					continue
				}
				fmt.Printf("%s\t%s\t%q\n", t.Start, t.Kind, t.Lexeme)
			}
			return nil
		},
	}
)

func init() {
	rootCmd.AddCommand(tokensCmd)
}
