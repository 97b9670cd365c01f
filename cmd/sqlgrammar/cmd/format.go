package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vippsas/sqlgrammar"
)

var (
	formatCmd = &cobra.Command{
		Use:   "format <file.sql>",
		Short: "Parse a SQL file and print its canonical re-serialisation",
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

			out, err := sqlgrammar.Format(d, string(source))
			if err != nil {
				log.WithError(err).Error("format failed")
				return err
			}
			fmt.Println(out)
			return nil
		},
	}
)

func init() {
	rootCmd.AddCommand(formatCmd)
}
