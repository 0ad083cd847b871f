package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"www.velocidex.com/golang/vparse"
)

// readInput reads the named file, or stdin when no file is given.
func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(args[0])
}

func newParseCmd() *cobra.Command {
	var typeName string
	var all bool
	var trace bool
	var outputFormat string
	var definitions []string

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse a value of a builtin or defined type from a file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args)
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}

			profile, err := loadProfile(definitions)
			if err != nil {
				return err
			}

			parser, err := profile.GetParser(typeName)
			if err != nil {
				return err
			}

			if trace {
				logrus.SetLevel(logrus.DebugLevel)
				parser = vparse.Traced(logrus.StandardLogger(), typeName, parser)
			}

			var value interface{}
			var rest []byte
			if all {
				value, rest, err = vparse.ParseOnly(vparse.ValuesOf(parser), data)
			} else {
				value, rest, err = vparse.ParseOnly(parser, data)
			}
			if err != nil {
				logrus.WithField("remaining", len(rest)).Debug("parse failed")
				return fmt.Errorf("parse %v: %w", typeName, err)
			}

			return writeValue(cmd.OutOrStdout(), value, outputFormat)
		},
	}

	cmd.Flags().StringVarP(&typeName, "type", "t", "int64", "type to parse, see the types command")
	cmd.Flags().BoolVarP(&all, "all", "a", false, "parse whitespace separated values up to the end of the input")
	cmd.Flags().BoolVar(&trace, "trace", false, "log every parser invocation")
	cmd.Flags().StringSliceVarP(&definitions, "definitions", "d", nil, "YAML file of record definitions")
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "json", "output format: json, yaml or debug")

	return cmd
}
