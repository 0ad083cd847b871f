package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"www.velocidex.com/golang/vparse"
	"www.velocidex.com/golang/vparse/json"
)

func writeValue(out io.Writer, value interface{}, format string) error {
	switch format {
	case "json":
		_, err := fmt.Fprintln(out, vparse.StringIndent(value))
		return err

	case "yaml":
		serialized, err := json.ToYAML(value)
		if err != nil {
			return err
		}
		_, err = out.Write(serialized)
		return err

	case "debug":
		_, err := fmt.Fprint(out, vparse.Dump(value))
		return err
	}
	return fmt.Errorf("unknown format: %s", format)
}

func newJSONCmd() *cobra.Command {
	var chunkSize int
	var selector string
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "json [file]",
		Short: "Decode a stream of JSON values, reading the input in chunks",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if chunkSize <= 0 {
				return fmt.Errorf("invalid chunk size %d", chunkSize)
			}

			reader := cmd.InOrStdin()
			if len(args) > 0 && args[0] != "-" {
				fd, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer fd.Close()
				reader = fd
			}

			scope := json.MakeScope()
			decoder := json.NewDecoder()
			count := 0

			emit := func() error {
				for {
					value, err := decoder.Next()
					if errors.Is(err, vparse.ErrIncomplete) || err == io.EOF {
						return nil
					}
					if err != nil {
						return fmt.Errorf("decode: %w", err)
					}

					count++
					if selector != "" {
						selected, ok := json.Lookup(scope, value, selector)
						if !ok {
							logrus.WithField("value", count).
								Debugf("%v not present", selector)
							continue
						}
						value = selected
					}

					if err := writeValue(cmd.OutOrStdout(), value, outputFormat); err != nil {
						return err
					}
				}
			}

			buf := make([]byte, chunkSize)
			for {
				n, err := reader.Read(buf)
				if n > 0 {
					decoder.Write(buf[:n])
					if err := emit(); err != nil {
						return err
					}
				}
				if err == io.EOF {
					break
				}
				if err != nil {
					return err
				}
			}

			decoder.Close()
			if err := emit(); err != nil {
				return err
			}

			logrus.WithFields(logrus.Fields{
				"values": count,
				"bytes":  decoder.Offset(),
			}).Debug("json done")
			return nil
		},
	}

	cmd.Flags().IntVar(&chunkSize, "chunk-size", 4096, "number of bytes read at a time")
	cmd.Flags().StringVarP(&selector, "select", "s", "", "dotted path to print from each value, e.g. items.0.name")
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "json", "output format: json, yaml or debug")

	return cmd
}
