package main

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"www.velocidex.com/golang/vparse"
)

func newProfile() *vparse.Profile {
	profile := vparse.NewProfile()
	vparse.AddModel(profile)
	return profile
}

// loadProfile adds the records defined in each of the files to the
// builtin types.
func loadProfile(definitions []string) (*vparse.Profile, error) {
	profile := newProfile()
	for _, filename := range definitions {
		data, err := os.ReadFile(filename)
		if err != nil {
			return nil, err
		}

		err = profile.ParseDefinitions(string(data))
		if err != nil {
			return nil, fmt.Errorf("%v: %w", filename, err)
		}
	}
	return profile, nil
}

func newTypesCmd() *cobra.Command {
	var definitions []string

	cmd := &cobra.Command{
		Use:   "types",
		Short: "List the value types known to the parse command",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := loadProfile(definitions)
			if err != nil {
				return err
			}
			descriptions := profile.Describe()

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"Type", "Description"})
			table.SetAutoWrapText(false)
			for _, name := range descriptions.Keys() {
				description, _ := descriptions.GetString(name)
				table.Append([]string{name, description})
			}
			table.Render()
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&definitions, "definitions", "d", nil, "YAML file of record definitions")

	return cmd
}
