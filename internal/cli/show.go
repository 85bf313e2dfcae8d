package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func showCmd(opts *options) *cobra.Command {
	var asJSON bool

	c := &cobra.Command{
		Use:   "show",
		Short: "Print the canonical automaton definition",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, _, err := opts.load(cmd)
			if err != nil {
				return err
			}

			var data []byte
			if asJSON {
				data, err = json.MarshalIndent(d.Definition(), "", "  ")
				data = append(data, '\n')
			} else {
				data, err = yaml.Marshal(d)
			}

			if err != nil {
				return fmt.Errorf("encode definition: %w", err)
			}

			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	c.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of YAML")
	return c
}
