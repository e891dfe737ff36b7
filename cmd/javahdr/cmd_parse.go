package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/brask/javahdr/java/parser"
)

func newParseCmd() *cobra.Command {
	var jsonOutput bool
	cmd := &cobra.Command{
		Use:   "parse <file.java>",
		Short: "Parse a Java source file's declaration header and dump the AST",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]
			content, err := os.ReadFile(filename)
			if err != nil {
				return errors.Wrapf(err, "read %s", filename)
			}

			cu, err := parser.Parse(filename, content)
			if err != nil {
				return errors.Wrap(err, "parse")
			}

			if jsonOutput {
				out, err := parser.ToJSON(cu)
				if err != nil {
					return errors.Wrap(err, "encode json")
				}
				fmt.Println(string(out))
				return nil
			}

			printOutline(cu)
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "print the AST as JSON instead of a plain outline")
	return cmd
}
