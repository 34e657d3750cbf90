package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/zkproto/sigma/render"
)

var specCmd = &cobra.Command{
	Use:   "spec [protocol]",
	Short: "print the specification document of a protocol",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := compileByName(args[0])
		if err != nil {
			return err
		}
		_, err = render.New(p).WriteTo(os.Stdout)
		return err
	},
}

func init() {
	rootCmd.AddCommand(specCmd)
}
