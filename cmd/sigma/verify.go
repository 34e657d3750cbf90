package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	verifyInstancePath string
	verifyProofPath    string
)

var verifyCmd = &cobra.Command{
	Use:   "verify [protocol]",
	Short: "verify a proof against an instance",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := compileByName(args[0])
		if err != nil {
			return err
		}
		inst, err := loadInstance(verifyInstancePath)
		if err != nil {
			return err
		}
		data, err := os.ReadFile(verifyProofPath)
		if err != nil {
			return err
		}
		if err := p.Verify(inst, data); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "proof verified")
		return nil
	},
}

func init() {
	verifyCmd.Flags().StringVar(&verifyInstancePath, "instance", "", "path to the CBOR instance assignment")
	verifyCmd.Flags().StringVar(&verifyProofPath, "proof", "proof.bin", "path to the proof")
	_ = verifyCmd.MarkFlagRequired("instance")
	rootCmd.AddCommand(verifyCmd)
}
