package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zkproto/sigma"
)

var (
	proveWitnessPath  string
	proveInstancePath string
	proveOutPath      string
)

var proveCmd = &cobra.Command{
	Use:   "prove [protocol]",
	Short: "produce a proof for a witness and instance",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := compileByName(args[0])
		if err != nil {
			return err
		}
		w, err := loadWitness(proveWitnessPath)
		if err != nil {
			return err
		}
		inst, err := loadInstance(proveInstancePath)
		if err != nil {
			return err
		}
		proof, err := p.Prove(w, inst, sigma.CryptoSource())
		if err != nil {
			return err
		}
		data, err := proof.MarshalBinary()
		if err != nil {
			return err
		}
		if err := os.WriteFile(proveOutPath, data, 0o600); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %d proof bytes to %s\n", len(data), proveOutPath)
		return nil
	},
}

func init() {
	proveCmd.Flags().StringVar(&proveWitnessPath, "witness", "", "path to the CBOR witness assignment")
	proveCmd.Flags().StringVar(&proveInstancePath, "instance", "", "path to the CBOR instance assignment")
	proveCmd.Flags().StringVar(&proveOutPath, "out", "proof.bin", "path to write the proof to")
	_ = proveCmd.MarkFlagRequired("witness")
	_ = proveCmd.MarkFlagRequired("instance")
	rootCmd.AddCommand(proveCmd)
}
