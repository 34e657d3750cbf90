// Command sigma works with the built-in sigma protocols: it renders their
// specification documents and runs non-interactive proving and verification
// with file-based assignments.
package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/zkproto/sigma"
	"github.com/zkproto/sigma/protocols"
)

var builtins = map[string]func() sigma.Descriptor{
	"schnorr":        protocols.Schnorr,
	"chaum-pedersen": protocols.ChaumPedersen,
	"okamoto":        protocols.Okamoto,
	"zero-check":     protocols.ZeroCheck,
}

func protocolNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func compileByName(name string) (*sigma.Protocol, error) {
	d, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("unknown protocol %q, expected one of %v", name, protocolNames())
	}
	return sigma.Compile(d())
}

var rootCmd = &cobra.Command{
	Use:   "sigma",
	Short: "prove, verify and document sigma protocols",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
