// Package protocols provides ready-made sigma protocol descriptors for a few
// classic proofs of knowledge over BN254 G1.
package protocols

import (
	curve "github.com/consensys/gnark-crypto/ecc/bn254"

	"github.com/zkproto/sigma/sym"
)

// G is the standard G1 generator.
var G = sym.Generator("G", g1Gen())

// H is a second generator with unknown discrete log relative to G, derived by
// hashing a fixed string to the curve.
var H = sym.Generator("H", hGen())

func g1Gen() curve.G1Affine {
	_, _, g, _ := curve.Generators()
	return g
}

func hGen() curve.G1Affine {
	h, err := curve.HashToG1([]byte("sigma/protocols/generator/H"), []byte("SIGMA-PROTOCOLS-V01"))
	if err != nil {
		panic(err)
	}
	return h
}
