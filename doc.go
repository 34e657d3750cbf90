// Package sigma compiles declarative descriptions of sigma protocols into
// non-interactive proving and verification procedures, and into human-readable
// protocol specifications.
//
// A protocol is declared as a Descriptor: a label, a set of witness and
// instance fields, and two symbolic maps over BN254 G1 — the instance function
// f and the witness function psi. psi must be affine-linear in the witness;
// Compile checks this precondition, extracts the per-witness generator
// structure, and returns a Protocol whose Prove and Verify implement the
// generic three-move protocol (commit, challenge, response) made
// non-interactive with the Fiat-Shamir transform.
//
// Built-in protocol descriptors (Schnorr, Chaum-Pedersen, Okamoto, zero-check)
// live in the protocols package; document rendering lives in render.
package sigma

import (
	"github.com/blang/semver/v4"
)

// Version of the sigma module.
var Version = semver.MustParse("0.1.0")
