// Package test provides helpers to exercise sigma protocol descriptors in
// unit tests.
package test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zkproto/sigma"
)

// Assert is a helper to test protocol descriptors end to end.
type Assert struct {
	t *testing.T
	*require.Assertions
}

// NewAssert returns an Assert helper embedding a testify/require object for
// convenience.
func NewAssert(t *testing.T) *Assert {
	return &Assert{t: t, Assertions: require.New(t)}
}

// Run runs the test function fn as a subtest. The subtest is parametrized by
// the description strings descs.
func (a *Assert) Run(fn func(assert *Assert), descs ...string) {
	desc := strings.Join(descs, "/")
	a.t.Run(desc, func(t *testing.T) {
		fn(&Assert{t: t, Assertions: require.New(t)})
	})
}

// ProverSucceeded fails the test unless all of the following hold:
//
//  1. the descriptor compiles
//  2. proving with the witness succeeds
//  3. the proof round-trips through the byte codec
//  4. the verifier accepts the encoded proof for the instance
func (a *Assert) ProverSucceeded(d sigma.Descriptor, w sigma.Witness, inst sigma.Instance) {
	p, err := sigma.Compile(d)
	a.NoError(err, "compiling descriptor")

	proof, err := p.Prove(w, inst, sigma.CryptoSource())
	a.NoError(err, "proving")

	data, err := proof.MarshalBinary()
	a.NoError(err, "encoding proof")

	decoded, err := p.UnmarshalProof(data)
	a.NoError(err, "decoding proof")
	a.True(proof.Equal(decoded), "proof must round-trip through the codec")

	a.NoError(p.Verify(inst, data), "verifying")
}

// ProverFailed fails the test unless proving with the (invalid) witness
// yields a proof the verifier rejects with ErrVerificationFailed.
func (a *Assert) ProverFailed(d sigma.Descriptor, w sigma.Witness, inst sigma.Instance) {
	p, err := sigma.Compile(d)
	a.NoError(err, "compiling descriptor")

	proof, err := p.Prove(w, inst, sigma.CryptoSource())
	a.NoError(err, "proving must not fail, even with an invalid witness")

	data, err := proof.MarshalBinary()
	a.NoError(err, "encoding proof")

	err = p.Verify(inst, data)
	a.Error(err, "verifier must reject")
	a.True(errors.Is(err, sigma.ErrVerificationFailed), "rejection must be a verification failure, got %v", err)
}
