package sigma

import (
	"fmt"
	"time"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/zkproto/sigma/logger"
	"github.com/zkproto/sigma/sym"
)

// Prove runs one non-interactive proving session.
//
// It samples a fresh blinding scalar per witness field from src, commits to
// the witness function applied to the blindings, derives the Fiat-Shamir
// challenge, and returns the proof with responses z_i = r_i + e*w_i. Given a
// compiled protocol, a witness binding every witness field and a functioning
// source, Prove does not fail.
func (p *Protocol) Prove(w Witness, inst Instance, src RandomSource) (*Proof, error) {
	log := logger.Logger().With().Str("protocol", string(p.label)).Logger()
	start := time.Now()

	blinding := make(map[string]fr.Element, len(p.witnessFields))
	for _, f := range p.witnessFields {
		r, err := src.SampleScalar()
		if err != nil {
			return nil, fmt.Errorf("sigma: sampling blinding for %q: %w", f.Name, err)
		}
		blinding[f.Name] = r
	}

	// commitment: psi applied to the blindings, via the extracted structure
	commitments, err := p.sys.Eval(blinding, inst.bindings())
	if err != nil {
		return nil, fmt.Errorf("sigma: commit: %w", err)
	}

	e, err := p.challenge(inst, commitments)
	if err != nil {
		return nil, fmt.Errorf("sigma: challenge: %w", err)
	}

	responses := make([]fr.Element, len(p.witnessFields))
	for i, f := range p.witnessFields {
		wv, ok := w[f.Name]
		if !ok {
			return nil, fmt.Errorf("sigma: witness: %w", &sym.UnboundVariableError{Name: f.Name})
		}
		r := blinding[f.Name]
		var z fr.Element
		z.Mul(&e, &wv)
		z.Add(&z, &r)
		responses[i] = z
	}

	log.Debug().Dur("took", time.Since(start)).Msg("proved")

	return &Proof{Commitments: commitments, Responses: responses}, nil
}
