package sigma

import (
	"fmt"
	"math/big"
	"time"

	curve "github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/zkproto/sigma/logger"
	"github.com/zkproto/sigma/sym"
)

// Verify checks proof bytes against an instance.
//
// Decoding failures return ErrMalformedProof; a well-formed proof that does
// not satisfy psi(z) == A + e*(f(X) - R) on every output, R being the
// witness-free residual of that output, returns ErrVerificationFailed, with
// no partial acceptance. The challenge is
// recomputed from the label, the instance and the proof's commitment, exactly
// as in Prove, so a proof transplanted to another instance or label is
// rejected. Verify is total over syntactically decodable inputs.
func (p *Protocol) Verify(inst Instance, proof []byte) error {
	log := logger.Logger().With().Str("protocol", string(p.label)).Logger()
	start := time.Now()

	pf, err := p.UnmarshalProof(proof)
	if err != nil {
		return err
	}

	e, err := p.challenge(inst, pf.Commitments)
	if err != nil {
		return fmt.Errorf("sigma: challenge: %w", err)
	}

	// psi applied to the responses, through the same extracted structure
	// the prover committed with
	z := make(map[string]fr.Element, len(p.witnessFields))
	for i, f := range p.witnessFields {
		z[f.Name] = pf.Responses[i]
	}
	b := inst.bindings()
	lhs, err := p.sys.Eval(z, b)
	if err != nil {
		return fmt.Errorf("sigma: response evaluation: %w", err)
	}

	var eBig big.Int
	e.BigInt(&eBig)
	for i := range lhs {
		x, err := sym.EvalPoint(p.f[i], b)
		if err != nil {
			return fmt.Errorf("sigma: instance evaluation: %w", err)
		}
		// the linear part of psi proves knowledge of w with
		// L(w) = f(X) - R, so the residual is subtracted before
		// scaling by the challenge
		if res := p.sys.Equations[i].Residual; res != nil {
			rv, err := sym.EvalPoint(res, b)
			if err != nil {
				return fmt.Errorf("sigma: residual evaluation: %w", err)
			}
			rv.Neg(&rv)
			x.Add(&x, &rv)
		}
		var rhs curve.G1Affine
		rhs.ScalarMultiplication(&x, &eBig)
		rhs.Add(&rhs, &pf.Commitments[i])
		if !lhs[i].Equal(&rhs) {
			return fmt.Errorf("%w: output %d", ErrVerificationFailed, i)
		}
	}

	log.Debug().Dur("took", time.Since(start)).Msg("verified")

	return nil
}
