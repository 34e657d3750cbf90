package sigma

import (
	"fmt"

	curve "github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr/hash_to_field"
	fiatshamir "github.com/consensys/gnark-crypto/fiat-shamir"

	"github.com/zkproto/sigma/sym"
)

// transcriptDST domain-separates the challenge hash from any other use of the
// underlying hash function.
const transcriptDST = "SIGMA-FS-V01"

const challengeID = "e"

// challenge derives the Fiat-Shamir challenge from the protocol label, the
// instance (field name and canonical encoding, in declaration order) and the
// commitment (compressed encoding, in output order). The transcript digest is
// reduced into the scalar field with hash_to_field, a wide uniform reduction.
//
// The commitment is bound before the challenge is computed; both prover and
// verifier derive the challenge through this one code path, which is what
// binds a proof to a single label and instance.
func (p *Protocol) challenge(inst Instance, commitments []curve.G1Affine) (fr.Element, error) {
	fs := fiatshamir.NewTranscript(hash_to_field.New([]byte(transcriptDST)), challengeID)

	if err := fs.Bind(challengeID, p.label); err != nil {
		return fr.Element{}, err
	}

	for _, f := range p.instanceFields {
		if err := fs.Bind(challengeID, []byte(f.Name)); err != nil {
			return fr.Element{}, err
		}
		switch f.Role {
		case RoleScalar:
			v, ok := inst.Scalars[f.Name]
			if !ok {
				return fr.Element{}, &sym.UnboundVariableError{Name: f.Name}
			}
			b := v.Bytes()
			if err := fs.Bind(challengeID, b[:]); err != nil {
				return fr.Element{}, err
			}
		case RolePoint:
			v, ok := inst.Points[f.Name]
			if !ok {
				return fr.Element{}, &sym.UnboundVariableError{Name: f.Name}
			}
			b := v.Bytes()
			if err := fs.Bind(challengeID, b[:]); err != nil {
				return fr.Element{}, err
			}
		default:
			return fr.Element{}, fmt.Errorf("%w: field %q has unknown role", ErrInvalidField, f.Name)
		}
	}

	for i := range commitments {
		b := commitments[i].Bytes()
		if err := fs.Bind(challengeID, b[:]); err != nil {
			return fr.Element{}, err
		}
	}

	digest, err := fs.ComputeChallenge(challengeID)
	if err != nil {
		return fr.Element{}, err
	}
	var e fr.Element
	e.SetBytes(digest)
	return e, nil
}
