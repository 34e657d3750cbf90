package sigma

import (
	"fmt"

	curve "github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Proof is the transcript of one non-interactive proving session: the
// commitment points in output order and the response scalars in witness-field
// declaration order. Label and instance are supplied out-of-band by the
// verifier, never embedded.
type Proof struct {
	Commitments []curve.G1Affine
	Responses   []fr.Element
}

// MarshalBinary encodes the proof with the fixed wire layout: compressed G1
// points in output order followed by canonical scalar encodings in
// witness-field order. No framing; the layout is determined entirely by the
// protocol's arity.
func (pf *Proof) MarshalBinary() ([]byte, error) {
	out := make([]byte, 0, len(pf.Commitments)*curve.SizeOfG1AffineCompressed+len(pf.Responses)*fr.Bytes)
	for i := range pf.Commitments {
		b := pf.Commitments[i].Bytes()
		out = append(out, b[:]...)
	}
	for i := range pf.Responses {
		b := pf.Responses[i].Bytes()
		out = append(out, b[:]...)
	}
	return out, nil
}

// Equal reports whether two proofs carry identical commitments and responses.
func (pf *Proof) Equal(other *Proof) bool {
	if len(pf.Commitments) != len(other.Commitments) || len(pf.Responses) != len(other.Responses) {
		return false
	}
	for i := range pf.Commitments {
		if !pf.Commitments[i].Equal(&other.Commitments[i]) {
			return false
		}
	}
	for i := range pf.Responses {
		if !pf.Responses[i].Equal(&other.Responses[i]) {
			return false
		}
	}
	return true
}

// UnmarshalProof decodes proof bytes against the protocol's fixed layout.
// Decoding is strict: a wrong total length, a point failing canonical
// decompression or the subgroup check, or a non-canonical scalar all return
// ErrMalformedProof. It never panics on adversarial input.
func (p *Protocol) UnmarshalProof(data []byte) (*Proof, error) {
	nbPoints := len(p.f)
	nbScalars := len(p.witnessFields)
	want := nbPoints*curve.SizeOfG1AffineCompressed + nbScalars*fr.Bytes
	if len(data) != want {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrMalformedProof, len(data), want)
	}

	pf := &Proof{
		Commitments: make([]curve.G1Affine, nbPoints),
		Responses:   make([]fr.Element, nbScalars),
	}
	offset := 0
	for i := 0; i < nbPoints; i++ {
		if _, err := pf.Commitments[i].SetBytes(data[offset : offset+curve.SizeOfG1AffineCompressed]); err != nil {
			return nil, fmt.Errorf("%w: commitment %d: %v", ErrMalformedProof, i, err)
		}
		offset += curve.SizeOfG1AffineCompressed
	}
	for i := 0; i < nbScalars; i++ {
		if err := pf.Responses[i].SetBytesCanonical(data[offset : offset+fr.Bytes]); err != nil {
			return nil, fmt.Errorf("%w: response %d: %v", ErrMalformedProof, i, err)
		}
		offset += fr.Bytes
	}
	return pf, nil
}
