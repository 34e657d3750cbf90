package sigma_test

import (
	"testing"

	curve "github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"

	"github.com/zkproto/sigma"
	"github.com/zkproto/sigma/protocols"
)

// randomProof derives a syntactically valid proof of the given shape from a
// seed: commitments are scalar multiples of the base point, responses are
// reduced scalars.
func randomProof(seed uint64, nbPoints, nbScalars int) *sigma.Proof {
	var s fr.Element
	s.SetUint64(seed)
	s.Add(&s, ptrFr(fr.NewElement(1)))

	pf := &sigma.Proof{
		Commitments: make([]curve.G1Affine, nbPoints),
		Responses:   make([]fr.Element, nbScalars),
	}
	for i := range pf.Commitments {
		pf.Commitments[i] = mulPoint(basePoint(), s)
		s.Square(&s)
	}
	for i := range pf.Responses {
		pf.Responses[i] = s
		s.Square(&s)
	}
	return pf
}

func ptrFr(v fr.Element) *fr.Element { return &v }

func TestProofRoundTrip(t *testing.T) {
	schnorr, err := sigma.Compile(protocols.Schnorr())
	require.NoError(t, err)
	okamoto, err := sigma.Compile(protocols.Okamoto())
	require.NoError(t, err)
	chaum, err := sigma.Compile(protocols.ChaumPedersen())
	require.NoError(t, err)

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50

	properties := gopter.NewProperties(parameters)

	roundTrip := func(p *sigma.Protocol, nbPoints, nbScalars int) func(uint64) bool {
		return func(seed uint64) bool {
			pf := randomProof(seed, nbPoints, nbScalars)
			data, err := pf.MarshalBinary()
			if err != nil {
				return false
			}
			decoded, err := p.UnmarshalProof(data)
			if err != nil {
				return false
			}
			return pf.Equal(decoded)
		}
	}

	properties.Property("decode(encode(p)) == p, one point one scalar", prop.ForAll(
		roundTrip(schnorr, 1, 1), gen.UInt64(),
	))
	properties.Property("decode(encode(p)) == p, one point two scalars", prop.ForAll(
		roundTrip(okamoto, 1, 2), gen.UInt64(),
	))
	properties.Property("decode(encode(p)) == p, two points one scalar", prop.ForAll(
		roundTrip(chaum, 2, 1), gen.UInt64(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestUnmarshalProofRejectsBadLength(t *testing.T) {
	assert := require.New(t)
	p, w, inst, _ := schnorrSetup(t)

	proof, err := p.Prove(w, inst, sigma.CryptoSource())
	assert.NoError(err)
	data, err := proof.MarshalBinary()
	assert.NoError(err)
	assert.Len(data, curve.SizeOfG1AffineCompressed+fr.Bytes)

	for _, bad := range [][]byte{
		nil,
		{},
		data[:len(data)-1],
		append(append([]byte(nil), data...), 0x00),
	} {
		_, err := p.UnmarshalProof(bad)
		assert.ErrorIs(err, sigma.ErrMalformedProof)
		assert.ErrorIs(p.Verify(inst, bad), sigma.ErrMalformedProof)
	}
}

func TestUnmarshalProofRejectsBadEncodings(t *testing.T) {
	assert := require.New(t)
	p, w, inst, _ := schnorrSetup(t)

	proof, err := p.Prove(w, inst, sigma.CryptoSource())
	assert.NoError(err)
	data, err := proof.MarshalBinary()
	assert.NoError(err)

	// clear the compression mask of the commitment
	badPoint := append([]byte(nil), data...)
	badPoint[0] &= 0x3f
	_, err = p.UnmarshalProof(badPoint)
	assert.ErrorIs(err, sigma.ErrMalformedProof)

	// replace the response with the field modulus, a non-canonical scalar
	badScalar := append([]byte(nil), data...)
	fr.Modulus().FillBytes(badScalar[curve.SizeOfG1AffineCompressed:])
	_, err = p.UnmarshalProof(badScalar)
	assert.ErrorIs(err, sigma.ErrMalformedProof)
}
