package protocols_test

import (
	"math/big"
	"testing"

	curve "github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/zkproto/sigma"
	"github.com/zkproto/sigma/protocols"
	"github.com/zkproto/sigma/sym"
	"github.com/zkproto/sigma/test"
)

func randScalar(t *testing.T) fr.Element {
	t.Helper()
	var e fr.Element
	if _, err := e.SetRandom(); err != nil {
		t.Fatal(err)
	}
	return e
}

func scalarMul(p sym.Point, s fr.Element) curve.G1Affine {
	base, err := sym.EvalPoint(p, sym.Bindings{})
	if err != nil {
		panic(err)
	}
	var bi big.Int
	s.BigInt(&bi)
	var res curve.G1Affine
	res.ScalarMultiplication(&base, &bi)
	return res
}

func TestSchnorr(t *testing.T) {
	assert := test.NewAssert(t)

	sk := randScalar(t)
	pk := scalarMul(protocols.G, sk)

	assert.ProverSucceeded(protocols.Schnorr(),
		sigma.Witness{"privatekey": sk},
		sigma.Instance{Points: map[string]curve.G1Affine{"pubkey": pk}},
	)

	// wrong key
	assert.ProverFailed(protocols.Schnorr(),
		sigma.Witness{"privatekey": randScalar(t)},
		sigma.Instance{Points: map[string]curve.G1Affine{"pubkey": pk}},
	)
}

func TestChaumPedersen(t *testing.T) {
	assert := test.NewAssert(t)

	x := randScalar(t)
	inst := sigma.Instance{Points: map[string]curve.G1Affine{
		"point1": scalarMul(protocols.G, x),
		"point2": scalarMul(protocols.H, x),
	}}

	assert.ProverSucceeded(protocols.ChaumPedersen(), sigma.Witness{"x": x}, inst)

	// equal discrete logs across generators is what is being proven;
	// a witness matching only the first point must be rejected
	mismatch := sigma.Instance{Points: map[string]curve.G1Affine{
		"point1": scalarMul(protocols.G, x),
		"point2": scalarMul(protocols.H, randScalar(t)),
	}}
	assert.ProverFailed(protocols.ChaumPedersen(), sigma.Witness{"x": x}, mismatch)
}

func TestOkamoto(t *testing.T) {
	assert := test.NewAssert(t)

	x, y := randScalar(t), randScalar(t)
	var point curve.G1Affine
	xg := scalarMul(protocols.G, x)
	yh := scalarMul(protocols.H, y)
	point.Add(&xg, &yh)

	assert.ProverSucceeded(protocols.Okamoto(),
		sigma.Witness{"x": x, "y": y},
		sigma.Instance{Points: map[string]curve.G1Affine{"point": point}},
	)
}

func TestZeroCheck(t *testing.T) {
	assert := test.NewAssert(t)

	secret := randScalar(t)
	pk := scalarMul(protocols.G, randScalar(t))

	var bi big.Int
	secret.BigInt(&bi)
	var handle curve.G1Affine
	handle.ScalarMultiplication(&pk, &bi)

	inst := sigma.Instance{Points: map[string]curve.G1Affine{
		"pubkey":     pk,
		"commitment": scalarMul(protocols.G, secret),
		"handle":     handle,
	}}
	assert.ProverSucceeded(protocols.ZeroCheck(), sigma.Witness{"secretkey": secret}, inst)

	// commitment and handle derived from a different secret
	wrong := randScalar(t)
	var wrongHandle curve.G1Affine
	wrong.BigInt(&bi)
	wrongHandle.ScalarMultiplication(&pk, &bi)
	badInst := sigma.Instance{Points: map[string]curve.G1Affine{
		"pubkey":     pk,
		"commitment": scalarMul(protocols.G, wrong),
		"handle":     wrongHandle,
	}}
	assert.ProverFailed(protocols.ZeroCheck(), sigma.Witness{"secretkey": secret}, badInst)
}
