package main

import (
	"fmt"
	"os"

	curve "github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/fxamacker/cbor/v2"

	"github.com/zkproto/sigma"
)

// assignmentFile is the on-disk shape of a witness or instance assignment:
// CBOR maps of field name to canonical encoding (32-byte big-endian scalars,
// compressed G1 points).
type assignmentFile struct {
	Scalars map[string][]byte `cbor:"scalars,omitempty"`
	Points  map[string][]byte `cbor:"points,omitempty"`
}

func readAssignmentFile(path string) (*assignmentFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var af assignmentFile
	if err := cbor.Unmarshal(data, &af); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return &af, nil
}

func loadWitness(path string) (sigma.Witness, error) {
	af, err := readAssignmentFile(path)
	if err != nil {
		return nil, err
	}
	if len(af.Points) > 0 {
		return nil, fmt.Errorf("%s: witness assignments are scalar-only", path)
	}
	w := make(sigma.Witness, len(af.Scalars))
	for name, raw := range af.Scalars {
		var e fr.Element
		if err := e.SetBytesCanonical(raw); err != nil {
			return nil, fmt.Errorf("%s: scalar %q: %w", path, name, err)
		}
		w[name] = e
	}
	return w, nil
}

func loadInstance(path string) (sigma.Instance, error) {
	af, err := readAssignmentFile(path)
	if err != nil {
		return sigma.Instance{}, err
	}
	inst := sigma.Instance{
		Scalars: make(map[string]fr.Element, len(af.Scalars)),
		Points:  make(map[string]curve.G1Affine, len(af.Points)),
	}
	for name, raw := range af.Scalars {
		var e fr.Element
		if err := e.SetBytesCanonical(raw); err != nil {
			return sigma.Instance{}, fmt.Errorf("%s: scalar %q: %w", path, name, err)
		}
		inst.Scalars[name] = e
	}
	for name, raw := range af.Points {
		var p curve.G1Affine
		if _, err := p.SetBytes(raw); err != nil {
			return sigma.Instance{}, fmt.Errorf("%s: point %q: %w", path, name, err)
		}
		inst.Points[name] = p
	}
	return inst, nil
}
