package sigma

import (
	"fmt"
	"io"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"golang.org/x/crypto/blake2b"
)

// RandomSource samples uniformly random scalars. It is the only external
// mutable dependency of a proving session and is injected per Prove call;
// implementations used across concurrent calls must be safe for concurrent
// sampling.
type RandomSource interface {
	SampleScalar() (fr.Element, error)
}

type cryptoSource struct{}

// CryptoSource returns a RandomSource backed by the operating system's
// cryptographically secure generator. Safe for concurrent use.
func CryptoSource() RandomSource {
	return cryptoSource{}
}

func (cryptoSource) SampleScalar() (fr.Element, error) {
	var e fr.Element
	if _, err := e.SetRandom(); err != nil {
		return fr.Element{}, fmt.Errorf("sample scalar: %w", err)
	}
	return e, nil
}

type seededSource struct {
	xof blake2b.XOF
}

// NewSeededSource returns a deterministic RandomSource expanding the given
// seed with a BLAKE2Xb XOF. Two sources built from the same seed produce the
// same scalar stream, which makes proving reproducible; it is intended for
// tests and must not be used with a predictable seed in production. Not safe
// for concurrent use.
func NewSeededSource(seed []byte) (RandomSource, error) {
	xof, err := blake2b.NewXOF(blake2b.OutputLengthUnknown, nil)
	if err != nil {
		return nil, err
	}
	if _, err := xof.Write(seed); err != nil {
		return nil, err
	}
	return &seededSource{xof: xof}, nil
}

func (s *seededSource) SampleScalar() (fr.Element, error) {
	// 64 bytes per scalar: wide reduction keeps the output uniform
	var buf [2 * fr.Bytes]byte
	if _, err := io.ReadFull(s.xof, buf[:]); err != nil {
		return fr.Element{}, fmt.Errorf("sample scalar: %w", err)
	}
	var e fr.Element
	e.SetBytes(buf[:])
	return e, nil
}
