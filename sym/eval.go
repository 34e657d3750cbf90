package sym

import (
	"fmt"
	"math/big"

	curve "github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Bindings maps free variable names to concrete values for evaluation.
type Bindings struct {
	Scalars map[string]fr.Element
	Points  map[string]curve.G1Affine
}

// UnboundVariableError is returned when an expression references a variable
// with no binding. Against a compiled protocol this indicates a programming
// error, not bad input.
type UnboundVariableError struct {
	Name string
}

func (e *UnboundVariableError) Error() string {
	return fmt.Sprintf("sym: unbound variable %q", e.Name)
}

// EvalScalar evaluates e under the given bindings.
func EvalScalar(e Scalar, b Bindings) (fr.Element, error) {
	switch n := e.(type) {
	case *ScalarConst:
		return n.Value, nil
	case *ScalarVar:
		v, ok := b.Scalars[n.Name]
		if !ok {
			return fr.Element{}, &UnboundVariableError{Name: n.Name}
		}
		return v, nil
	case *ScalarSum:
		l, err := EvalScalar(n.Left, b)
		if err != nil {
			return fr.Element{}, err
		}
		r, err := EvalScalar(n.Right, b)
		if err != nil {
			return fr.Element{}, err
		}
		var res fr.Element
		res.Add(&l, &r)
		return res, nil
	case *ScalarProduct:
		l, err := EvalScalar(n.Left, b)
		if err != nil {
			return fr.Element{}, err
		}
		r, err := EvalScalar(n.Right, b)
		if err != nil {
			return fr.Element{}, err
		}
		var res fr.Element
		res.Mul(&l, &r)
		return res, nil
	case *ScalarNegate:
		v, err := EvalScalar(n.Inner, b)
		if err != nil {
			return fr.Element{}, err
		}
		var res fr.Element
		res.Neg(&v)
		return res, nil
	default:
		panic(fmt.Sprintf("sym: unknown scalar node %T", e))
	}
}

// EvalPoint evaluates p under the given bindings.
func EvalPoint(p Point, b Bindings) (curve.G1Affine, error) {
	switch n := p.(type) {
	case *PointConst:
		return n.Value, nil
	case *PointVar:
		v, ok := b.Points[n.Name]
		if !ok {
			return curve.G1Affine{}, &UnboundVariableError{Name: n.Name}
		}
		return v, nil
	case *PointSum:
		l, err := EvalPoint(n.Left, b)
		if err != nil {
			return curve.G1Affine{}, err
		}
		r, err := EvalPoint(n.Right, b)
		if err != nil {
			return curve.G1Affine{}, err
		}
		var res curve.G1Affine
		res.Add(&l, &r)
		return res, nil
	case *PointNegate:
		v, err := EvalPoint(n.Inner, b)
		if err != nil {
			return curve.G1Affine{}, err
		}
		var res curve.G1Affine
		res.Neg(&v)
		return res, nil
	case *Scaled:
		s, err := EvalScalar(n.Coeff, b)
		if err != nil {
			return curve.G1Affine{}, err
		}
		base, err := EvalPoint(n.Base, b)
		if err != nil {
			return curve.G1Affine{}, err
		}
		var bi big.Int
		s.BigInt(&bi)
		var res curve.G1Affine
		res.ScalarMultiplication(&base, &bi)
		return res, nil
	default:
		panic(fmt.Sprintf("sym: unknown point node %T", p))
	}
}
