// Package sym implements immutable symbolic expression trees over the BN254
// scalar field and G1 group.
//
// A tree describes a group-valued computation without performing it. The same
// tree serves three consumers: evaluation against concrete bindings
// (EvalScalar, EvalPoint), linear-structure extraction, and document
// rendering. Nodes are never mutated after construction and may be freely
// shared between trees.
package sym

import (
	curve "github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Scalar is a symbolic scalar-field expression.
type Scalar interface {
	scalarNode()
}

// Scalar node variants.
type (
	// ScalarConst is a literal field element.
	ScalarConst struct {
		Value fr.Element
	}

	// ScalarVar is a named free variable, bound at evaluation time.
	ScalarVar struct {
		Name string
	}

	// ScalarSum is Left + Right.
	ScalarSum struct {
		Left, Right Scalar
	}

	// ScalarProduct is Left * Right.
	ScalarProduct struct {
		Left, Right Scalar
	}

	// ScalarNegate is -Inner.
	ScalarNegate struct {
		Inner Scalar
	}
)

func (*ScalarConst) scalarNode()   {}
func (*ScalarVar) scalarNode()     {}
func (*ScalarSum) scalarNode()     {}
func (*ScalarProduct) scalarNode() {}
func (*ScalarNegate) scalarNode()  {}

// Point is a symbolic G1 expression.
type Point interface {
	pointNode()
}

// Point node variants.
type (
	// PointConst is a literal group element. Name is non-empty for
	// well-known generators and is used by renderers; it plays no role
	// in evaluation.
	PointConst struct {
		Name  string
		Value curve.G1Affine
	}

	// PointVar is a named free variable, bound at evaluation time.
	PointVar struct {
		Name string
	}

	// PointSum is Left + Right.
	PointSum struct {
		Left, Right Point
	}

	// PointNegate is -Inner.
	PointNegate struct {
		Inner Point
	}

	// Scaled is Coeff * Base.
	Scaled struct {
		Coeff Scalar
		Base  Point
	}
)

func (*PointConst) pointNode()  {}
func (*PointVar) pointNode()    {}
func (*PointSum) pointNode()    {}
func (*PointNegate) pointNode() {}
func (*Scaled) pointNode()      {}

// Const returns a scalar literal.
func Const(v fr.Element) Scalar {
	return &ScalarConst{Value: v}
}

// Var returns a free scalar variable.
func Var(name string) Scalar {
	return &ScalarVar{Name: name}
}

// Add returns a + b.
func Add(a, b Scalar) Scalar {
	return &ScalarSum{Left: a, Right: b}
}

// Sub returns a - b, desugared to a + (-b).
func Sub(a, b Scalar) Scalar {
	return Add(a, Neg(b))
}

// Mul returns a * b.
func Mul(a, b Scalar) Scalar {
	return &ScalarProduct{Left: a, Right: b}
}

// Neg returns -a.
func Neg(a Scalar) Scalar {
	return &ScalarNegate{Inner: a}
}

// One returns the scalar literal 1.
func One() Scalar {
	var v fr.Element
	v.SetOne()
	return &ScalarConst{Value: v}
}

// PtConst returns an anonymous point literal.
func PtConst(v curve.G1Affine) Point {
	return &PointConst{Value: v}
}

// Generator returns a named point literal. The name identifies a well-known
// generator in rendered documents.
func Generator(name string, v curve.G1Affine) Point {
	return &PointConst{Name: name, Value: v}
}

// PtVar returns a free point variable.
func PtVar(name string) Point {
	return &PointVar{Name: name}
}

// PtAdd returns p + q.
func PtAdd(p, q Point) Point {
	return &PointSum{Left: p, Right: q}
}

// PtSub returns p - q, desugared to p + (-q).
func PtSub(p, q Point) Point {
	return PtAdd(p, PtNeg(q))
}

// PtNeg returns -p.
func PtNeg(p Point) Point {
	return &PointNegate{Inner: p}
}

// ScalarMul returns s * p.
func ScalarMul(s Scalar, p Point) Point {
	return &Scaled{Coeff: s, Base: p}
}

// IsOne reports whether s is the literal constant 1.
func IsOne(s Scalar) bool {
	c, ok := s.(*ScalarConst)
	return ok && c.Value.IsOne()
}
