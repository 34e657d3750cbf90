package sigma

import (
	curve "github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/zkproto/sigma/sym"
)

// Role tags a declared field as scalar- or point-valued.
type Role uint8

const (
	RoleScalar Role = iota
	RolePoint
)

func (r Role) String() string {
	switch r {
	case RoleScalar:
		return "scalar"
	case RolePoint:
		return "point"
	default:
		return "unknown"
	}
}

// Field declares one named input of a protocol. Witness fields must be
// scalar-valued; instance fields may be either.
type Field struct {
	Name string
	Role Role
}

// Descriptor is the declarative description of a sigma protocol: a label, the
// witness and instance field sets, and the two symbolic maps f and psi.
//
// F receives variables for the instance fields and must return one point
// expression per protocol output. Psi receives variables for the witness and
// instance fields and must return the same number of outputs; it must be
// affine-linear in the witness variables. Both are called exactly once, at
// Compile time, to materialize the expression trees.
type Descriptor struct {
	Label []byte

	WitnessFields  []Field
	InstanceFields []Field

	F   func(inst Vars) []sym.Point
	Psi func(wit, inst Vars) []sym.Point
}

// Vars hands out the symbolic variable node for each declared field. Asking
// for an undeclared name still yields a variable node; Compile rejects the
// resulting tree with ErrUndeclaredVariable.
type Vars struct {
	scalars map[string]sym.Scalar
	points  map[string]sym.Point
}

// Scalar returns the scalar variable for the named field.
func (v Vars) Scalar(name string) sym.Scalar {
	if s, ok := v.scalars[name]; ok {
		return s
	}
	return sym.Var(name)
}

// Point returns the point variable for the named field.
func (v Vars) Point(name string) sym.Point {
	if p, ok := v.points[name]; ok {
		return p
	}
	return sym.PtVar(name)
}

// Witness assigns a concrete scalar to every witness field.
type Witness map[string]fr.Element

// Instance assigns concrete values to the instance fields.
type Instance struct {
	Scalars map[string]fr.Element
	Points  map[string]curve.G1Affine
}

func (inst Instance) bindings() sym.Bindings {
	return sym.Bindings{Scalars: inst.Scalars, Points: inst.Points}
}
