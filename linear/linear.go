// Package linear extracts the per-witness generator structure of a witness
// function.
//
// A witness function is a sequence of group expressions, each of which must
// decompose into a finite sum of terms c_j(X)·w_j·P plus a witness-free
// residual, where the w_j are witness variables and the c_j and P depend only
// on the instance. This affine-linear shape is the homomorphism precondition
// the generic three-move derivation relies on: it is what allows the same
// function to be applied to blinding values, witnesses and responses
// interchangeably.
package linear

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/bits-and-blooms/bitset"
	curve "github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/zkproto/sigma/sym"
)

// ErrNonLinearWitnessUsage is returned when a witness variable appears in a
// non-linear position: multiplied by another witness-dependent scalar, or
// nested inside a non-additive combinator.
var ErrNonLinearWitnessUsage = errors.New("linear: witness variable used in a non-linear position")

// Term binds one witness field to its generator within an equation. The
// generator is a witness-free point expression; it may still reference
// instance variables.
type Term struct {
	Witness   string
	Generator sym.Point
}

// Equation is the extracted structure of one witness-function output:
// sum of Terms plus an optional witness-free Residual (nil when absent).
type Equation struct {
	Terms    []Term
	Residual sym.Point
}

// System holds one Equation per witness-function output, in output order.
type System struct {
	Equations []Equation

	witnessOrder []string
	used         *bitset.BitSet
}

// Extract derives the linear structure of the given witness-function outputs.
// witnessOrder fixes both which scalar variables count as witness variables
// and the order of Terms within each Equation.
func Extract(psi []sym.Point, witnessOrder []string) (*System, error) {
	index := make(map[string]int, len(witnessOrder))
	for i, name := range witnessOrder {
		index[name] = i
	}

	s := &System{
		Equations:    make([]Equation, 0, len(psi)),
		witnessOrder: witnessOrder,
		used:         bitset.New(uint(len(witnessOrder))),
	}

	for i, out := range psi {
		eq, err := extractEquation(out, index, witnessOrder)
		if err != nil {
			return nil, fmt.Errorf("output %d: %w", i, err)
		}
		for _, t := range eq.Terms {
			s.used.Set(uint(index[t.Witness]))
		}
		s.Equations = append(s.Equations, eq)
	}
	return s, nil
}

// UnusedWitness returns the witness fields bound by no equation. A proof
// cannot demonstrate knowledge of such a field; callers should treat a
// non-empty result as a protocol design smell.
func (s *System) UnusedWitness() []string {
	var unused []string
	for i, name := range s.witnessOrder {
		if !s.used.Test(uint(i)) {
			unused = append(unused, name)
		}
	}
	return unused
}

// Eval computes every equation under the given witness-field scalar
// assignment and instance bindings.
func (s *System) Eval(assignment map[string]fr.Element, b sym.Bindings) ([]curve.G1Affine, error) {
	out := make([]curve.G1Affine, len(s.Equations))
	for i, eq := range s.Equations {
		var acc curve.G1Affine // point at infinity
		for _, t := range eq.Terms {
			w, ok := assignment[t.Witness]
			if !ok {
				return nil, &sym.UnboundVariableError{Name: t.Witness}
			}
			g, err := sym.EvalPoint(t.Generator, b)
			if err != nil {
				return nil, err
			}
			var bi big.Int
			w.BigInt(&bi)
			var term curve.G1Affine
			term.ScalarMultiplication(&g, &bi)
			acc.Add(&acc, &term)
		}
		if eq.Residual != nil {
			r, err := sym.EvalPoint(eq.Residual, b)
			if err != nil {
				return nil, err
			}
			acc.Add(&acc, &r)
		}
		out[i] = acc
	}
	return out, nil
}

// flatTerm is one additive component of a point expression: sign * coeff * base.
type flatTerm struct {
	coeff sym.Scalar // nil means 1
	base  sym.Point  // PointConst or PointVar
	neg   bool
}

func extractEquation(out sym.Point, index map[string]int, order []string) (Equation, error) {
	var flat []flatTerm
	flatten(out, nil, false, &flat)

	generators := make([]sym.Point, len(order))
	var residual sym.Point

	for _, t := range flat {
		coeffs, resid, err := linearForm(t.coeff, index)
		if err != nil {
			return Equation{}, err
		}
		for j, c := range coeffs {
			if c == nil {
				continue
			}
			g := applyCoeff(c, t.base, t.neg)
			if generators[j] == nil {
				generators[j] = g
			} else {
				generators[j] = sym.PtAdd(generators[j], g)
			}
		}
		if resid != nil {
			r := applyCoeff(resid, t.base, t.neg)
			if residual == nil {
				residual = r
			} else {
				residual = sym.PtAdd(residual, r)
			}
		}
	}

	eq := Equation{Residual: residual}
	for j, g := range generators {
		if g != nil {
			eq.Terms = append(eq.Terms, Term{Witness: order[j], Generator: g})
		}
	}
	return eq, nil
}

// flatten decomposes a point tree into additive terms, absorbing scale
// factors into symbolic coefficients.
func flatten(p sym.Point, coeff sym.Scalar, neg bool, out *[]flatTerm) {
	switch n := p.(type) {
	case *sym.PointSum:
		flatten(n.Left, coeff, neg, out)
		flatten(n.Right, coeff, neg, out)
	case *sym.PointNegate:
		flatten(n.Inner, coeff, !neg, out)
	case *sym.Scaled:
		c := n.Coeff
		if coeff != nil {
			c = sym.Mul(coeff, n.Coeff)
		}
		flatten(n.Base, c, neg, out)
	default: // PointConst, PointVar
		*out = append(*out, flatTerm{coeff: coeff, base: p, neg: neg})
	}
}

// linearForm decomposes a scalar expression into per-witness coefficients
// plus a witness-free residual. coeffs is indexed by witness order; a nil
// entry means the witness does not occur. resid is nil when the expression
// has no witness-free component. A nil input stands for the constant 1.
func linearForm(e sym.Scalar, index map[string]int) (coeffs []sym.Scalar, resid sym.Scalar, err error) {
	if e == nil {
		return make([]sym.Scalar, len(index)), sym.One(), nil
	}
	if !referencesWitness(e, index) {
		return make([]sym.Scalar, len(index)), e, nil
	}

	switch n := e.(type) {
	case *sym.ScalarVar:
		coeffs = make([]sym.Scalar, len(index))
		coeffs[index[n.Name]] = sym.One()
		return coeffs, nil, nil
	case *sym.ScalarSum:
		lc, lr, err := linearForm(n.Left, index)
		if err != nil {
			return nil, nil, err
		}
		rc, rr, err := linearForm(n.Right, index)
		if err != nil {
			return nil, nil, err
		}
		for j := range lc {
			lc[j] = addOrKeep(lc[j], rc[j])
		}
		return lc, addOrKeep(lr, rr), nil
	case *sym.ScalarNegate:
		c, r, err := linearForm(n.Inner, index)
		if err != nil {
			return nil, nil, err
		}
		for j := range c {
			if c[j] != nil {
				c[j] = sym.Neg(c[j])
			}
		}
		if r != nil {
			r = sym.Neg(r)
		}
		return c, r, nil
	case *sym.ScalarProduct:
		leftWitness := referencesWitness(n.Left, index)
		rightWitness := referencesWitness(n.Right, index)
		if leftWitness && rightWitness {
			return nil, nil, ErrNonLinearWitnessUsage
		}
		affine, free := n.Left, n.Right
		if rightWitness {
			affine, free = n.Right, n.Left
		}
		c, r, err := linearForm(affine, index)
		if err != nil {
			return nil, nil, err
		}
		for j := range c {
			if c[j] != nil {
				c[j] = mulOrKeep(free, c[j])
			}
		}
		if r != nil {
			r = mulOrKeep(free, r)
		}
		return c, r, nil
	default:
		// a witness-dependent node that is neither a var nor an
		// additive/affine combinator
		return nil, nil, ErrNonLinearWitnessUsage
	}
}

func referencesWitness(e sym.Scalar, index map[string]int) bool {
	for name := range sym.ScalarVars(e).Scalars {
		if _, ok := index[name]; ok {
			return true
		}
	}
	return false
}

// applyCoeff builds coeff * base with the given sign, eliding the
// multiplication when the coefficient is the literal 1.
func applyCoeff(coeff sym.Scalar, base sym.Point, neg bool) sym.Point {
	g := base
	if !sym.IsOne(coeff) {
		g = sym.ScalarMul(coeff, base)
	}
	if neg {
		g = sym.PtNeg(g)
	}
	return g
}

func addOrKeep(a, b sym.Scalar) sym.Scalar {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	default:
		return sym.Add(a, b)
	}
}

func mulOrKeep(free, c sym.Scalar) sym.Scalar {
	if sym.IsOne(free) {
		return c
	}
	if sym.IsOne(c) {
		return free
	}
	return sym.Mul(free, c)
}
