package sigma

import (
	"fmt"
	"time"

	"github.com/zkproto/sigma/linear"
	"github.com/zkproto/sigma/logger"
	"github.com/zkproto/sigma/sym"
)

// Protocol is a compiled sigma protocol. It is immutable and safe for
// concurrent use; independent Prove and Verify sessions share no state.
type Protocol struct {
	label          []byte
	witnessFields  []Field
	instanceFields []Field

	f   []sym.Point
	psi []sym.Point
	sys *linear.System
}

// Compile validates a Descriptor and derives the generic three-move protocol
// from it. It materializes the f and psi expression trees, checks output
// arity, checks that every free variable is a declared field of the matching
// role, and extracts the affine-linear structure of psi. All configuration
// errors surface here; a compiled Protocol cannot fail on well-bound inputs.
func Compile(d Descriptor) (*Protocol, error) {
	log := logger.Logger().With().Str("protocol", string(d.Label)).Logger()
	start := time.Now()

	if d.F == nil || d.Psi == nil {
		return nil, fmt.Errorf("%w: descriptor must define both f and psi", ErrInvalidField)
	}
	if len(d.WitnessFields) == 0 {
		return nil, fmt.Errorf("%w: descriptor declares no witness field", ErrInvalidField)
	}

	seen := make(map[string]struct{}, len(d.WitnessFields)+len(d.InstanceFields))
	for _, f := range d.WitnessFields {
		if f.Role != RoleScalar {
			return nil, fmt.Errorf("%w: witness field %q must be scalar-valued", ErrInvalidField, f.Name)
		}
		if _, dup := seen[f.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate field %q", ErrInvalidField, f.Name)
		}
		seen[f.Name] = struct{}{}
	}
	for _, f := range d.InstanceFields {
		if _, dup := seen[f.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate field %q", ErrInvalidField, f.Name)
		}
		seen[f.Name] = struct{}{}
	}

	witVars := Vars{scalars: make(map[string]sym.Scalar, len(d.WitnessFields))}
	for _, f := range d.WitnessFields {
		witVars.scalars[f.Name] = sym.Var(f.Name)
	}
	instVars := Vars{
		scalars: make(map[string]sym.Scalar),
		points:  make(map[string]sym.Point),
	}
	for _, f := range d.InstanceFields {
		switch f.Role {
		case RoleScalar:
			instVars.scalars[f.Name] = sym.Var(f.Name)
		case RolePoint:
			instVars.points[f.Name] = sym.PtVar(f.Name)
		default:
			return nil, fmt.Errorf("%w: field %q has unknown role", ErrInvalidField, f.Name)
		}
	}

	fTrees := d.F(instVars)
	psiTrees := d.Psi(witVars, instVars)
	if len(fTrees) != len(psiTrees) {
		return nil, fmt.Errorf("%w: f has %d outputs, psi has %d", ErrArityMismatch, len(fTrees), len(psiTrees))
	}
	if len(fTrees) == 0 {
		return nil, fmt.Errorf("%w: protocol has no outputs", ErrArityMismatch)
	}

	if err := checkDeclared(fTrees, instVars.scalars, instVars.points, "f"); err != nil {
		return nil, err
	}
	allScalars := make(map[string]sym.Scalar, len(witVars.scalars)+len(instVars.scalars))
	for name, v := range instVars.scalars {
		allScalars[name] = v
	}
	for name, v := range witVars.scalars {
		allScalars[name] = v
	}
	if err := checkDeclared(psiTrees, allScalars, instVars.points, "psi"); err != nil {
		return nil, err
	}

	witnessOrder := make([]string, len(d.WitnessFields))
	for i, f := range d.WitnessFields {
		witnessOrder[i] = f.Name
	}
	sys, err := linear.Extract(psiTrees, witnessOrder)
	if err != nil {
		return nil, err
	}
	if unused := sys.UnusedWitness(); len(unused) > 0 {
		log.Warn().Strs("fields", unused).Msg("witness fields bound by no equation; the proof does not demonstrate knowledge of them")
	}

	p := &Protocol{
		label:          append([]byte(nil), d.Label...),
		witnessFields:  append([]Field(nil), d.WitnessFields...),
		instanceFields: append([]Field(nil), d.InstanceFields...),
		f:              fTrees,
		psi:            psiTrees,
		sys:            sys,
	}

	log.Debug().
		Int("nbOutputs", len(fTrees)).
		Int("nbWitness", len(d.WitnessFields)).
		Int("nbInstance", len(d.InstanceFields)).
		Dur("took", time.Since(start)).
		Msg("compiled sigma protocol")

	return p, nil
}

func checkDeclared(trees []sym.Point, scalars map[string]sym.Scalar, points map[string]sym.Point, where string) error {
	set := sym.NewVarSet()
	for _, t := range trees {
		set.Merge(sym.PointVars(t))
	}
	for name := range set.Scalars {
		if _, ok := scalars[name]; !ok {
			return fmt.Errorf("%w: %s references scalar %q", ErrUndeclaredVariable, where, name)
		}
	}
	for name := range set.Points {
		if _, ok := points[name]; !ok {
			return fmt.Errorf("%w: %s references point %q", ErrUndeclaredVariable, where, name)
		}
	}
	return nil
}

// Label returns the protocol's domain-separation label.
func (p *Protocol) Label() []byte {
	return append([]byte(nil), p.label...)
}

// WitnessFields returns the witness field declarations, in order.
func (p *Protocol) WitnessFields() []Field {
	return append([]Field(nil), p.witnessFields...)
}

// InstanceFields returns the instance field declarations, in order.
func (p *Protocol) InstanceFields() []Field {
	return append([]Field(nil), p.instanceFields...)
}

// Relation returns the materialized f and psi expression trees. The trees are
// immutable; callers may walk but not rebind them.
func (p *Protocol) Relation() (f, psi []sym.Point) {
	return p.f, p.psi
}

// System returns the extracted affine-linear structure of psi.
func (p *Protocol) System() *linear.System {
	return p.sys
}

// NbOutputs returns the output arity shared by f and psi.
func (p *Protocol) NbOutputs() int {
	return len(p.f)
}
