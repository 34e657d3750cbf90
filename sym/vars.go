package sym

// VarSet is the set of free variables of an expression, split by kind.
type VarSet struct {
	Scalars map[string]struct{}
	Points  map[string]struct{}
}

// NewVarSet returns an empty VarSet.
func NewVarSet() VarSet {
	return VarSet{
		Scalars: make(map[string]struct{}),
		Points:  make(map[string]struct{}),
	}
}

// Merge adds every variable of other into s.
func (s VarSet) Merge(other VarSet) {
	for name := range other.Scalars {
		s.Scalars[name] = struct{}{}
	}
	for name := range other.Points {
		s.Points[name] = struct{}{}
	}
}

// ScalarVars returns the free variables of e. Purely structural, no
// evaluation takes place.
func ScalarVars(e Scalar) VarSet {
	set := NewVarSet()
	collectScalarVars(e, set)
	return set
}

// PointVars returns the free variables of p.
func PointVars(p Point) VarSet {
	set := NewVarSet()
	collectPointVars(p, set)
	return set
}

func collectScalarVars(e Scalar, set VarSet) {
	switch n := e.(type) {
	case *ScalarConst:
	case *ScalarVar:
		set.Scalars[n.Name] = struct{}{}
	case *ScalarSum:
		collectScalarVars(n.Left, set)
		collectScalarVars(n.Right, set)
	case *ScalarProduct:
		collectScalarVars(n.Left, set)
		collectScalarVars(n.Right, set)
	case *ScalarNegate:
		collectScalarVars(n.Inner, set)
	}
}

func collectPointVars(p Point, set VarSet) {
	switch n := p.(type) {
	case *PointConst:
	case *PointVar:
		set.Points[n.Name] = struct{}{}
	case *PointSum:
		collectPointVars(n.Left, set)
		collectPointVars(n.Right, set)
	case *PointNegate:
		collectPointVars(n.Inner, set)
	case *Scaled:
		collectScalarVars(n.Coeff, set)
		collectPointVars(n.Base, set)
	}
}
