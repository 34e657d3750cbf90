package protocols

import (
	"github.com/zkproto/sigma"
	"github.com/zkproto/sigma/sym"
)

// Okamoto describes knowledge of a Pedersen representation: x and y such
// that point = x*G + y*H.
func Okamoto() sigma.Descriptor {
	return sigma.Descriptor{
		Label: []byte("okamoto-protocol"),
		WitnessFields: []sigma.Field{
			{Name: "x", Role: sigma.RoleScalar},
			{Name: "y", Role: sigma.RoleScalar},
		},
		InstanceFields: []sigma.Field{
			{Name: "point", Role: sigma.RolePoint},
		},
		F: func(inst sigma.Vars) []sym.Point {
			return []sym.Point{inst.Point("point")}
		},
		Psi: func(wit, _ sigma.Vars) []sym.Point {
			return []sym.Point{
				sym.PtAdd(
					sym.ScalarMul(wit.Scalar("x"), G),
					sym.ScalarMul(wit.Scalar("y"), H),
				),
			}
		},
	}
}
