package protocols

import (
	"github.com/zkproto/sigma"
	"github.com/zkproto/sigma/sym"
)

// ChaumPedersen describes equality of discrete logs across the two
// generators: knowledge of x such that point1 = x*G and point2 = x*H.
func ChaumPedersen() sigma.Descriptor {
	return sigma.Descriptor{
		Label: []byte("chaum-protocol"),
		WitnessFields: []sigma.Field{
			{Name: "x", Role: sigma.RoleScalar},
		},
		InstanceFields: []sigma.Field{
			{Name: "point1", Role: sigma.RolePoint},
			{Name: "point2", Role: sigma.RolePoint},
		},
		F: func(inst sigma.Vars) []sym.Point {
			return []sym.Point{inst.Point("point1"), inst.Point("point2")}
		},
		Psi: func(wit, _ sigma.Vars) []sym.Point {
			x := wit.Scalar("x")
			return []sym.Point{
				sym.ScalarMul(x, G),
				sym.ScalarMul(x, H),
			}
		},
	}
}
