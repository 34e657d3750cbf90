package protocols

import (
	"github.com/zkproto/sigma"
	"github.com/zkproto/sigma/sym"
)

// ZeroCheck describes the twisted-ElGamal ciphertext-of-zero proof: knowledge
// of secretkey such that commitment = secretkey*G and handle =
// secretkey*pubkey. The second generator is an instance point, which
// exercises instance-dependent generators in the extracted structure.
func ZeroCheck() sigma.Descriptor {
	return sigma.Descriptor{
		Label: []byte("zero-check-protocol"),
		WitnessFields: []sigma.Field{
			{Name: "secretkey", Role: sigma.RoleScalar},
		},
		InstanceFields: []sigma.Field{
			{Name: "pubkey", Role: sigma.RolePoint},
			{Name: "commitment", Role: sigma.RolePoint},
			{Name: "handle", Role: sigma.RolePoint},
		},
		F: func(inst sigma.Vars) []sym.Point {
			return []sym.Point{inst.Point("commitment"), inst.Point("handle")}
		},
		Psi: func(wit, inst sigma.Vars) []sym.Point {
			s := wit.Scalar("secretkey")
			return []sym.Point{
				sym.ScalarMul(s, G),
				sym.ScalarMul(s, inst.Point("pubkey")),
			}
		},
	}
}
