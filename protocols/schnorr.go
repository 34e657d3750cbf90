package protocols

import (
	"github.com/zkproto/sigma"
	"github.com/zkproto/sigma/sym"
)

// Schnorr describes the discrete-log identity protocol: knowledge of
// privatekey such that pubkey = privatekey * G.
func Schnorr() sigma.Descriptor {
	return sigma.Descriptor{
		Label: []byte("schnorr-identity-protocol"),
		WitnessFields: []sigma.Field{
			{Name: "privatekey", Role: sigma.RoleScalar},
		},
		InstanceFields: []sigma.Field{
			{Name: "pubkey", Role: sigma.RolePoint},
		},
		F: func(inst sigma.Vars) []sym.Point {
			return []sym.Point{inst.Point("pubkey")}
		},
		Psi: func(wit, _ sigma.Vars) []sym.Point {
			return []sym.Point{sym.ScalarMul(wit.Scalar("privatekey"), G)}
		},
	}
}
