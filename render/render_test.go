package render_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/zkproto/sigma"
	"github.com/zkproto/sigma/protocols"
	"github.com/zkproto/sigma/render"
)

func TestSchnorrDocument(t *testing.T) {
	assert := require.New(t)

	p, err := sigma.Compile(protocols.Schnorr())
	assert.NoError(err)

	doc := render.New(p)
	md := doc.Markdown()

	// both symbols are named
	assert.Contains(md, "\\texttt{privatekey}")
	assert.Contains(md, "\\texttt{pubkey}")
	assert.Contains(md, "`schnorr-identity-protocol`")

	// psi is exactly one scalar multiplication of the fixed generator
	assert.Contains(md, "\\mathbf \\omega &\\mapsto (\\texttt{privatekey} \\cdot G)")
	assert.Contains(md, "\\mathbf X &\\mapsto (\\texttt{pubkey})")

	// the three moves are instantiated with the protocol's symbols
	assert.Contains(md, "$A_{0} = r_{\\texttt{privatekey}} \\cdot G$")
	assert.Contains(md, "$z_{\\texttt{privatekey}} = r_{\\texttt{privatekey}} + e \\cdot \\texttt{privatekey}$")
	assert.Contains(md, "$z_{\\texttt{privatekey}} \\cdot G = A_{0} + e \\cdot f(\\mathbf X)_{0}$")

	diff := cmp.Diff([]render.Symbol{
		{Name: "privatekey", Kind: "scalar", Secret: true},
		{Name: "pubkey", Kind: "point"},
	}, doc.Symbols())
	assert.Empty(diff)
}

func TestOkamotoDocument(t *testing.T) {
	assert := require.New(t)

	p, err := sigma.Compile(protocols.Okamoto())
	assert.NoError(err)

	md := render.New(p).Markdown()
	assert.Contains(md, "(\\texttt{x} \\cdot G + \\texttt{y} \\cdot H)")
	assert.Contains(md, "r_{\\texttt{x}} \\cdot G + r_{\\texttt{y}} \\cdot H")
}

func TestZeroCheckDocument(t *testing.T) {
	assert := require.New(t)

	p, err := sigma.Compile(protocols.ZeroCheck())
	assert.NoError(err)

	md := render.New(p).Markdown()
	// the instance-dependent generator shows up by name, in the relation
	// and in the commit move
	assert.Contains(md, "\\texttt{secretkey} \\cdot \\texttt{pubkey}")
	assert.Contains(md, "$A_{1} = r_{\\texttt{secretkey}} \\cdot \\texttt{pubkey}$")
}

func TestWriteTo(t *testing.T) {
	assert := require.New(t)

	p, err := sigma.Compile(protocols.ChaumPedersen())
	assert.NoError(err)

	doc := render.New(p)
	var buf bytes.Buffer
	n, err := doc.WriteTo(&buf)
	assert.NoError(err)
	assert.Equal(int64(buf.Len()), n)
	assert.Equal(doc.Markdown(), buf.String())
	assert.True(strings.HasPrefix(buf.String(), "The Sigma protocol is labeled as `chaum-protocol`."))
}
