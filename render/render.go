// Package render turns a compiled sigma protocol into a human-readable
// specification document.
//
// Rendering is a pure projection of the protocol's structure: it walks the
// materialized f and psi expression trees and the extracted linear system, and
// never touches concrete witness values, so a rendered document is always safe
// to publish.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/zkproto/sigma"
	"github.com/zkproto/sigma/linear"
)

// Symbol is one named quantity of the protocol, as presented in the document.
type Symbol struct {
	Name   string
	Kind   string // "scalar" or "point"
	Secret bool
}

// Document is a renderable specification of one protocol.
type Document struct {
	p *sigma.Protocol
}

// New returns the specification document of a compiled protocol.
func New(p *sigma.Protocol) *Document {
	return &Document{p: p}
}

// Symbols returns the protocol's symbol table: witness fields first (secret),
// then instance fields, in declaration order.
func (d *Document) Symbols() []Symbol {
	var out []Symbol
	for _, f := range d.p.WitnessFields() {
		out = append(out, Symbol{Name: f.Name, Kind: f.Role.String(), Secret: true})
	}
	for _, f := range d.p.InstanceFields() {
		out = append(out, Symbol{Name: f.Name, Kind: f.Role.String()})
	}
	return out
}

// Markdown renders the document as Markdown with embedded LaTeX math blocks.
func (d *Document) Markdown() string {
	p := d.p
	fTrees, psiTrees := p.Relation()
	sys := p.System()

	witnessFields := p.WitnessFields()
	instanceFields := p.InstanceFields()

	witnessNames := make([]string, len(witnessFields))
	for i, f := range witnessFields {
		witnessNames[i] = latexVar(f.Name)
	}
	instanceNames := make([]string, len(instanceFields))
	nbInstanceScalars := 0
	for i, f := range instanceFields {
		instanceNames[i] = latexVar(f.Name)
		if f.Role == sigma.RoleScalar {
			nbInstanceScalars++
		}
	}

	psiParts := make([]string, len(psiTrees))
	for i, t := range psiTrees {
		psiParts[i] = latexPoint(t)
	}
	fParts := make([]string, len(fTrees))
	for i, t := range fTrees {
		fParts[i] = latexPoint(t)
	}

	var checks strings.Builder
	for i := range psiParts {
		fmt.Fprintf(&checks, "* $%s = %s$\n", psiParts[i], fParts[i])
	}

	var b strings.Builder
	fmt.Fprintf(&b, "The Sigma protocol is labeled as `%s`.\n\n", string(p.Label()))
	fmt.Fprintf(&b, "The **witness** is defined as $\\mathbf \\omega = \\{ %s \\}$.\n\n", strings.Join(witnessNames, ", "))
	fmt.Fprintf(&b, "The **instance** is defined as $\\mathbf X = \\{ %s \\}$.\n\n", strings.Join(instanceNames, ", "))
	b.WriteString("The sigma protocol allows us to prove knowledge of $\\mathbf \\omega$ such that $\\psi(\\mathbf \\omega) = f(\\mathbf X)$.\n\n")

	fmt.Fprintf(&b, "The homomorphism $\\psi$ is defined as:\n\n$$\n\\begin{aligned}\n\\psi : \\mathbb{F}^{%d} &\\to \\mathbb{G}^{%d} \\\\\n\\mathbf \\omega &\\mapsto (%s)\n\\end{aligned}\n$$\n\n",
		len(witnessFields), len(psiTrees), strings.Join(psiParts, ", "))

	fmt.Fprintf(&b, "The transformation $f$ is defined as:\n\n$$\n\\begin{aligned}\nf : \\mathbb{F}^{%d} \\times \\mathbb{G}^{%d} &\\to \\mathbb{G}^{%d} \\\\\n\\mathbf X &\\mapsto (%s)\n\\end{aligned}\n$$\n\n",
		nbInstanceScalars, len(instanceFields)-nbInstanceScalars, len(fTrees), strings.Join(fParts, ", "))

	b.WriteString("In other words, the following is being proven:\n\n")
	b.WriteString(checks.String())
	b.WriteString("\n")

	d.writeMoves(&b, sys, witnessFields)

	return b.String()
}

// writeMoves renders the three generic moves instantiated with the protocol's
// symbol names and extracted linear structure.
func (d *Document) writeMoves(b *strings.Builder, sys *linear.System, witnessFields []sigma.Field) {
	b.WriteString("#### Protocol moves\n\n")

	b.WriteString("1. **Commit** — the prover samples ")
	for i, f := range witnessFields {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(b, "$r_{%s}$", latexVar(f.Name))
	}
	b.WriteString(" uniformly at random and sends\n")
	for i, eq := range sys.Equations {
		fmt.Fprintf(b, "   $A_{%d} = %s$\n", i, equationLatex(eq, "r"))
	}
	b.WriteString("2. **Challenge** — both parties derive $e = H(\\texttt{label} \\parallel \\mathbf X \\parallel \\mathbf A)$, reduced into $\\mathbb{F}$.\n")
	b.WriteString("3. **Response** — the prover sends ")
	for i, f := range witnessFields {
		if i > 0 {
			b.WriteString(", ")
		}
		v := latexVar(f.Name)
		fmt.Fprintf(b, "$z_{%s} = r_{%s} + e \\cdot %s$", v, v, v)
	}
	b.WriteString(".\n\n")

	b.WriteString("The verifier accepts iff for every output $i$:\n")
	for i, eq := range sys.Equations {
		rhs := fmt.Sprintf("f(\\mathbf X)_{%d}", i)
		if eq.Residual != nil {
			rhs = fmt.Sprintf("(f(\\mathbf X)_{%d} - %s)", i, latexPoint(eq.Residual))
		}
		fmt.Fprintf(b, "   $%s = A_{%d} + e \\cdot %s$\n", equationLatex(eq, "z"), i, rhs)
	}
}

// equationLatex renders one extracted equation with the witness slot replaced
// by the named per-field variable (blinding "r" or response "z").
func equationLatex(eq linear.Equation, slot string) string {
	var parts []string
	for _, t := range eq.Terms {
		parts = append(parts, fmt.Sprintf("%s_{%s} \\cdot %s", slot, latexVar(t.Witness), latexPoint(t.Generator)))
	}
	if eq.Residual != nil {
		parts = append(parts, latexPoint(eq.Residual))
	}
	if len(parts) == 0 {
		return "\\mathcal{O}"
	}
	return strings.Join(parts, " + ")
}

// WriteTo writes the Markdown rendering to w.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, d.Markdown())
	return int64(n), err
}
