package render

import (
	"fmt"
	"strings"

	"github.com/zkproto/sigma/sym"
)

// latexVar escapes a field name for LaTeX and wraps it in texttt.
func latexVar(name string) string {
	return "\\texttt{" + strings.ReplaceAll(name, "_", "\\_") + "}"
}

func latexScalar(e sym.Scalar) string {
	switch n := e.(type) {
	case *sym.ScalarConst:
		return n.Value.String()
	case *sym.ScalarVar:
		return latexVar(n.Name)
	case *sym.ScalarSum:
		// render a + (-b) as a subtraction
		if neg, ok := n.Right.(*sym.ScalarNegate); ok {
			return fmt.Sprintf("(%s - %s)", latexScalar(n.Left), latexScalar(neg.Inner))
		}
		return fmt.Sprintf("(%s + %s)", latexScalar(n.Left), latexScalar(n.Right))
	case *sym.ScalarProduct:
		return fmt.Sprintf("(%s \\cdot %s)", latexScalar(n.Left), latexScalar(n.Right))
	case *sym.ScalarNegate:
		return fmt.Sprintf("(-%s)", latexScalar(n.Inner))
	default:
		panic(fmt.Sprintf("render: unknown scalar node %T", e))
	}
}

func latexPoint(p sym.Point) string {
	switch n := p.(type) {
	case *sym.PointConst:
		if n.Name != "" {
			return n.Name
		}
		return "P"
	case *sym.PointVar:
		return latexVar(n.Name)
	case *sym.PointSum:
		if neg, ok := n.Right.(*sym.PointNegate); ok {
			return fmt.Sprintf("(%s - %s)", latexPoint(n.Left), latexPoint(neg.Inner))
		}
		return fmt.Sprintf("(%s + %s)", latexPoint(n.Left), latexPoint(n.Right))
	case *sym.PointNegate:
		return fmt.Sprintf("(-%s)", latexPoint(n.Inner))
	case *sym.Scaled:
		return fmt.Sprintf("%s \\cdot %s", latexScalar(n.Coeff), latexPoint(n.Base))
	default:
		panic(fmt.Sprintf("render: unknown point node %T", p))
	}
}
