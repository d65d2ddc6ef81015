package boolexpr

import (
	"sort"

	"github.com/samber/lo"
)

// Variables returns the distinct variable names referenced by expr, sorted.
// The order is the column order of a truth table.
func Variables(expr Expr) []string {
	seen := make(map[string]struct{})
	expr.collectVariables(seen)

	names := lo.Keys(seen)
	sort.Strings(names)
	return names
}

func (v Variable) collectVariables(seen map[string]struct{}) {
	seen[v.Name] = struct{}{}
}

func (n Negation) collectVariables(seen map[string]struct{}) {
	n.Operand.collectVariables(seen)
}

func (c Conjunction) collectVariables(seen map[string]struct{}) {
	c.Left.collectVariables(seen)
	c.Right.collectVariables(seen)
}

func (d Disjunction) collectVariables(seen map[string]struct{}) {
	d.Left.collectVariables(seen)
	d.Right.collectVariables(seen)
}

func (i Implication) collectVariables(seen map[string]struct{}) {
	i.Left.collectVariables(seen)
	i.Right.collectVariables(seen)
}

func (b Biconditional) collectVariables(seen map[string]struct{}) {
	b.Left.collectVariables(seen)
	b.Right.collectVariables(seen)
}
