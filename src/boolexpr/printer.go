package boolexpr

import (
	"strings"
)

func (v Variable) String() string {
	return v.Name
}

func (n Negation) String() string {
	return "!" + n.Operand.String()
}

func (c Conjunction) String() string {
	return binaryString(c.Left, "&", c.Right)
}

func (d Disjunction) String() string {
	return binaryString(d.Left, "|", d.Right)
}

func (i Implication) String() string {
	return binaryString(i.Left, "->", i.Right)
}

func (b Biconditional) String() string {
	return binaryString(b.Left, "<->", b.Right)
}

func binaryString(left Expr, operator string, right Expr) string {
	return "(" + left.String() + " " + operator + " " + right.String() + ")"
}

// Tree renders expr as an indented tree, one node per line:
//
//	AND
//	├── A
//	└── NOT
//	    └── B
func Tree(expr Expr) string {
	var sb strings.Builder
	expr.writeTree(&sb, "", "")
	return sb.String()
}

func (v Variable) writeTree(sb *strings.Builder, prefix, branch string) {
	writeNode(sb, prefix, branch, v.Name)
}

func (n Negation) writeTree(sb *strings.Builder, prefix, branch string) {
	writeNode(sb, prefix, branch, "NOT", n.Operand)
}

func (c Conjunction) writeTree(sb *strings.Builder, prefix, branch string) {
	writeNode(sb, prefix, branch, "AND", c.Left, c.Right)
}

func (d Disjunction) writeTree(sb *strings.Builder, prefix, branch string) {
	writeNode(sb, prefix, branch, "OR", d.Left, d.Right)
}

func (i Implication) writeTree(sb *strings.Builder, prefix, branch string) {
	writeNode(sb, prefix, branch, "IMPLIES", i.Left, i.Right)
}

func (b Biconditional) writeTree(sb *strings.Builder, prefix, branch string) {
	writeNode(sb, prefix, branch, "IFF", b.Left, b.Right)
}

const (
	middleBranch = "├── "
	lastBranch   = "└── "
)

func writeNode(sb *strings.Builder, prefix, branch, label string, children ...Expr) {
	sb.WriteString(prefix + branch + label + "\n")

	childPrefix := prefix
	switch branch {
	case middleBranch:
		childPrefix += "│   "
	case lastBranch:
		childPrefix += "    "
	}

	for i, child := range children {
		childBranch := middleBranch
		if i == len(children)-1 {
			childBranch = lastBranch
		}
		child.writeTree(sb, childPrefix, childBranch)
	}
}
