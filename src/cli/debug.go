package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/eriklarko/truth-table/src/boolexpr"
	"github.com/samber/lo"
)

// writeDebug prints every stage of the compiled formula:
//
//	- Formula:
//	  - !A | B
//
//	- Tokens:
//	  - Token('!', "!", 0)
//	  ...
func writeDebug(w io.Writer, formula *boolexpr.Formula) error {
	tokens := lo.Map(formula.Tokens, func(token boolexpr.Token, _ int) string {
		return "  - " + token.String()
	})

	var sb strings.Builder
	fmt.Fprintf(&sb, "- Formula:\n  - %s\n\n", formula.Source)
	fmt.Fprintf(&sb, "- Tokens:\n%s\n\n", strings.Join(tokens, "\n"))
	fmt.Fprintf(&sb, "- Expression:\n  - %s\n\n", formula.Expr)
	fmt.Fprintf(&sb, "- Tree:\n%s", boolexpr.Tree(formula.Expr))

	_, err := io.WriteString(w, sb.String())
	return err
}
