package exprc

import (
	"math"
	"strconv"
	"strings"
)

// Sprint renders a node with every binary expression fully parenthesised,
// e.g. "1 + 2 * 3;" becomes "(1+(2*3));". Statements are separated by
// newlines.
func Sprint(n Node) string {
	var b strings.Builder
	write(&b, n)

	return b.String()
}

func write(b *strings.Builder, n Node) {
	switch n := n.(type) {
	case *Program:
		for i, stmt := range n.Body {
			if i > 0 {
				b.WriteByte('\n')
			}

			write(b, stmt)
		}
	case *ExpressionStatement:
		write(b, n.Body)
		b.WriteByte(';')
	case *BinaryExpression:
		b.WriteByte('(')
		write(b, n.Left)
		b.WriteString(string(n.Operator))
		write(b, n.Right)
		b.WriteByte(')')
	case *NumericLiteral:
		b.WriteString(formatNumber(n.Value))
	case *StringLiteral:
		b.WriteString(strconv.Quote(n.Value))
	}
}

func formatNumber(v float64) string {
	if math.IsInf(v, 1) {
		return "Infinity"
	}

	return strconv.FormatFloat(v, 'f', -1, 64)
}
