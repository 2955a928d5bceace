package genarith

import (
	"fmt"
	"strings"

	"github.com/PaesslerAG/gval"
)

type renderedTerm struct {
	op    Gene
	digit Gene
}

// terms walks genes with the decoder's grammar, without repairing anything.
// dangling is the trailing operator with no digit after it, or noOperator.
func terms(genes []Gene) (parsed []renderedTerm, dangling Gene) {
	expectsNumber := true
	op := noOperator

	for _, gene := range genes {
		if expectsNumber {
			if !gene.IsDigit() {
				continue
			}
			parsed = append(parsed, renderedTerm{op: op, digit: gene})
			expectsNumber = false
		} else {
			if !gene.IsOperator() {
				continue
			}
			op = gene
			expectsNumber = true
		}
	}

	if expectsNumber && len(parsed) > 0 {
		dangling = op
	} else {
		dangling = noOperator
	}
	return parsed, dangling
}

// Expression renders the genes the decoder reads, space separated, e.g. "3 * 4 + 2".
// A trailing operator with no digit after it is kept.
func (c *Chromosome) Expression() string {
	parsed, dangling := terms(c.genes)

	parts := make([]string, 0, len(parsed)*2+1)
	for i, term := range parsed {
		if i > 0 {
			parts = append(parts, term.op.String())
		}
		parts = append(parts, term.digit.String())
	}
	if dangling != noOperator {
		parts = append(parts, dangling.String())
	}

	return strings.Join(parts, " ")
}

// InfixExpression renders the decoded expression with explicit left-to-right grouping,
// e.g. "((3*4)+2)". Division by zero is written as the addition it is evaluated as.
// A dangling trailing operator is dropped.
func (c *Chromosome) InfixExpression() string {
	parsed, _ := terms(c.genes)

	var buf strings.Builder
	buf.Grow(len(parsed) * 4)

	if len(parsed) > 1 {
		buf.WriteString(strings.Repeat("(", len(parsed)-1))
	}
	for i, term := range parsed {
		if i > 0 {
			op := term.op
			if op == Divide && term.digit == 0 {
				op = Add
			}
			buf.WriteByte(op.Symbol())
		}
		buf.WriteByte(term.digit.Symbol())
		if i > 0 {
			buf.WriteByte(')')
		}
	}

	return buf.String()
}

// VerifyExpression evaluates InfixExpression with a general arithmetic evaluator and
// truncates the value, independently of Decode
func VerifyExpression(c *Chromosome) (int64, error) {
	if _, dangling := terms(c.genes); dangling != noOperator {
		return InvalidResult, fmt.Errorf("expression %q ends on a dangling operator", c.Expression())
	}

	expression := c.InfixExpression()
	if expression == "" {
		return InvalidResult, fmt.Errorf("chromosome %q contains no digits", c.String())
	}

	value, err := gval.Evaluate(expression, nil, gval.Arithmetic())
	if err != nil {
		return InvalidResult, fmt.Errorf("evaluating %q: %w", expression, err)
	}

	f, ok := value.(float64)
	if !ok {
		return InvalidResult, fmt.Errorf("evaluating %q: expected float, got %T", expression, value)
	}
	result, ok := truncate(f)
	if !ok {
		return InvalidResult, fmt.Errorf("evaluating %q: %v does not fit in an int64", expression, f)
	}

	return result, nil
}
