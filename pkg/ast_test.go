package exprc

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodeTypes(t *testing.T) {
	got, err := Parse(`1 + "a";`)
	require.NoError(t, err)

	assert.Equal(t, NodeProgram, got.Type())

	stmt := got.Body[0]
	assert.Equal(t, NodeExpressionStatement, stmt.Type())

	expr := stmt.(*ExpressionStatement).Body.(*BinaryExpression)
	assert.Equal(t, NodeBinaryExpression, expr.Type())
	assert.Equal(t, NodeNumericLiteral, expr.Left.Type())
	assert.Equal(t, NodeStringLiteral, expr.Right.Type())
}

func TestProgramJSON(t *testing.T) {
	got, err := Parse(`1 + 2 * 'a'; 7;`)
	require.NoError(t, err)

	data, err := json.Marshal(got)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"type": "Program",
		"body": [
			{
				"type": "ExpressionStatement",
				"body": {
					"type": "BinaryExpression",
					"operator": "+",
					"left": {"type": "NumericLiteral", "value": 1},
					"right": {
						"type": "BinaryExpression",
						"operator": "*",
						"left": {"type": "NumericLiteral", "value": 2},
						"right": {"type": "StringLiteral", "value": "a"}
					}
				}
			},
			{
				"type": "ExpressionStatement",
				"body": {"type": "NumericLiteral", "value": 7}
			}
		]
	}`, string(data))
}

func TestNumericLiteralJSON(t *testing.T) {
	got, err := Parse("99999999999999999999; " + strings.Repeat("9", 400) + ";")
	require.NoError(t, err)

	data, err := json.Marshal(got)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"type": "Program",
		"body": [
			{"type": "ExpressionStatement", "body": {"type": "NumericLiteral", "value": 1e20}},
			{"type": "ExpressionStatement", "body": {"type": "NumericLiteral", "value": null}}
		]
	}`, string(data))
}

func TestEmptyProgramJSON(t *testing.T) {
	data, err := json.Marshal(&Program{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"type": "Program", "body": []}`, string(data))
}
