package exprc

import (
	"encoding/json"
	"math"
)

type NodeType string

const (
	NodeProgram             NodeType = "Program"
	NodeExpressionStatement NodeType = "ExpressionStatement"
	NodeNumericLiteral      NodeType = "NumericLiteral"
	NodeStringLiteral       NodeType = "StringLiteral"
	NodeBinaryExpression    NodeType = "BinaryExpression"
)

type Node interface {
	Type() NodeType
}

// Stmt and Expr are closed: only the node types in this file implement them.
type Stmt interface {
	Node
	stmtNode()
}

type Expr interface {
	Node
	exprNode()
}

type Program struct {
	Body []Stmt
}

type ExpressionStatement struct {
	Body Expr
}

type NumericLiteral struct {
	Value float64
}

type StringLiteral struct {
	Value string
}

type BinaryOp string

const (
	BinaryAddition       BinaryOp = "+"
	BinarySubtraction    BinaryOp = "-"
	BinaryMultiplication BinaryOp = "*"
	BinaryDivision       BinaryOp = "/"
)

type BinaryExpression struct {
	Operator BinaryOp
	Left     Expr
	Right    Expr
}

func (*Program) Type() NodeType             { return NodeProgram }
func (*ExpressionStatement) Type() NodeType { return NodeExpressionStatement }
func (*NumericLiteral) Type() NodeType      { return NodeNumericLiteral }
func (*StringLiteral) Type() NodeType       { return NodeStringLiteral }
func (*BinaryExpression) Type() NodeType    { return NodeBinaryExpression }

func (*ExpressionStatement) stmtNode() {}

func (*NumericLiteral) exprNode()   {}
func (*StringLiteral) exprNode()    {}
func (*BinaryExpression) exprNode() {}

// The JSON form tags every node with its type, e.g.
//
//	{"type":"NumericLiteral","value":42}

func (n *Program) MarshalJSON() ([]byte, error) {
	body := n.Body
	if body == nil {
		body = []Stmt{}
	}

	return json.Marshal(struct {
		Type NodeType `json:"type"`
		Body []Stmt   `json:"body"`
	}{n.Type(), body})
}

func (n *ExpressionStatement) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type NodeType `json:"type"`
		Body Expr     `json:"body"`
	}{n.Type(), n.Body})
}

// Values outside the float64 range encode as null.
func (n *NumericLiteral) MarshalJSON() ([]byte, error) {
	var value *float64
	if !math.IsInf(n.Value, 0) && !math.IsNaN(n.Value) {
		value = &n.Value
	}

	return json.Marshal(struct {
		Type  NodeType `json:"type"`
		Value *float64 `json:"value"`
	}{n.Type(), value})
}

func (n *StringLiteral) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type  NodeType `json:"type"`
		Value string   `json:"value"`
	}{n.Type(), n.Value})
}

func (n *BinaryExpression) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type     NodeType `json:"type"`
		Operator BinaryOp `json:"operator"`
		Left     Expr     `json:"left"`
		Right    Expr     `json:"right"`
	}{n.Type(), n.Operator, n.Left, n.Right})
}
