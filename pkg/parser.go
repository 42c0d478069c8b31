package exprc

import (
	"io"
	"strconv"
)

// Tokenizer is the token source consumed by the parser. Next returns io.EOF
// once the input is exhausted.
type Tokenizer interface {
	Next() (Token, error)
}

// Parser is a recursive descent parser with a single token of lookahead.
//
//	Program                  : Statements ;
//	Statements               : ExpressionStatement ExpressionStatement* ;
//	ExpressionStatement      : Expression SEMICOLON ;
//	Expression               : AdditiveExpression ;
//	AdditiveExpression       : MultiplicativeExpression ( ( "+" | "-" ) MultiplicativeExpression )* ;
//	MultiplicativeExpression : PrimaryExpression ( ( "*" | "/" ) PrimaryExpression )* ;
//	PrimaryExpression        : Literal ;
//	Literal                  : NUMBER | STRING ;
//
// A Parser is meant for a single Parse call and is not safe for concurrent use.
type Parser struct {
	tokenizer Tokenizer
	lookahead *Token
	end       Location

	done    bool
	program *Program
	err     error
}

func NewParser(tokenizer Tokenizer) *Parser {
	p := &Parser{
		tokenizer: tokenizer,
		end:       Location{Line: 1, Column: 1},
	}

	// A failure here surfaces from Parse
	p.err = p.advance()

	return p
}

// Parse parses src into a Program.
func Parse(src string) (*Program, error) {
	return NewParser(NewScanner(src)).Parse()
}

// Parse runs the grammar over the whole token stream. Later calls return the
// result of the first one.
func (p *Parser) Parse() (*Program, error) {
	if p.done {
		return p.program, p.err
	}

	p.done = true
	if p.err != nil {
		return nil, p.err
	}

	p.program, p.err = p.parseProgram()
	if p.err != nil {
		p.program = nil
	}

	return p.program, p.err
}

func (p *Parser) advance() error {
	tok, err := p.tokenizer.Next()
	if err == io.EOF {
		p.lookahead = nil
		return nil
	}

	if err != nil {
		return err
	}

	p.lookahead = &tok
	return nil
}

// eat consumes the lookahead if it is of the given type.
func (p *Parser) eat(typ TokenType) (*Token, error) {
	tok := p.lookahead
	if tok == nil {
		return nil, &ParseError{
			Err:      ErrUnexpectedEOF,
			Loc:      p.end,
			Expected: []TokenType{typ},
		}
	}

	if tok.Typ != typ {
		return nil, &ParseError{
			Err:      ErrUnexpectedToken,
			Loc:      tok.Loc,
			Expected: []TokenType{typ},
			Found:    tok,
		}
	}

	p.end = tok.end()
	if err := p.advance(); err != nil {
		return nil, err
	}

	return tok, nil
}

// checkOperator reports whether the lookahead is one of the given operators.
func (p *Parser) checkOperator(ops ...BinaryOp) bool {
	if p.lookahead == nil || p.lookahead.Typ != TokenOperator {
		return false
	}

	for _, op := range ops {
		if p.lookahead.Value == string(op) {
			return true
		}
	}

	return false
}

func (p *Parser) parseProgram() (*Program, error) {
	body, err := p.statements()
	if err != nil {
		return nil, err
	}

	return &Program{Body: body}, nil
}

func (p *Parser) statements() ([]Stmt, error) {
	var stmts []Stmt
	for {
		stmt, err := p.expressionStatement()
		if err != nil {
			return nil, err
		}

		stmts = append(stmts, stmt)

		if p.lookahead == nil {
			return stmts, nil
		}
	}
}

func (p *Parser) expressionStatement() (Stmt, error) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}

	if _, err := p.eat(TokenSemicolon); err != nil {
		return nil, err
	}

	return &ExpressionStatement{Body: expr}, nil
}

func (p *Parser) expression() (Expr, error) {
	return p.additiveExpression()
}

func (p *Parser) additiveExpression() (Expr, error) {
	lhs, err := p.multiplicativeExpression()
	if err != nil {
		return nil, err
	}

	for p.checkOperator(BinaryAddition, BinarySubtraction) {
		op, err := p.eat(TokenOperator)
		if err != nil {
			return nil, err
		}

		rhs, err := p.multiplicativeExpression()
		if err != nil {
			return nil, err
		}

		// Fold to the left: 1 - 2 - 3 is (1 - 2) - 3
		lhs = &BinaryExpression{
			Operator: BinaryOp(op.Value),
			Left:     lhs,
			Right:    rhs,
		}
	}

	return lhs, nil
}

func (p *Parser) multiplicativeExpression() (Expr, error) {
	lhs, err := p.primaryExpression()
	if err != nil {
		return nil, err
	}

	for p.checkOperator(BinaryMultiplication, BinaryDivision) {
		op, err := p.eat(TokenOperator)
		if err != nil {
			return nil, err
		}

		rhs, err := p.primaryExpression()
		if err != nil {
			return nil, err
		}

		lhs = &BinaryExpression{
			Operator: BinaryOp(op.Value),
			Left:     lhs,
			Right:    rhs,
		}
	}

	return lhs, nil
}

func (p *Parser) primaryExpression() (Expr, error) {
	return p.literal()
}

func (p *Parser) literal() (Expr, error) {
	if p.lookahead == nil {
		return nil, &ParseError{
			Err:      ErrUnexpectedLiteral,
			Loc:      p.end,
			Expected: []TokenType{TokenNumber, TokenString},
		}
	}

	switch tok := p.lookahead; tok.Typ {
	case TokenString:
		return p.stringLiteral()
	case TokenNumber:
		return p.numericLiteral()
	default:
		return nil, &ParseError{
			Err:      ErrUnexpectedLiteral,
			Loc:      tok.Loc,
			Expected: []TokenType{TokenNumber, TokenString},
			Found:    tok,
		}
	}
}

func (p *Parser) stringLiteral() (Expr, error) {
	tok, err := p.eat(TokenString)
	if err != nil {
		return nil, err
	}

	// Strip the quotes, the content is kept verbatim
	value := tok.Value
	if len(value) >= 2 {
		value = value[1 : len(value)-1]
	}

	return &StringLiteral{Value: value}, nil
}

func (p *Parser) numericLiteral() (Expr, error) {
	tok, err := p.eat(TokenNumber)
	if err != nil {
		return nil, err
	}

	// A digit run always converts. Runs past the float64 range become +Inf
	// and the range error is dropped.
	v, _ := strconv.ParseFloat(tok.Value, 64)

	return &NumericLiteral{Value: v}, nil
}
