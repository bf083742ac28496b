/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package contentstream implements §4.1's Content Stream Interpreter: a
// tokenizer for the PDF content-stream operator language and a Processor
// that drives operands to a handler, recursing into Form XObjects.
package contentstream

import (
	"bufio"
	"bytes"
	"encoding/hex"
	"errors"
	"io"
	"strconv"

	"github.com/unidoc/pdftextplace/core"
)

// ErrInvalidOperand is returned when the tokenizer finds an empty operand token.
var ErrInvalidOperand = errors.New("contentstream: invalid operand")

// Operation is one (operator, operand-vector) event from a content stream.
type Operation struct {
	Operand string
	Params  []core.PdfObject
}

// Parser tokenizes a content stream into a sequence of Operations.
type Parser struct {
	reader *bufio.Reader
}

// NewParser returns a Parser reading content.
func NewParser(content []byte) *Parser {
	buf := make([]byte, 0, len(content)+1)
	buf = append(buf, content...)
	buf = append(buf, '\n') // ensure the last operand is not lost to EOF
	return &Parser{reader: bufio.NewReader(bytes.NewReader(buf))}
}

// Parse tokenizes the whole stream into Operations. A tokenizer failure
// partway through returns the operations collected so far alongside the error,
// so a caller can treat it as an abort-current-stream ParseError without
// losing prior operators.
func (p *Parser) Parse() ([]*Operation, error) {
	var ops []*Operation
	for {
		op := &Operation{}
		for {
			obj, isOperand, err := p.parseObject()
			if err != nil {
				if err == io.EOF {
					return ops, nil
				}
				return ops, err
			}
			if isOperand {
				s, _ := core.GetStringVal(obj)
				op.Operand = s
				ops = append(ops, op)
				break
			}
			op.Params = append(op.Params, obj)
		}
	}
}

func (p *Parser) skipSpaces() {
	for {
		bb, err := p.reader.Peek(1)
		if err != nil || !core.IsWhiteSpace(bb[0]) {
			return
		}
		p.reader.ReadByte()
	}
}

func (p *Parser) skipComments() {
	p.skipSpaces()
	first := true
	for {
		bb, err := p.reader.Peek(1)
		if err != nil {
			return
		}
		if first && bb[0] != '%' {
			return
		}
		first = false
		if bb[0] == '\r' || bb[0] == '\n' {
			return
		}
		p.reader.ReadByte()
	}
}

// parseObject returns the next token: obj is the parsed value, isOperand
// tells the caller whether it terminates the current operand list (i.e. is
// a bare keyword rather than a number/string/name/array/dict/bool/null).
func (p *Parser) parseObject() (obj core.PdfObject, isOperand bool, err error) {
	p.skipSpaces()
	for {
		bb, err := p.reader.Peek(2)
		if err != nil {
			return nil, false, err
		}
		switch {
		case bb[0] == '%':
			p.skipComments()
			p.skipSpaces()
			continue
		case bb[0] == '/':
			name, err := p.parseName()
			return name, false, err
		case bb[0] == '(':
			str, err := p.parseLiteralString()
			return str, false, err
		case bb[0] == '<' && bb[1] == '<':
			dict, err := p.parseDict()
			return dict, false, err
		case bb[0] == '<':
			str, err := p.parseHexString()
			return str, false, err
		case bb[0] == '[':
			arr, err := p.parseArray()
			return arr, false, err
		case isFloatDigit(bb[0]) || (bb[0] == '-' && isFloatDigit(bb[1])):
			num, err := p.parseNumber()
			return num, false, err
		default:
			peek, _ := p.reader.Peek(5)
			s := string(peek)
			switch {
			case len(s) >= 4 && s[:4] == "null":
				p.reader.Discard(4)
				return core.MakeNull(), false, nil
			case len(s) >= 5 && s[:5] == "false":
				p.reader.Discard(5)
				return core.MakeBool(false), false, nil
			case len(s) >= 4 && s[:4] == "true":
				p.reader.Discard(4)
				return core.MakeBool(true), false, nil
			}
			operand, err := p.parseOperand()
			if err != nil {
				return operand, false, err
			}
			if len(operand.String()) < 1 {
				return operand, false, ErrInvalidOperand
			}
			return operand, true, nil
		}
	}
}

func isFloatDigit(c byte) bool { return ('0' <= c && c <= '9') || c == '.' }

func (p *Parser) parseName() (*core.PdfObjectName, error) {
	p.reader.ReadByte() // '/'
	var buf bytes.Buffer
	for {
		bb, err := p.reader.Peek(1)
		if err != nil {
			break
		}
		c := bb[0]
		if core.IsWhiteSpace(c) || core.IsDelimiter(c) {
			break
		}
		if c == '#' {
			hx, err := p.reader.Peek(3)
			if err != nil || len(hx) < 3 {
				break
			}
			p.reader.Discard(3)
			decoded, err := hex.DecodeString(string(hx[1:3]))
			if err == nil {
				buf.Write(decoded)
			}
			continue
		}
		b, _ := p.reader.ReadByte()
		buf.WriteByte(b)
	}
	name := core.PdfObjectName(buf.String())
	return &name, nil
}

func (p *Parser) parseLiteralString() (*core.PdfObjectString, error) {
	p.reader.ReadByte() // '('
	var buf bytes.Buffer
	depth := 1
	for {
		b, err := p.reader.ReadByte()
		if err != nil {
			return core.MakeString(buf.String()), err
		}
		switch {
		case b == '\\':
			nb, err := p.reader.ReadByte()
			if err != nil {
				return core.MakeString(buf.String()), err
			}
			if core.IsOctalDigit(nb) {
				octal := []byte{nb}
				for len(octal) < 3 {
					peek, err := p.reader.Peek(1)
					if err != nil || !core.IsOctalDigit(peek[0]) {
						break
					}
					b, _ := p.reader.ReadByte()
					octal = append(octal, b)
				}
				v, err := strconv.ParseUint(string(octal), 8, 32)
				if err == nil {
					buf.WriteByte(byte(v))
				}
				continue
			}
			switch nb {
			case 'n':
				buf.WriteByte('\n')
			case 'r':
				buf.WriteByte('\r')
			case 't':
				buf.WriteByte('\t')
			case 'b':
				buf.WriteByte('\b')
			case 'f':
				buf.WriteByte('\f')
			case '(', ')', '\\':
				buf.WriteByte(nb)
			case '\n':
				// line continuation: escaped newline is dropped
			default:
				buf.WriteByte(nb)
			}
		case b == '(':
			depth++
			buf.WriteByte(b)
		case b == ')':
			depth--
			if depth == 0 {
				return core.MakeString(buf.String()), nil
			}
			buf.WriteByte(b)
		default:
			buf.WriteByte(b)
		}
	}
}

func (p *Parser) parseHexString() (*core.PdfObjectString, error) {
	p.reader.ReadByte() // '<'
	var buf bytes.Buffer
	for {
		bb, err := p.reader.Peek(1)
		if err != nil {
			return core.MakeHexString(""), err
		}
		if bb[0] == '>' {
			p.reader.ReadByte()
			break
		}
		b, _ := p.reader.ReadByte()
		if isHexDigit(b) {
			buf.WriteByte(b)
		}
	}
	s := buf.String()
	if len(s)%2 == 1 {
		s += "0"
	}
	decoded, _ := hex.DecodeString(s)
	return core.MakeHexString(string(decoded)), nil
}

func isHexDigit(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func (p *Parser) parseArray() (*core.PdfObjectArray, error) {
	p.reader.ReadByte() // '['
	arr := core.MakeArray()
	for {
		p.skipSpaces()
		bb, err := p.reader.Peek(1)
		if err != nil {
			return arr, err
		}
		if bb[0] == ']' {
			p.reader.ReadByte()
			break
		}
		obj, _, err := p.parseObject()
		if err != nil {
			return arr, err
		}
		arr.Append(obj)
	}
	return arr, nil
}

func (p *Parser) parseDict() (*core.PdfObjectDictionary, error) {
	p.reader.ReadByte()
	p.reader.ReadByte() // '<<'
	dict := core.MakeDict()
	for {
		p.skipSpaces()
		bb, err := p.reader.Peek(2)
		if err != nil {
			return dict, err
		}
		if bb[0] == '>' && bb[1] == '>' {
			p.reader.ReadByte()
			p.reader.ReadByte()
			break
		}
		key, err := p.parseName()
		if err != nil {
			return dict, err
		}
		p.skipSpaces()
		val, _, err := p.parseObject()
		if err != nil {
			return dict, err
		}
		dict.Set(*key, val)
	}
	return dict, nil
}

func (p *Parser) parseNumber() (core.PdfObject, error) {
	return core.ParseNumber(p.reader)
}

func (p *Parser) parseOperand() (*core.PdfObjectString, error) {
	var buf bytes.Buffer
	for {
		bb, err := p.reader.Peek(1)
		if err != nil {
			return core.MakeString(buf.String()), err
		}
		if core.IsDelimiter(bb[0]) || core.IsWhiteSpace(bb[0]) {
			break
		}
		b, _ := p.reader.ReadByte()
		buf.WriteByte(b)
	}
	return core.MakeString(buf.String()), nil
}
