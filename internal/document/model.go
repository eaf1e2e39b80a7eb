package document

import (
	"fmt"
	"strconv"
)

// Location is a source position. It is carried for error reporting only.
type Location struct {
	Path   string
	Offset int
	Line   int
	Col    int
}

// String formats the location as path:line:col.
func (l Location) String() string {
	if l.Path == "" && l.Line == 0 {
		return "<unknown>"
	}
	return l.Path + ":" + strconv.Itoa(l.Line) + ":" + strconv.Itoa(l.Col)
}

// ValueType names the kind of an attribute value.
type ValueType int

const (
	TypeString ValueType = iota
	TypeInteger
	TypeRichText
)

func (t ValueType) String() string {
	switch t {
	case TypeString:
		return "string"
	case TypeInteger:
		return "integer"
	case TypeRichText:
		return "text"
	default:
		return fmt.Sprintf("ValueType(%d)", int(t))
	}
}

// Value is an attribute value: String, Integer or RichText.
type Value interface {
	Type() ValueType
	isValue()
}

// String is a plain string attribute value.
type String string

// Integer is an integer attribute value.
type Integer int64

// RichText is an attribute value holding inline content.
type RichText []Text

func (String) Type() ValueType   { return TypeString }
func (Integer) Type() ValueType  { return TypeInteger }
func (RichText) Type() ValueType { return TypeRichText }

func (String) isValue()   {}
func (Integer) isValue()  {}
func (RichText) isValue() {}

// Attr is an attribute value paired with its location.
type Attr struct {
	Value Value
	Loc   Location
}

// Attrs maps attribute names to values. Names are case-sensitive.
type Attrs map[string]Attr

// Elem is one element of inline content: PlainText, InlineLiteral or *Command.
type Elem interface {
	isElem()
}

// PlainText is ordinary text.
type PlainText string

// InlineLiteral is verbatim, code-styled inline text.
type InlineLiteral string

func (PlainText) isElem()     {}
func (InlineLiteral) isElem() {}
func (*Command) isElem()      {}

// Text pairs an inline element with its location.
type Text struct {
	Elem Elem
	Loc  Location
}

// Command is one markup construct.
type Command struct {
	Name  string
	Attrs Attrs
	Inner []Text
	Loc   Location
}

// Document is one site page.
type Document struct {
	// Path is the site-relative output path, slash separated (e.g. "article/a1.html").
	Path   string
	Root   *Command
	Source string
}

// Plain returns a Text holding plain text at loc.
func Plain(s string, loc Location) Text {
	return Text{Elem: PlainText(s), Loc: loc}
}

// Literal returns a Text holding an inline literal at loc.
func Literal(s string, loc Location) Text {
	return Text{Elem: InlineLiteral(s), Loc: loc}
}

// Cmd returns a Text holding cmd at its own location.
func Cmd(cmd *Command) Text {
	return Text{Elem: cmd, Loc: cmd.Loc}
}
