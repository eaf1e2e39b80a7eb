package document

import (
	"fmt"
	"strconv"

	"github.com/goccy/go-yaml/ast"

	"github.com/alnah/go-tmlsite/internal/yamlutil"
)

// Decode reads a command tree from its YAML interchange form.
//
// A command is a mapping with a "name" key and optional "attrs" (mapping)
// and "inner" (sequence) keys. Inline content is a sequence whose items are
// plain strings, {literal: "..."} mappings, or commands. Attribute values
// are strings, integers, or sequences (rich text).
//
//	name: article
//	attrs:
//	  title: [Hello]
//	  date: "2021-04-01"
//	inner:
//	  - name: p
//	    inner: ["some ", {literal: code}, " here"]
//
// srcPath is recorded in every Location; docPath becomes Document.Path.
func Decode(srcPath, docPath string, data []byte) (*Document, error) {
	body, err := yamlutil.ParseAST(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, srcPath, err)
	}
	d := decoder{path: srcPath}
	root, err := d.command(body)
	if err != nil {
		return nil, err
	}
	return &Document{Path: docPath, Root: root, Source: string(data)}, nil
}

type decoder struct {
	path string
}

func (d decoder) loc(n ast.Node) Location {
	tk := n.GetToken()
	if tk == nil || tk.Position == nil {
		return Location{Path: d.path}
	}
	return Location{Path: d.path, Offset: tk.Position.Offset, Line: tk.Position.Line, Col: tk.Position.Column}
}

func (d decoder) errorf(n ast.Node, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", ErrDecode, d.loc(n), fmt.Sprintf(format, args...))
}

func (d decoder) command(n ast.Node) (*Command, error) {
	n = unwrap(n)
	pairs, ok := mappingPairs(n)
	if !ok {
		return nil, d.errorf(n, "command must be a mapping")
	}
	cmd := &Command{Attrs: Attrs{}, Loc: d.loc(n)}
	for _, kv := range pairs {
		switch key := keyName(kv.Key); key {
		case "name":
			name, ok := scalar(kv.Value)
			if !ok || name == "" {
				return nil, d.errorf(kv.Value, "command name must be a non-empty string")
			}
			cmd.Name = name
		case "attrs":
			if err := d.attrs(kv.Value, cmd.Attrs); err != nil {
				return nil, err
			}
		case "inner":
			inner, err := d.text(kv.Value)
			if err != nil {
				return nil, err
			}
			cmd.Inner = inner
		default:
			return nil, d.errorf(kv.Key, "unknown command key %q", key)
		}
	}
	if cmd.Name == "" {
		return nil, d.errorf(n, "command without name")
	}
	return cmd, nil
}

func (d decoder) attrs(n ast.Node, into Attrs) error {
	n = unwrap(n)
	if _, null := n.(*ast.NullNode); null {
		return nil
	}
	pairs, ok := mappingPairs(n)
	if !ok {
		return d.errorf(n, "attrs must be a mapping")
	}
	for _, kv := range pairs {
		name := keyName(kv.Key)
		if _, dup := into[name]; dup {
			return d.errorf(kv.Key, "duplicate attribute %q", name)
		}
		v, err := d.value(kv.Value)
		if err != nil {
			return err
		}
		into[name] = Attr{Value: v, Loc: d.loc(kv.Value)}
	}
	return nil
}

func (d decoder) value(n ast.Node) (Value, error) {
	n = unwrap(n)
	switch v := n.(type) {
	case *ast.IntegerNode:
		i, err := strconv.ParseInt(v.GetToken().Value, 0, 64)
		if err != nil {
			return nil, d.errorf(n, "integer out of range: %v", err)
		}
		return Integer(i), nil
	case *ast.SequenceNode:
		text, err := d.text(v)
		if err != nil {
			return nil, err
		}
		return RichText(text), nil
	}
	if s, ok := scalar(n); ok {
		return String(s), nil
	}
	return nil, d.errorf(n, "unsupported attribute value")
}

func (d decoder) text(n ast.Node) ([]Text, error) {
	n = unwrap(n)
	if _, null := n.(*ast.NullNode); null {
		return nil, nil
	}
	seq, ok := n.(*ast.SequenceNode)
	if !ok {
		return nil, d.errorf(n, "inline content must be a sequence")
	}
	out := make([]Text, 0, len(seq.Values))
	for _, item := range seq.Values {
		item = unwrap(item)
		if s, ok := scalar(item); ok {
			out = append(out, Plain(s, d.loc(item)))
			continue
		}
		pairs, ok := mappingPairs(item)
		if !ok {
			return nil, d.errorf(item, "inline item must be a string or a mapping")
		}
		if len(pairs) == 1 && keyName(pairs[0].Key) == "literal" {
			s, ok := scalar(pairs[0].Value)
			if !ok {
				return nil, d.errorf(pairs[0].Value, "literal must be a string")
			}
			out = append(out, Literal(s, d.loc(item)))
			continue
		}
		cmd, err := d.command(item)
		if err != nil {
			return nil, err
		}
		out = append(out, Cmd(cmd))
	}
	return out, nil
}

func unwrap(n ast.Node) ast.Node {
	for {
		switch v := n.(type) {
		case *ast.TagNode:
			n = v.Value
		case *ast.AnchorNode:
			n = v.Value
		case *ast.DocumentNode:
			n = v.Body
		default:
			return n
		}
	}
}

func mappingPairs(n ast.Node) ([]*ast.MappingValueNode, bool) {
	switch v := n.(type) {
	case *ast.MappingNode:
		return v.Values, true
	case *ast.MappingValueNode:
		return []*ast.MappingValueNode{v}, true
	}
	return nil, false
}

func keyName(k ast.Node) string {
	if s, ok := unwrap(k).(*ast.StringNode); ok {
		return s.Value
	}
	return k.GetToken().Value
}

// scalar returns the string form of any scalar node other than null.
func scalar(n ast.Node) (string, bool) {
	switch v := unwrap(n).(type) {
	case *ast.StringNode:
		return v.Value, true
	case *ast.LiteralNode:
		return v.Value.Value, true
	case *ast.IntegerNode, *ast.FloatNode, *ast.BoolNode:
		return v.GetToken().Value, true
	}
	return "", false
}
