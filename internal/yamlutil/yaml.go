// Package yamlutil wraps goccy/go-yaml so the rest of the module does not
// depend on its decoding options directly.
package yamlutil

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"
)

// MaxInputSize limits YAML input to prevent memory exhaustion (default 4MB).
// Document trees are larger than config files, hence the generous bound.
var MaxInputSize = 4 << 20

var (
	ErrNilData        = errors.New("yamlutil: nil or empty data")
	ErrNilDestination = errors.New("yamlutil: nil destination pointer")
	ErrInputTooLarge  = errors.New("yamlutil: input exceeds maximum size")
	ErrNoDocument     = errors.New("yamlutil: no YAML document in input")
)

func checkSize(data []byte) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return ErrNilData
	}
	if len(data) > MaxInputSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	}
	return nil
}

// Unmarshal decodes data into v, tolerating unknown fields.
func Unmarshal(data []byte, v any) error {
	if err := checkSize(data); err != nil {
		return err
	}
	if v == nil {
		return ErrNilDestination
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}

// UnmarshalStrict rejects unknown fields in the input.
func UnmarshalStrict(data []byte, v any) error {
	if err := checkSize(data); err != nil {
		return err
	}
	if v == nil {
		return ErrNilDestination
	}
	if err := yaml.UnmarshalWithOptions(data, v, yaml.Strict()); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}

// ParseAST parses data and returns the body of its first document.
// Node tokens keep their line/column positions.
func ParseAST(data []byte) (ast.Node, error) {
	if err := checkSize(data); err != nil {
		return nil, err
	}
	file, err := parser.ParseBytes(data, 0)
	if err != nil {
		return nil, fmt.Errorf("yamlutil: %w", err)
	}
	if len(file.Docs) == 0 || file.Docs[0] == nil || file.Docs[0].Body == nil {
		return nil, ErrNoDocument
	}
	return file.Docs[0].Body, nil
}

var fence = []byte("---")

// SplitFrontMatter separates a leading "---" delimited YAML block from the
// rest of src. It returns nil front matter when src has none; bodyLine is
// the 1-based line where the body starts.
func SplitFrontMatter(src []byte) (front, body []byte, bodyLine int) {
	if !bytes.HasPrefix(src, fence) {
		return nil, src, 1
	}
	rest := src[len(fence):]
	nl := bytes.IndexByte(rest, '\n')
	if nl < 0 || len(bytes.TrimSpace(rest[:nl])) != 0 {
		return nil, src, 1
	}
	rest = rest[nl+1:]
	line := 2
	for off := 0; off <= len(rest); {
		end := bytes.IndexByte(rest[off:], '\n')
		var cur []byte
		if end < 0 {
			cur = rest[off:]
		} else {
			cur = rest[off : off+end]
		}
		if bytes.Equal(bytes.TrimRight(cur, " \t\r"), fence) {
			front = rest[:off]
			if end < 0 {
				return front, nil, line + 1
			}
			return front, rest[off+end+1:], line + 1
		}
		if end < 0 {
			break
		}
		off += end + 1
		line++
	}
	// Unterminated block: treat everything as body.
	return nil, src, 1
}
