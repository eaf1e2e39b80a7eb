package ogp

import (
	"fmt"
	"regexp"
)

const (
	// Width is the line budget in UTF-8 bytes.
	Width = 40
	// FontSize is the text size in pixels; lines are FontSize apart.
	FontSize = 30

	breakCost = 6
)

var (
	separatorRe = regexp.MustCompile(`[、,\.。．…‥，・]`)
	spaceRe     = regexp.MustCompile("[ 　\n\r\t]")
	openRe      = regexp.MustCompile(`[\(\[\{【「（]`)
	closeRe     = regexp.MustCompile(`[\)\]\}】」）]`)
)

// Costs returns len(tokens)+1 boundary costs. costs[i] is added to the
// length check before token i. A token sets the cost of the boundary
// before and after it; a later token overrides the shared boundary.
func Costs(tokens []string) []int {
	costs := make([]int, len(tokens)+1)
	for i, tok := range tokens {
		var before, after int
		switch {
		case separatorRe.MatchString(tok):
			before, after = -breakCost, breakCost
		case spaceRe.MatchString(tok):
			before, after = breakCost, breakCost
		case openRe.MatchString(tok):
			before, after = breakCost, -breakCost
		case closeRe.MatchString(tok):
			before, after = -breakCost, breakCost
		default:
			continue
		}
		costs[i] = before
		costs[i+1] = after
	}
	return costs
}

// Split packs tokens greedily into lines of at most width bytes, where a
// token starts a new line when the current length plus its own length
// plus the cost before it exceeds width.
func Split(tokens []string, width int) []string {
	costs := Costs(tokens)
	var (
		lines []string
		line  string
	)
	for i, tok := range tokens {
		if len(line)+len(tok)+costs[i] > width {
			if line != "" {
				lines = append(lines, line)
			}
			line = tok
			continue
		}
		line += tok
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}

// Wrap tokenizes title and splits it into lines.
func Wrap(t Tokenizer, title string, width int) ([]string, error) {
	if width <= 0 {
		return nil, fmt.Errorf("%w: width must be positive, got %d", ErrLayout, width)
	}
	tokens, err := t.Tokenize(title)
	if err != nil {
		return nil, fmt.Errorf("%w: tokenizing %q: %v", ErrLayout, title, err)
	}
	return Split(tokens, width), nil
}

// Canvas returns the image size for a line budget and font size.
func Canvas(width, fontSize int) (w, h int) {
	w = fontSize * (width + 6)
	h = w / 3 * 2
	return w, h
}

// Placement is a line anchored at its baseline origin.
type Placement struct {
	Text string
	X, Y int
}

// Place positions lines bottom-up on a canvas of height h: the last line
// sits two font sizes above the bottom edge and every earlier line one
// font size higher.
func Place(lines []string, fontSize, h int) []Placement {
	out := make([]Placement, len(lines))
	y := h - fontSize*2
	for i := len(lines) - 1; i >= 0; i-- {
		out[i] = Placement{Text: lines[i], X: 0, Y: y}
		y -= fontSize
	}
	return out
}
