package render

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/alnah/go-tmlsite/internal/analysis"
	"github.com/alnah/go-tmlsite/internal/document"
	"github.com/alnah/go-tmlsite/internal/xmltree"
)

var testLoc = document.Location{Path: "article/a1.tml.yaml", Line: 3, Col: 5}

func plain(s string) document.Text { return document.Plain(s, testLoc) }

func rich(s string) document.Attr {
	return document.Attr{Value: document.RichText{plain(s)}, Loc: testLoc}
}

func str(s string) document.Attr {
	return document.Attr{Value: document.String(s), Loc: testLoc}
}

func num(n int64) document.Attr {
	return document.Attr{Value: document.Integer(n), Loc: testLoc}
}

func cmd(name string, attrs document.Attrs, inner ...document.Text) *document.Command {
	return &document.Command{Name: name, Attrs: attrs, Inner: inner, Loc: testLoc}
}

func sub(name string, attrs document.Attrs, inner ...document.Text) document.Text {
	return document.Cmd(cmd(name, attrs, inner...))
}

func heading(p, title string) analysis.Heading {
	return analysis.Heading{Path: p, Title: document.RichText{plain(title)}}
}

type fakeSyntax struct{}

func (fakeSyntax) Highlight(lines []string) (string, error) {
	return "<b>" + strings.Join(lines, "\n") + "</b>", nil
}

type fakeHighlighter struct{}

func (fakeHighlighter) Find(lang string) (Syntax, bool) {
	if lang == "go" {
		return fakeSyntax{}, true
	}
	return nil, false
}

func testContext() Context {
	return Context{
		Loc:   testLoc,
		Level: 1,
		Titles: analysis.TitleIndex{
			"article": {heading("article/a1.html", "A1"), heading("article/a2.html", "A2")},
		},
		Highlighter: fakeHighlighter{},
		Fingerprint: "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef",
		Path:        "article/a1.html",
		Site:        DefaultSite(),
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func renderNode(t *testing.T, n xmltree.Node) string {
	t.Helper()
	var b strings.Builder
	if err := xmltree.Render(&b, n); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	return b.String()
}

func TestDedent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		lines []string
		want  []string
	}{
		{name: "common indentation", lines: []string{"", "  foo", "    bar", ""}, want: []string{"foo", "  bar"}},
		{name: "no indentation", lines: []string{"a", " b"}, want: []string{"a", " b"}},
		{name: "blank interior line", lines: []string{"    x", "", "    y"}, want: []string{"x", "", "y"}},
		{name: "whitespace ends", lines: []string{" \t", "  a", "\r"}, want: []string{"a"}},
		{name: "all blank", lines: []string{"", "  ", ""}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Dedent(tt.lines)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Dedent(%q) = %q, want %q", tt.lines, got, tt.want)
			}
		})
	}
}

func TestExcerpt(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("あ", 70)
	exact := strings.Repeat("x", ExcerptLength)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "long body is cut", in: long, want: strings.Repeat("あ", ExcerptLength) + ExcerptMarker},
		{name: "exact length kept", in: exact, want: exact + ExcerptMarker},
		{name: "short body trimmed", in: "  hello \n", want: "hello" + ExcerptMarker},
		{name: "cut then trimmed", in: strings.Repeat("a", 63) + " tail", want: strings.Repeat("a", 63) + ExcerptMarker},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Excerpt(tt.in); got != tt.want {
				t.Errorf("Excerpt() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFragment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cmd  *document.Command
		want string
	}{
		{
			name: "paragraph with inline literal",
			cmd:  cmd("p", nil, plain("run "), document.Literal("go test", testLoc)),
			want: `<p>run <span class="inline-code">go test</span></p>`,
		},
		{
			name: "structural wrappers",
			cmd:  cmd("n", nil, sub("line", nil, plain("a")), sub("address", nil, plain("b")), sub("code", nil, plain("c"))),
			want: `<div><span>a</span><address>b</address><code>c</code></div>`,
		},
		{
			name: "link",
			cmd:  cmd("link", document.Attrs{"url": str("https://example.com")}, plain("site")),
			want: `<a href="https://example.com">site</a>`,
		},
		{
			name: "img with classes",
			cmd:  cmd("img", document.Attrs{"url": str("a.png"), "alt": str("A"), "classes": str("wide")}),
			want: `<img src="a.png" class="wide" alt="A"/>`,
		},
		{
			name: "figure",
			cmd: cmd("figure", document.Attrs{"caption": rich("cap"), "id": str("f1")},
				sub("img", document.Attrs{"url": str("a.png"), "alt": str("A")})),
			want: `<figure id="f1"><div class="images"><img src="a.png" alt="A"/></div><figcaption>cap</figcaption></figure>`,
		},
		{
			name: "ul flattens n children",
			cmd:  cmd("ul", nil, sub("n", nil, plain("a"), plain("b")), sub("p", nil, plain("c"))),
			want: `<ul><li>ab</li><li><p>c</p></li></ul>`,
		},
		{
			name: "iframe keeps typed attributes only",
			cmd: cmd("iframe", document.Attrs{
				"width":  num(640),
				"height": str("480"),
				"src":    str("https://example.com/embed"),
				"style":  str("border:0"),
			}),
			want: `<iframe width="640" style="border:0" src="https://example.com/embed"></iframe>`,
		},
		{
			name: "articles lists the directory in index order",
			cmd:  cmd("articles", document.Attrs{"dir": str("article")}),
			want: `<ul><li><a href="a1.html">A1</a></li><li><a href="a2.html">A2</a></li></ul>`,
		},
		{
			name: "articles of unknown directory",
			cmd:  cmd("articles", document.Attrs{"dir": str("nowhere")}),
			want: `<ul></ul>`,
		},
		{
			name: "nested sections step heading levels",
			cmd: cmd("section", document.Attrs{"title": rich("T1")},
				sub("section", document.Attrs{"title": rich("T2")}, plain("body"))),
			want: `<section><header><h1>T1</h1></header><section><header><h2>T2</h2></header>body</section></section>`,
		},
		{
			name: "highlighted blockcode",
			cmd:  cmd("blockcode", document.Attrs{"src": str("\n  foo\n    bar\n"), "lang": str("go")}),
			want: "<code><pre><b>foo\n  bar</b></pre></code>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			n, err := Fragment(testContext(), tt.cmd)
			if err != nil {
				t.Fatalf("Fragment() error = %v", err)
			}
			if got := renderNode(t, n); got != tt.want {
				t.Errorf("Fragment() =\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func TestFragment_BlockcodeUnknownLanguage(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	ctx := testContext()
	ctx.Logger = slog.New(slog.NewTextHandler(&logs, nil))

	n, err := Fragment(ctx, cmd("blockcode", document.Attrs{"src": str("  x < y"), "lang": str("cobol-ish")}))
	if err != nil {
		t.Fatalf("Fragment() error = %v", err)
	}
	if got, want := renderNode(t, n), "<code><pre>x &lt; y</pre></code>"; got != want {
		t.Errorf("Fragment() = %s, want %s", got, want)
	}
	if !strings.Contains(logs.String(), "lang=cobol-ish") {
		t.Errorf("missing warning, logs: %s", logs.String())
	}
}

func TestFragment_Errors(t *testing.T) {
	t.Parallel()

	figureLoc := document.Location{Path: "article/a1.tml.yaml", Line: 9, Col: 1}
	badFigure := cmd("figure", document.Attrs{"caption": rich("cap")},
		sub("img", document.Attrs{"url": str("a.png"), "alt": str("A")}),
		sub("p", nil, plain("not an image")))
	badFigure.Loc = figureLoc

	tests := []struct {
		name    string
		cmd     *document.Command
		wantErr error
		check   func(t *testing.T, err error)
	}{
		{
			name:    "figure with non-img child",
			cmd:     badFigure,
			wantErr: document.ErrProcess,
			check: func(t *testing.T, err error) {
				var pe *document.ProcessError
				if !errors.As(err, &pe) {
					t.Fatalf("error %T is not a ProcessError", err)
				}
				if pe.Desc != "\\figure can only have \\img as child element." {
					t.Errorf("Desc = %q", pe.Desc)
				}
				if pe.Loc != figureLoc {
					t.Errorf("Loc = %v, want %v", pe.Loc, figureLoc)
				}
			},
		},
		{
			name:    "unknown command",
			cmd:     cmd("p", nil, sub("blink", nil, plain("x"))),
			wantErr: document.ErrNoSuchCommand,
			check: func(t *testing.T, err error) {
				var ne *document.NoSuchCommandError
				if !errors.As(err, &ne) || ne.Name != "blink" {
					t.Errorf("error = %v, want NoSuchCommand blink", err)
				}
			},
		},
		{
			name:    "img without alt",
			cmd:     cmd("img", document.Attrs{"url": str("a.png")}),
			wantErr: document.ErrMissingAttribute,
		},
		{
			name:    "section with string title",
			cmd:     cmd("section", document.Attrs{"title": str("flat")}),
			wantErr: document.ErrInvalidAttributeType,
		},
		{
			name:    "ul with plain text",
			cmd:     cmd("ul", nil, plain("loose")),
			wantErr: document.ErrProcess,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Fragment(testContext(), tt.cmd)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Fragment() error = %v, want %v", err, tt.wantErr)
			}
			if tt.check != nil {
				tt.check(t, err)
			}
		})
	}
}

func TestCompile_Article(t *testing.T) {
	t.Parallel()

	ctx := testContext()
	ctx.Prev = &analysis.Heading{Path: "article/a0.html", Title: document.RichText{plain("Older")}}
	ctx.Next = &analysis.Heading{Path: "article/a2.html", Title: document.RichText{plain("Newer")}}
	ctx.Date = time.Date(2021, 1, 1, 0, 0, 0, 0, time.FixedZone("JST", 9*3600))
	ctx.Dated = true
	ctx.CardPath = "article/a1.png"

	root := cmd("article", document.Attrs{"title": rich("Hello")},
		sub("p", nil, plain("  first paragraph  ")))

	doc, err := Compile(ctx, root)
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	got := doc.String()

	for _, want := range []string{
		`<?xml version="1.0" encoding="UTF-8"?>` + "\n",
		`<html xmlns="http://www.w3.org/1999/xhtml" lang="ja">`,
		`<head prefix="og: http://ogp.me/ns# object: http://ogp.me/ns/object#">`,
		`<link href="../index.css" rel="stylesheet" type="text/css"/>`,
		`<meta property="og:type" content="article"/>`,
		`<meta property="og:url" content="https://namachan10777.dev/article/a1.html"/>`,
		`<meta property="og:image" content="https://namachan10777.dev/article/a1.png"/>`,
		`<meta name="description" content="first paragraph……"/>`,
		`<meta property="article:published_time" content="2021-01-01T00:00:00+09:00"/>`,
		`<title>Hello</title>`,
		`<div id="root"><header><a href="../index.html">戻る</a><div class="hash">0123456</div><h1>Hello</h1></header>`,
		`<footer><a href="a0.html" class="prev-article">Older</a><a href="a2.html" class="next-article">Newer</a></footer>`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %s\n%s", want, got)
		}
	}
}

func TestCompile_Index(t *testing.T) {
	t.Parallel()

	ctx := testContext()
	ctx.Path = "index.html"

	root := cmd("index", document.Attrs{"title": rich("Home")},
		sub("articles", document.Attrs{"dir": str("article")}))

	doc, err := Compile(ctx, root)
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	got := doc.String()

	for _, want := range []string{
		`<head prefix="og: http://ogp.me/ns# article: http://ogp.me/ns/article#">`,
		`<link href="index.css" rel="stylesheet" type="text/css"/>`,
		`<meta property="og:type" content="website"/>`,
		`<meta property="og:description" content="about me"/>`,
		`<meta property="og:image" content="https://namachan10777.dev/res/icon.jpg"/>`,
		`<div id="root"><header><h1>Home</h1></header><ul><li><a href="article/a1.html">A1</a></li>`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %s\n%s", want, got)
		}
	}
	if strings.Contains(got, `class="hash"`) {
		t.Error("index page must not carry a fingerprint badge")
	}
}

func TestCompile_RejectsNonPageRoot(t *testing.T) {
	t.Parallel()

	_, err := Compile(testContext(), cmd("p", nil, plain("x")))
	if !errors.Is(err, document.ErrNoSuchCommand) {
		t.Errorf("Compile() error = %v, want ErrNoSuchCommand", err)
	}
}

func TestContext_ForksDoNotMutate(t *testing.T) {
	t.Parallel()

	ctx := testContext()
	other := document.Location{Path: "x", Line: 99}
	moved := ctx.At(other).Nested()

	if ctx.Loc != testLoc || ctx.Level != 1 {
		t.Errorf("parent changed: %v level %d", ctx.Loc, ctx.Level)
	}
	if moved.Loc != other || moved.Level != 2 {
		t.Errorf("fork = %v level %d", moved.Loc, moved.Level)
	}
}
