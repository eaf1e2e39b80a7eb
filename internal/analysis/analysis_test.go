package analysis

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alnah/go-tmlsite/internal/document"
)

func article(p, title, date string) *document.Document {
	loc := document.Location{Path: p, Line: 1, Col: 1}
	attrs := document.Attrs{
		"title": {Value: document.RichText{document.Plain(title, loc)}, Loc: loc},
	}
	if date != "" {
		attrs["date"] = document.Attr{Value: document.String(date), Loc: loc}
	}
	return &document.Document{
		Path:   p,
		Root:   &document.Command{Name: "article", Attrs: attrs, Loc: loc},
		Source: "source of " + p,
	}
}

func index(p, title string) *document.Document {
	doc := article(p, title, "")
	doc.Root.Name = "index"
	return doc
}

func titleOf(h *Heading) string {
	if h == nil {
		return ""
	}
	return string(h.Title[0].Elem.(document.PlainText))
}

func TestAnalyze_OrdersAndLinksPerDirectory(t *testing.T) {
	t.Parallel()

	docs := []*document.Document{
		index("index.html", "Home"),
		article("article/c.html", "C", "2021-03-01"),
		article("article/a.html", "A", "2021-01-01"),
		article("diary/d.html", "D", "2020-01-01"),
		article("article/b.html", "B", "2021-02-01"),
	}

	report, err := Analyze(docs)
	require.NoError(t, err)
	assert.Equal(t, 5, report.Len())

	got := report.Titles().Lookup("article")
	require.Len(t, got, 3)
	assert.Equal(t, []string{"article/a.html", "article/b.html", "article/c.html"},
		[]string{got[0].Path, got[1].Path, got[2].Path})

	a, ok := report.Info("article/a.html")
	require.True(t, ok)
	assert.Nil(t, a.Prev)
	assert.Equal(t, "B", titleOf(a.Next))

	b, _ := report.Info("article/b.html")
	assert.Equal(t, "A", titleOf(b.Prev))
	assert.Equal(t, "C", titleOf(b.Next))

	c, _ := report.Info("article/c.html")
	assert.Equal(t, "B", titleOf(c.Prev))
	assert.Nil(t, c.Next)

	// Links never cross directories.
	d, _ := report.Info("diary/d.html")
	assert.Nil(t, d.Prev)
	assert.Nil(t, d.Next)

	home, _ := report.Info("index.html")
	assert.False(t, home.Dated)
	assert.Len(t, report.Titles().Lookup(""), 1)
	assert.Len(t, report.Titles().Lookup("."), 1)
	assert.Empty(t, report.Titles().Lookup("nowhere"))
}

func TestAnalyze_ChainVisitsEveryArticleOnce(t *testing.T) {
	t.Parallel()

	dates := []string{"2020-05-01", "2019-01-01", "2020-01-01", "2021-07-07", "2018-12-31", "2020-03-03"}
	var docs []*document.Document
	for i, d := range dates {
		docs = append(docs, article("post/"+string(rune('a'+i))+".html", d, d))
	}

	report, err := Analyze(docs)
	require.NoError(t, err)

	headings := report.Titles().Lookup("post")
	first, _ := report.Info(headings[0].Path)
	require.Nil(t, first.Prev)

	visited := map[string]bool{}
	cur := headings[0].Path
	for {
		require.False(t, visited[cur], "cycle at %s", cur)
		visited[cur] = true
		info, ok := report.Info(cur)
		require.True(t, ok)
		if info.Next == nil {
			break
		}
		require.NotEqual(t, cur, info.Next.Path)
		next, _ := report.Info(info.Next.Path)
		require.NotNil(t, next.Prev)
		require.Equal(t, cur, next.Prev.Path)
		cur = info.Next.Path
	}
	assert.Len(t, visited, len(dates))
	assert.Equal(t, headings[len(headings)-1].Path, cur)
}

func TestAnalyze_StableForEqualDates(t *testing.T) {
	t.Parallel()

	docs := []*document.Document{
		article("p/z.html", "Z", "2020-01-01"),
		article("p/a.html", "A", "2020-01-01"),
		article("p/m.html", "M", "2020-01-01"),
	}
	report, err := Analyze(docs)
	require.NoError(t, err)

	got := report.Titles().Lookup("p")
	assert.Equal(t, "p/z.html", got[0].Path)
	assert.Equal(t, "p/a.html", got[1].Path)
	assert.Equal(t, "p/m.html", got[2].Path)
}

func TestAnalyze_Errors(t *testing.T) {
	t.Parallel()

	noTitle := article("a.html", "x", "2020-01-01")
	delete(noTitle.Root.Attrs, "title")

	wrongTitle := article("a.html", "x", "2020-01-01")
	wrongTitle.Root.Attrs["title"] = document.Attr{Value: document.String("x")}

	badDate := article("a.html", "x", "2020/01/01")

	intDate := article("a.html", "x", "2020-01-01")
	intDate.Root.Attrs["date"] = document.Attr{Value: document.Integer(20200101)}

	tests := []struct {
		name string
		doc  *document.Document
		want error
	}{
		{name: "missing title", doc: noTitle, want: document.ErrMissingAttribute},
		{name: "title not rich text", doc: wrongTitle, want: document.ErrInvalidAttributeType},
		{name: "missing date", doc: article("a.html", "x", ""), want: document.ErrMissingAttribute},
		{name: "malformed date", doc: badDate, want: document.ErrProcess},
		{name: "date not a string", doc: intDate, want: document.ErrInvalidAttributeType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			report, err := Analyze([]*document.Document{article("ok.html", "ok", "2020-01-01"), tt.doc})
			assert.Nil(t, report)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}

	var perr *document.ProcessError
	_, err := Analyze([]*document.Document{badDate})
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "invalid date format", perr.Desc)
}

func TestAnalyze_DuplicatePath(t *testing.T) {
	t.Parallel()

	_, err := Analyze([]*document.Document{
		article("a/x.html", "1", "2020-01-01"),
		article("a/./x.html", "2", "2020-01-02"),
	})
	assert.ErrorIs(t, err, ErrDuplicatePath)
}

func TestFingerprint(t *testing.T) {
	t.Parallel()

	fp := Fingerprint("hello", "a.html")
	assert.Len(t, fp, 64)
	assert.Regexp(t, "^[0-9a-f]{64}$", fp)
	assert.Equal(t, fp, Fingerprint("hello", "a.html"))
	assert.NotEqual(t, fp, Fingerprint("hello", "b.html"))
	assert.NotEqual(t, fp, Fingerprint("hellp", "a.html"))
	// sha256("") of empty content and empty path
	assert.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", Fingerprint("", ""))

	report, err := Analyze([]*document.Document{article("x/y.html", "t", "2020-01-01")})
	require.NoError(t, err)
	info, _ := report.Info("x/y.html")
	assert.Equal(t, Fingerprint("source of x/y.html", "x/y.html"), info.Fingerprint)
}
