// Package analysis builds the cross-document metadata of a site: publish
// date ordering per directory, prev/next links, the title index, and a
// content fingerprint per document.
//
// Analysis needs every document and must finish before any page is
// rendered. Its Report is immutable and safe for concurrent readers.
package analysis

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"path"
	"sort"
	"time"

	"github.com/alnah/go-tmlsite/internal/dateutil"
	"github.com/alnah/go-tmlsite/internal/document"
)

// ArticleCommand is the root command name of dated articles.
const ArticleCommand = "article"

// ErrDuplicatePath indicates two documents share a site path.
var ErrDuplicatePath = errors.New("duplicate document path")

// Heading identifies a page by path and title.
type Heading struct {
	Path  string
	Title document.RichText
}

// Info is the per-document metadata record.
type Info struct {
	Loc         document.Location
	Prev        *Heading // older neighbour in the same directory
	Next        *Heading // newer neighbour in the same directory
	Fingerprint string
	Date        time.Time
	Dated       bool // true for article roots
}

// TitleIndex maps a directory ("" for the site root) to its pages in
// ascending publish-date order.
type TitleIndex map[string][]Heading

// Lookup returns the pages under dir. dir is cleaned before lookup.
func (t TitleIndex) Lookup(dir string) []Heading {
	return t[dirKey(dir)]
}

// Report is the result of a full analysis pass.
type Report struct {
	infos  map[string]Info
	titles TitleIndex
}

// Info returns the metadata for the document at p.
func (r *Report) Info(p string) (Info, bool) {
	info, ok := r.infos[path.Clean(p)]
	return info, ok
}

// Titles returns the title index. Callers must not modify it.
func (r *Report) Titles() TitleIndex {
	return r.titles
}

// Len returns the number of analyzed documents.
func (r *Report) Len() int {
	return len(r.infos)
}

type entry struct {
	path  string
	date  time.Time
	dated bool
	title document.RichText
}

// Analyze scans docs and builds the site Report. The first attribute or
// date error aborts the whole analysis.
func Analyze(docs []*document.Document) (*Report, error) {
	groups := make(map[string][]entry)
	var order []string
	seen := make(map[string]struct{}, len(docs))

	for _, doc := range docs {
		p := path.Clean(doc.Path)
		if _, dup := seen[p]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicatePath, p)
		}
		seen[p] = struct{}{}

		title, err := doc.Root.Attrs.Text("title", doc.Root.Loc)
		if err != nil {
			return nil, err
		}
		date, dated, err := extractDate(doc.Root)
		if err != nil {
			return nil, err
		}

		dir := dirKey(path.Dir(p))
		if _, ok := groups[dir]; !ok {
			order = append(order, dir)
		}
		groups[dir] = append(groups[dir], entry{path: p, date: date, dated: dated, title: title})
	}

	titles := make(TitleIndex, len(groups))
	prevs := make(map[string]*Heading)
	nexts := make(map[string]*Heading)
	dates := make(map[string]entry, len(docs))

	for _, dir := range order {
		group := groups[dir]
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].date.Before(group[j].date)
		})

		headings := make([]Heading, len(group))
		for i, e := range group {
			headings[i] = Heading{Path: e.path, Title: e.title}
			dates[e.path] = e
		}
		for i := 1; i < len(headings); i++ {
			older, newer := headings[i-1], headings[i]
			prevs[newer.Path] = &older
			nexts[older.Path] = &newer
		}
		titles[dir] = headings
	}

	infos := make(map[string]Info, len(docs))
	for _, doc := range docs {
		p := path.Clean(doc.Path)
		e := dates[p]
		infos[p] = Info{
			Loc:         doc.Root.Loc,
			Prev:        prevs[p],
			Next:        nexts[p],
			Fingerprint: Fingerprint(doc.Source, p),
			Date:        e.date,
			Dated:       e.dated,
		}
	}

	return &Report{infos: infos, titles: titles}, nil
}

// extractDate reads the publish date of an article root. Other roots get
// the epoch so they sort ahead of every article.
func extractDate(root *document.Command) (time.Time, bool, error) {
	if root.Name != ArticleCommand {
		return dateutil.Epoch, false, nil
	}
	raw, err := root.Attrs.Str("date", root.Loc)
	if err != nil {
		return time.Time{}, false, err
	}
	date, err := dateutil.ParseArticleDate(raw)
	if err != nil {
		return time.Time{}, false, &document.ProcessError{Desc: "invalid date format", Loc: root.Attrs["date"].Loc}
	}
	return date, true, nil
}

// Fingerprint returns hex(SHA-256(source ++ path)).
func Fingerprint(source, p string) string {
	h := sha256.New()
	h.Write([]byte(source))
	h.Write([]byte(p))
	return hex.EncodeToString(h.Sum(nil))
}

func dirKey(dir string) string {
	dir = path.Clean(dir)
	if dir == "." || dir == "/" {
		return ""
	}
	return dir
}
