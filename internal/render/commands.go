package render

// Kind enumerates the recognized commands.
type Kind int

const (
	KindUnknown Kind = iota
	KindIndex
	KindArticle
	KindArticles
	KindSection
	KindImg
	KindFigure
	KindP
	KindLine
	KindAddress
	KindN
	KindCode
	KindUl
	KindLink
	KindBlockcode
	KindIframe
)

var kindNames = map[string]Kind{
	"index":     KindIndex,
	"article":   KindArticle,
	"articles":  KindArticles,
	"section":   KindSection,
	"img":       KindImg,
	"figure":    KindFigure,
	"p":         KindP,
	"line":      KindLine,
	"address":   KindAddress,
	"n":         KindN,
	"code":      KindCode,
	"ul":        KindUl,
	"link":      KindLink,
	"blockcode": KindBlockcode,
	"iframe":    KindIframe,
}

// KindOf maps a command name to its Kind.
func KindOf(name string) Kind {
	return kindNames[name]
}

// CommandNames returns the recognized command names.
func CommandNames() []string {
	names := make([]string, 0, len(kindNames))
	for name := range kindNames {
		names = append(names, name)
	}
	return names
}
