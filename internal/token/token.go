// Package token defines the lexical token model shared by the
// tokenization engine and the renderers.
package token

// Kind classifies a lexical span. The set is closed: renderers map
// each kind to a style or CSS class and nothing else is ever emitted.
type Kind int

const (
	Keyword Kind = iota
	String
	Number
	Comment
	Operator
	Tag
	AttrName
	AttrValue
)

// String returns the hyphenated kind name, which doubles as the CSS
// class suffix in HTML output.
func (k Kind) String() string {
	switch k {
	case Keyword:
		return "keyword"
	case String:
		return "string"
	case Number:
		return "number"
	case Comment:
		return "comment"
	case Operator:
		return "operator"
	case Tag:
		return "tag"
	case AttrName:
		return "attr-name"
	case AttrValue:
		return "attr-value"
	default:
		return "unknown"
	}
}

// Kinds lists every token kind in declaration order.
func Kinds() []Kind {
	return []Kind{Keyword, String, Number, Comment, Operator, Tag, AttrName, AttrValue}
}

// Token is a classified span of the source buffer. Start and End are
// byte offsets with 0 <= Start < End <= len(source); Text is the
// corresponding substring. Tokens are write-once: the engine never
// mutates one after emitting it.
type Token struct {
	Kind  Kind
	Text  string
	Start int
	End   int
}
