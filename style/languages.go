package style

import "strings"

// Language identifies a fenced code block language that carries a badge.
type Language int

const (
	LangUnknown Language = iota
	LangJavaScript
	LangJSX
	LangGraphQL
	LangHTML
	LangCSS
	LangMDX
	LangShell
	LangC
	LangJava
	LangSh
	LangBash
	LangYAML
	LangMarkdown
	LangJSON
	LangDiff
	LangText
	LangFlow
	LangGo
)

var languageNames = [...]string{
	LangUnknown:    "unknown",
	LangJavaScript: "javascript",
	LangJSX:        "jsx",
	LangGraphQL:    "graphql",
	LangHTML:       "html",
	LangCSS:        "css",
	LangMDX:        "mdx",
	LangShell:      "shell",
	LangC:          "c",
	LangJava:       "java",
	LangSh:         "sh",
	LangBash:       "bash",
	LangYAML:       "yaml",
	LangMarkdown:   "markdown",
	LangJSON:       "json",
	LangDiff:       "diff",
	LangText:       "text",
	LangFlow:       "flow",
	LangGo:         "go",
}

// aliases maps info-string spellings onto a language.
var aliases = map[string]Language{
	"js":         LangJavaScript,
	"javascript": LangJavaScript,
	"jsx":        LangJSX,
	"graphql":    LangGraphQL,
	"gql":        LangGraphQL,
	"html":       LangHTML,
	"css":        LangCSS,
	"mdx":        LangMDX,
	"shell":      LangShell,
	"c":          LangC,
	"java":       LangJava,
	"sh":         LangSh,
	"bash":       LangBash,
	"yaml":       LangYAML,
	"yml":        LangYAML,
	"markdown":   LangMarkdown,
	"md":         LangMarkdown,
	"json":       LangJSON,
	"json5":      LangJSON,
	"diff":       LangDiff,
	"text":       LangText,
	"flow":       LangFlow,
	"go":         LangGo,
	"golang":     LangGo,
}

// String returns the canonical lowercase name, used in CSS class names.
func (l Language) String() string {
	if l < 0 || int(l) >= len(languageNames) {
		return languageNames[LangUnknown]
	}
	return languageNames[l]
}

// Class is the CSS class attached to code blocks in this language.
func (l Language) Class() string {
	return "code-lang-" + l.String()
}

// ParseLanguage resolves a fenced code info string. Only the first word is
// considered, so "js {1,3}" resolves to JavaScript.
func ParseLanguage(tag string) (Language, bool) {
	fields := strings.Fields(strings.ToLower(tag))
	if len(fields) == 0 {
		return LangUnknown, false
	}
	l, ok := aliases[fields[0]]
	return l, ok
}

// Badge describes the label drawn in the corner of a code block.
type Badge struct {
	Label      string
	Background string
	Color      string
	FontWeight string
}

func defaultBadges() map[Language]Badge {
	return map[Language]Badge{
		LangJavaScript: {Label: "js", Background: "#f7df1e"},
		LangJSX:        {Label: "jsx", Background: "#61dafb"},
		LangGraphQL:    {Label: "GraphQL", Background: "#E10098", Color: "#fff"},
		LangHTML:       {Label: "html", Background: "#005A9C", Color: "#fff"},
		LangCSS:        {Label: "css", Background: "#ff9800", Color: "#fff"},
		LangMDX:        {Label: "mdx", Background: "#f9ac00", Color: "#fff", FontWeight: "400"},
		LangShell:      {Label: "shell"},
		LangC:          {Label: "c", Background: "#555555", Color: "#fff"},
		LangJava:       {Label: "java", Background: "#b07219", Color: "#fff"},
		LangSh:         {Label: "sh"},
		LangBash:       {Label: "bash"},
		LangYAML:       {Label: "yaml", Background: "#ffa8df"},
		LangMarkdown:   {Label: "md"},
		LangJSON:       {Label: "json", Background: "linen"},
		LangDiff:       {Label: "diff", Background: "#e6ffed"},
		LangText:       {Label: "text", Background: "#fff"},
		LangFlow:       {Label: "flow", Background: "#E8BD36"},
		LangGo:         {Label: "go", Background: "#00ADD8", Color: "#fff"},
	}
}
