package style

import (
	"strings"
	"testing"
)

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		tag  string
		want Language
		ok   bool
	}{
		{"js", LangJavaScript, true},
		{"javascript", LangJavaScript, true},
		{"JSON5", LangJSON, true},
		{"yml", LangYAML, true},
		{"go {1,3}", LangGo, true},
		{"sh", LangSh, true},
		{"bash", LangBash, true},
		{"", LangUnknown, false},
		{"cobol", LangUnknown, false},
	}
	for _, tt := range tests {
		got, ok := ParseLanguage(tt.tag)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseLanguage(%q) = %v, %v; want %v, %v", tt.tag, got, ok, tt.want, tt.ok)
		}
	}
}

func TestEveryLanguageHasBadge(t *testing.T) {
	theme := NewTheme()
	for l := LangJavaScript; l <= LangGo; l++ {
		b, ok := theme.Badge(l)
		if !ok {
			t.Errorf("no badge for %s", l)
			continue
		}
		if b.Label == "" {
			t.Errorf("empty label for %s", l)
		}
	}
}

func TestBadgeForTag(t *testing.T) {
	theme := NewTheme()
	lang, b, ok := theme.BadgeForTag("graphql")
	if !ok || lang != LangGraphQL || b.Label != "GraphQL" || b.Color != "#fff" {
		t.Errorf("BadgeForTag(graphql) = %v %+v %v", lang, b, ok)
	}
	if _, _, ok := theme.BadgeForTag("brainfuck"); ok {
		t.Error("unexpected badge for unknown tag")
	}
}

func TestLanguageClass(t *testing.T) {
	if got := LangJavaScript.Class(); got != "code-lang-javascript" {
		t.Errorf("Class = %q", got)
	}
	if got := Language(999).String(); got != "unknown" {
		t.Errorf("out of range String = %q", got)
	}
}

func TestQuery(t *testing.T) {
	if got := Query(768); got != "@media (max-width: 48em)" {
		t.Errorf("Query(768) = %q", got)
	}
	if got := Query(576); got != "@media (max-width: 36em)" {
		t.Errorf("Query(576) = %q", got)
	}
}

func TestGlobalCSS(t *testing.T) {
	theme := NewTheme()
	css := theme.GlobalCSS()
	for _, want := range []string{
		":root { font-size: 10px; }",
		"img { max-width: 100%; height: auto; }",
		".code-block-wrapper .code-lang-javascript { background: #f7df1e; }",
		".code-block-wrapper .code-lang-mdx { background: #f9ac00; color: #fff; font-weight: 400; }",
	} {
		if !strings.Contains(css, want) {
			t.Errorf("GlobalCSS missing %q", want)
		}
	}
	// shell/sh/bash/md carry only a label, so no colour rule is emitted.
	if strings.Contains(css, "code-lang-shell {") {
		t.Error("unexpected rule for shell badge")
	}
	if theme.GlobalCSS() != css {
		t.Error("GlobalCSS should be stable")
	}
}

func TestLayoutCSSNarrowsOnTablet(t *testing.T) {
	css := NewTheme().LayoutCSS()
	if !strings.Contains(css, "width: 60%;") || !strings.Contains(css, "max-width: 728px;") {
		t.Errorf("LayoutCSS missing desktop column: %s", css)
	}
	if !strings.Contains(css, "@media (max-width: 48em) {\n.content { width: 80%; }\n}") {
		t.Errorf("LayoutCSS missing tablet rule: %s", css)
	}
}

func TestDefaultIsShared(t *testing.T) {
	if Default() != Default() {
		t.Error("Default should return the same theme")
	}
}
