package conv

import (
	"strings"
	"sync"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"github.com/inbucket/html2text"
	"github.com/microcosm-cc/bluemonday"
)

const extensions = parser.CommonExtensions | parser.NoEmptyLineBeforeBlock

// telegramPolicy allows only what the Bot API accepts in HTML parse mode:
// https://core.telegram.org/bots/api#html-style
var telegramPolicy = sync.OnceValue(func() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("b", "strong", "i", "em", "u", "ins", "s", "strike", "del", "code", "pre", "blockquote")
	p.AllowAttrs("href").OnElements("a")
	p.AllowAttrs("class").OnElements("code")
	return p
})

func render(md []byte, flags html.Flags) []byte {
	p := parser.NewWithExtensions(extensions)
	r := html.NewRenderer(html.RendererOptions{Flags: flags})
	return markdown.Render(p.Parse(md), r)
}

// MarkdownToTelegramHTML renders md and strips every tag Telegram rejects.
func MarkdownToTelegramHTML(md []byte) string {
	unsafe := render(md, html.CommonFlags|html.HrefTargetBlank)
	return string(telegramPolicy().SanitizeBytes(unsafe))
}

// MarkdownToText flattens md for plain terminals. Quotes are left as typed
// so JSON inside the text survives.
func MarkdownToText(md string) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}

	rendered := render([]byte(md), html.FlagsNone)
	text, err := html2text.FromReader(strings.NewReader(string(rendered)), html2text.Options{OmitLinks: true})
	if err != nil {
		return md
	}
	return strings.TrimSpace(text)
}
