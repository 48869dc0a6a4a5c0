package utils

import (
	"strings"

	"golang.org/x/net/html"
)

// StripHTML extracts the visible text from an HTML fragment. Social feeds
// deliver post bodies as markup, so the text has to be flattened before it
// is handed to a language model. Plain text passes through unchanged.
func StripHTML(content string) string {
	if !strings.ContainsAny(content, "<>") {
		return strings.TrimSpace(content)
	}

	tokenizer := html.NewTokenizer(strings.NewReader(content))
	var builder strings.Builder

	for {
		tokenType := tokenizer.Next()
		switch tokenType {
		case html.ErrorToken:
			return strings.Join(strings.Fields(builder.String()), " ")
		case html.TextToken:
			builder.Write(tokenizer.Text())
			builder.WriteByte(' ')
		case html.StartTagToken:
			name, _ := tokenizer.TagName()
			// script and style bodies are markup noise, not post text
			tag := string(name)
			if tag == "script" || tag == "style" {
				depth := 1
				for depth > 0 {
					inner := tokenizer.Next()
					if inner == html.ErrorToken {
						return strings.Join(strings.Fields(builder.String()), " ")
					}
					innerName, _ := tokenizer.TagName()
					if string(innerName) != tag {
						continue
					}
					if inner == html.StartTagToken {
						depth++
					} else if inner == html.EndTagToken {
						depth--
					}
				}
			}
		}
	}
}
