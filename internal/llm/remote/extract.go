package remote

import (
	"strings"

	"github.com/tidwall/gjson"
)

const (
	FallbackMessage = "Sorry, I received an unexpected response format. Please try again."

	maxExtractDepth = 8
)

// ExtractContent unwraps the text of an agent response. Lookup order is
// "output", then "content" (both unwrapped recursively), then the first
// message's "kwargs.content" and "content". Plain text bodies are returned as
// is. Anything else yields FallbackMessage.
func ExtractContent(payload []byte) string {
	if !gjson.ValidBytes(payload) {
		if text := strings.TrimSpace(string(payload)); text != "" {
			return text
		}
		return FallbackMessage
	}

	if text, ok := extract(gjson.ParseBytes(payload), 0); ok {
		return text
	}
	return FallbackMessage
}

func extract(value gjson.Result, depth int) (string, bool) {
	if depth > maxExtractDepth {
		return "", false
	}

	switch {
	case value.Type == gjson.String:
		return value.Str, value.Str != ""
	case value.IsArray():
		// content blocks: [{"type":"text","text":"..."}]
		var sb strings.Builder
		for _, block := range value.Array() {
			if text := block.Get("text"); text.Type == gjson.String {
				sb.WriteString(text.Str)
			}
		}
		return sb.String(), sb.Len() > 0
	case !value.IsObject():
		return "", false
	}

	for _, key := range []string{"output", "content"} {
		if nested := value.Get(key); truthy(nested) {
			return extract(nested, depth+1)
		}
	}

	for _, path := range []string{"messages.0.kwargs.content", "messages.0.content"} {
		if text := value.Get(path); text.Type == gjson.String && text.Str != "" {
			return text.Str, true
		}
	}

	return "", false
}

func truthy(value gjson.Result) bool {
	switch value.Type {
	case gjson.Null, gjson.False:
		return false
	case gjson.String:
		return value.Str != ""
	case gjson.Number:
		return value.Num != 0
	default:
		return value.Exists()
	}
}
