package llm

import "strings"

// StripFences removes Markdown code-fence markers wrapping a JSON payload.
// Models sometimes wrap their reply in ```json ... ``` even when asked for
// bare JSON, so every reply is passed through here before parsing.
// Text that is not fenced is returned trimmed but otherwise unchanged.
func StripFences(s string) string {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}

	// Drop the opening fence line, including an optional language tag.
	if idx := strings.IndexByte(trimmed, '\n'); idx >= 0 {
		trimmed = trimmed[idx+1:]
	} else {
		trimmed = strings.TrimPrefix(trimmed, "```")
	}

	// Drop the closing fence if present.
	if idx := strings.LastIndex(trimmed, "```"); idx >= 0 {
		trimmed = trimmed[:idx]
	}

	return strings.TrimSpace(trimmed)
}
