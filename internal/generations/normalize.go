package generations

import (
	"encoding/json"
	"strings"
)

// Normalize turns a raw model response into a JSON object. Markdown code
// fences around the payload are stripped before unmarshalling; anything that
// still fails to parse comes back as a *ParseError carrying the raw text.
// Non-object JSON values (a top-level array, string, or number) are rejected
// on purpose: every output schema we prompt for is an object, so anything
// else is a malformed response. Beyond that the payload is not
// schema-validated.
func Normalize(raw string) (map[string]any, error) {
	cleaned := stripFences(raw)

	var content map[string]any
	if err := json.Unmarshal([]byte(cleaned), &content); err != nil {
		return nil, &ParseError{Raw: raw, Err: err}
	}
	return content, nil
}

func stripFences(raw string) string {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
