package generation

import (
	"encoding/json"
	"strings"
)

// parseJSON attempts structured parsing of a remote response. Models often
// wrap JSON in markdown fences or lead-in prose, so the payload is located
// before unmarshaling.
func parseJSON(raw string, dst any) bool {
	payload := extractJSON(raw)
	if payload == "" {
		return false
	}
	return json.Unmarshal([]byte(payload), dst) == nil
}

// extractJSON strips markdown fences and returns the first JSON object or
// array found in the text.
func extractJSON(raw string) string {
	text := strings.TrimSpace(raw)
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimPrefix(text, "```")
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		text = strings.TrimSpace(text)
	}

	objStart := strings.IndexByte(text, '{')
	arrStart := strings.IndexByte(text, '[')
	start := objStart
	end := strings.LastIndexByte(text, '}')
	if objStart < 0 || (arrStart >= 0 && arrStart < objStart) {
		start = arrStart
		end = strings.LastIndexByte(text, ']')
	}
	if start < 0 || end <= start {
		return ""
	}
	return text[start : end+1]
}

// parseLines splits a response into cleaned, non-blank lines. Bullet and
// numbering prefixes are stripped.
func parseLines(raw string) []string {
	var out []string
	for _, line := range strings.Split(raw, "\n") {
		cleaned := cleanLine(line)
		if cleaned != "" {
			out = append(out, cleaned)
		}
	}
	return out
}

// parseQuestionLines keeps only lines that read as questions.
func parseQuestionLines(raw string) []string {
	var out []string
	for _, line := range parseLines(raw) {
		if strings.HasSuffix(line, "?") {
			out = append(out, line)
		}
	}
	return out
}

func cleanLine(line string) string {
	cleaned := strings.TrimSpace(line)
	cleaned = strings.TrimLeft(cleaned, "-•* \t")
	// Strip "1." / "12)" style numbering.
	for i, r := range cleaned {
		if r >= '0' && r <= '9' {
			continue
		}
		if r == '.' || r == ')' {
			cleaned = cleaned[i+1:]
		}
		break
	}
	return strings.TrimSpace(cleaned)
}
