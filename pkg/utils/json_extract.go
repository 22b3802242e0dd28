package utils

import "strings"

// StripCodeFences removes markdown code-fence markers the model sometimes
// wraps around its JSON despite instructions.
func StripCodeFences(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```JSON", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}

// ExtractJSONObject returns the first balanced {...} span in s, after fence
// stripping. Grounded responses often carry prose around the JSON; strict
// responses should be pure JSON but get the same defensive treatment.
func ExtractJSONObject(s string) (string, error) {
	s = StripCodeFences(s)

	start := strings.Index(s, "{")
	if start == -1 {
		return "", ErrMalformedAIOutput
	}
	end := findMatchingBrace(s, start)
	if end == -1 {
		return "", ErrMalformedAIOutput
	}
	return s[start : end+1], nil
}

// findMatchingBrace walks the span counting brace depth, skipping string
// literals and escapes.
func findMatchingBrace(s string, start int) int {
	if start >= len(s) || s[start] != '{' {
		return -1
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		char := s[i]

		if escaped {
			escaped = false
			continue
		}
		if char == '\\' && inString {
			escaped = true
			continue
		}
		if char == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		switch char {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}

	return -1
}
