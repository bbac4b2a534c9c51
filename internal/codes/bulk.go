package codes

import "strings"

// ParseBulk splits free text into code/name pairs, one per line, in input
// order. A line is "code" or "code, name"; anything after a second comma is
// dropped. Blank lines and lines without a code are skipped.
func ParseBulk(text string) []CodeInput {
	lines := strings.Split(text, "\n")
	out := make([]CodeInput, 0, len(lines))

	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}

		parts := strings.Split(line, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}

		item := CodeInput{Code: parts[0]}
		if len(parts) > 1 {
			item.Name = parts[1]
		}
		if item.Code == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

// ParseBulkStrict parses text like ParseBulk and splits the result into
// entries that pass n.Validate and the raw codes that do not.
func ParseBulkStrict(text string, n Normalizer) (valid []CodeInput, rejected []string) {
	for _, item := range ParseBulk(text) {
		if err := n.Validate(item.Code); err != nil {
			rejected = append(rejected, item.Code)
			continue
		}
		valid = append(valid, item)
	}
	return valid, rejected
}
