package line

import "strings"

// ConvertCSV rewrites one CSV record into tab-delimited form. Double-quoted
// fields may contain the separator; a doubled quote inside a quoted field is
// an escaped quote. Only tokenization is affected by the CSV variant; all
// structural analysis runs on the converted text.
func ConvertCSV(text, separator string) string {
	if separator == "" {
		separator = ","
	}
	var b strings.Builder
	b.Grow(len(text))
	inQuotes := false
	for i := 0; i < len(text); {
		switch {
		case text[i] == '"':
			if inQuotes && i+1 < len(text) && text[i+1] == '"' {
				b.WriteByte('"')
				i += 2
				continue
			}
			inQuotes = !inQuotes
			i++
		case !inQuotes && strings.HasPrefix(text[i:], separator):
			b.WriteByte('\t')
			i += len(separator)
		default:
			b.WriteByte(text[i])
			i++
		}
	}
	return b.String()
}
