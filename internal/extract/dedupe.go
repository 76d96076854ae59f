package extract

// Dedupe removes findings whose link text has already been seen, keeping the
// first occurrence. The key is the link alone: two findings with identical
// links but different contexts collapse to the first one seen. Relative order
// is preserved and the input slice is not modified.
func Dedupe(findings []Finding) []Finding {
	seen := make(map[string]struct{}, len(findings))
	out := make([]Finding, 0, len(findings))
	for _, f := range findings {
		if _, ok := seen[f.Link]; ok {
			continue
		}
		seen[f.Link] = struct{}{}
		out = append(out, f)
	}
	return out
}
