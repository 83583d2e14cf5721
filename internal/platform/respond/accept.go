package respond

import (
	"strconv"
	"strings"
)

type mediaRange struct {
	typ     string
	subtype string
	q       float64
}

// parseAccept splits an Accept header into media ranges. Missing or invalid
// q values count as 1.0; parts without a slash are treated as type/*.
func parseAccept(header string) []mediaRange {
	var ranges []mediaRange
	for part := range strings.SplitSeq(header, ",") {
		params := strings.Split(part, ";")
		mt := strings.ToLower(strings.TrimSpace(params[0]))
		if mt == "" {
			continue
		}
		typ, subtype, ok := strings.Cut(mt, "/")
		if !ok {
			subtype = "*"
		}
		q := 1.0
		for _, p := range params[1:] {
			k, v, found := strings.Cut(strings.TrimSpace(p), "=")
			if !found || strings.ToLower(strings.TrimSpace(k)) != "q" {
				continue
			}
			if parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil && parsed >= 0 && parsed <= 1 {
				q = parsed
			}
		}
		ranges = append(ranges, mediaRange{typ: typ, subtype: subtype, q: q})
	}
	return ranges
}

// specificity ranks how precisely r matches application/<name> or
// application/problem+<suffix>. Zero means no match.
func (r mediaRange) specificity(name, suffix string) int {
	switch {
	case r.typ == "*" && r.subtype == "*":
		return 1
	case r.typ != "application":
		return 0
	case r.subtype == "*":
		return 2
	case r.subtype == "*+"+suffix:
		return 3
	case r.subtype == name || r.subtype == "problem+"+suffix:
		return 4
	}
	return 0
}

// preference returns the q value of the most specific range matching a format.
func preference(ranges []mediaRange, name, suffix string) (q float64, spec int) {
	for _, r := range ranges {
		s := r.specificity(name, suffix)
		if s > spec {
			spec, q = s, r.q
		}
	}
	return q, spec
}

// selectFormat reports whether CBOR should be used for the given Accept header.
// JSON wins ties and is the default when nothing matches.
func selectFormat(accept string) bool {
	ranges := parseAccept(accept)
	if len(ranges) == 0 {
		return false
	}
	cborQ, cborSpec := preference(ranges, "cbor", "cbor")
	jsonQ, jsonSpec := preference(ranges, "json", "json")
	if cborQ == 0 {
		return false
	}
	if cborQ != jsonQ {
		return cborQ > jsonQ
	}
	return cborSpec > jsonSpec
}
