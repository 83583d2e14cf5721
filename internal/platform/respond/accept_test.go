package respond

import "testing"

func TestSelectFormat(t *testing.T) {
	tests := []struct {
		accept string
		cbor   bool
	}{
		{"", false},
		{"*/*", false},
		{"application/*", false},
		{"application/json", false},
		{"application/cbor", true},
		{"application/problem+cbor", true},
		{"application/cbor, */*", true},
		{"application/json, application/cbor", false},
		{"application/json;q=0.5, application/cbor", true},
		{"application/cbor;q=0.5, application/json", false},
		{"application/cbor;q=0, */*", false},
		{"application/json;q=0, application/cbor;q=0", false},
		{"application/*+cbor", true},
		{"application/*+json", false},
		{"text/html", false},
		{"image/png, text/plain", false},
	}

	for _, tt := range tests {
		t.Run(tt.accept, func(t *testing.T) {
			if got := selectFormat(tt.accept); got != tt.cbor {
				t.Fatalf("selectFormat(%q) = %v, want %v", tt.accept, got, tt.cbor)
			}
		})
	}
}

func TestParseAcceptNoSlash(t *testing.T) {
	ranges := parseAccept("text")
	if len(ranges) != 1 || ranges[0].typ != "text" || ranges[0].subtype != "*" {
		t.Fatalf("expected text/*, got %+v", ranges)
	}
}

func TestParseAcceptSkipsEmptyParts(t *testing.T) {
	if ranges := parseAccept("application/json, , text/html"); len(ranges) != 2 {
		t.Fatalf("expected 2 ranges, got %d", len(ranges))
	}
}

func TestParseAcceptQValues(t *testing.T) {
	tests := []struct {
		header string
		q      float64
	}{
		{"application/json;q=0.3", 0.3},
		{"application/json; Q=0.7", 0.7},
		{"application/json;q=invalid", 1},
		{"application/json;q=2.0", 1},
		{"application/json;q=-0.5", 1},
		{"application/json;charset=utf-8", 1},
	}

	for _, tt := range tests {
		ranges := parseAccept(tt.header)
		if len(ranges) != 1 || ranges[0].q != tt.q {
			t.Fatalf("parseAccept(%q) = %+v, want q=%v", tt.header, ranges, tt.q)
		}
	}
}
