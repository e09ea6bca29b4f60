package model

import "testing"

func TestParsePosition(t *testing.T) {
	tests := []struct {
		in       string
		expected Position
	}{
		{in: "QB", expected: POS_QB},
		{in: "rb", expected: POS_RB},
		{in: "Wr", expected: POS_WR},
		{in: "te", expected: POS_TE},
		{in: "K", expected: POS_K},
		{in: "DEF", expected: POS_DEF},
		{in: "OL", expected: POS_UNKNOWN},
		{in: "", expected: POS_UNKNOWN},
	}

	for _, tc := range tests {
		if got := ParsePosition(tc.in); got != tc.expected {
			t.Errorf("ParsePosition(%q) = %s, expected %s", tc.in, got, tc.expected)
		}
	}
}

func TestSearchPriority(t *testing.T) {
	order := []Position{POS_QB, POS_RB, POS_WR, POS_TE, POS_K, POS_DEF, POS_UNKNOWN}
	for i := 1; i < len(order); i++ {
		if order[i-1].SearchPriority() >= order[i].SearchPriority() {
			t.Errorf("%s should rank before %s", order[i-1], order[i])
		}
	}
}
