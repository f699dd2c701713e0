package bracket

import "testing"

func TestParseToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want Token
	}{
		{"1A", Token{Kind: TokenGroupPlacement, Raw: "1A", Rank: 1, Group: "A"}},
		{"2B", Token{Kind: TokenGroupPlacement, Raw: "2B", Rank: 2, Group: "B"}},
		{"3L", Token{Kind: TokenGroupPlacement, Raw: "3L", Rank: 3, Group: "L"}},
		{"3rd-1-A/B/C/D/F", Token{Kind: TokenThirdPlace, Raw: "3rd-1-A/B/C/D/F", Index: 0}},
		{"3rd-8-D/E/I/J/L", Token{Kind: TokenThirdPlace, Raw: "3rd-8-D/E/I/J/L", Index: 7}},
		{"W74", Token{Kind: TokenMatchWinner, Raw: "W74", Match: "74"}},
		{"L101", Token{Kind: TokenMatchLoser, Raw: "L101", Match: "101"}},
		{"w88", Token{Kind: TokenMatchWinner, Raw: "w88", Match: "88"}},
		{"BRA", Token{Kind: TokenDirect, Raw: "BRA"}},
		{"4A", Token{Kind: TokenDirect, Raw: "4A"}},
		{"1M", Token{Kind: TokenDirect, Raw: "1M"}},
		{"W7", Token{Kind: TokenDirect, Raw: "W7"}},
		{"", Token{Kind: TokenDirect, Raw: ""}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.raw, func(t *testing.T) {
			t.Parallel()

			got := ParseToken(tc.raw)
			if got != tc.want {
				t.Fatalf("ParseToken(%q) = %+v, want %+v", tc.raw, got, tc.want)
			}
		})
	}
}
