package bracket

import (
	"regexp"
	"strconv"
	"strings"
)

// TokenKind discriminates the slot-token grammar. Parsing happens once, up
// front; resolution dispatches on the kind instead of re-matching strings at
// every call site.
type TokenKind int

const (
	// TokenDirect is a bare team ID (or an unknown string, settled at
	// resolution time against the team table).
	TokenDirect TokenKind = iota
	// TokenGroupPlacement is "{1,2,3}{A..L}": final group rank.
	TokenGroupPlacement
	// TokenThirdPlace is "3rd-{n}-{groups}": the n-th best third-place team.
	// The trailing group list is documentation only; resolution uses the
	// global rank order.
	TokenThirdPlace
	// TokenMatchWinner and TokenMatchLoser are "W{id}" / "L{id}".
	TokenMatchWinner
	TokenMatchLoser
)

// Token is a parsed slot token.
type Token struct {
	Kind  TokenKind
	Raw   string
	Rank  int    // group placement rank 1..3
	Group string // group letter for placements
	Index int    // zero-based index into the best-thirds list
	Match string // referenced match ID for W/L tokens
}

var (
	groupPlacementRe = regexp.MustCompile(`^([123])([A-L])$`)
	thirdPlaceRe     = regexp.MustCompile(`(?i)^3rd-(\d+)-`)
	matchResultRe    = regexp.MustCompile(`(?i)^([WL])(\d{2,3})$`)
)

// ParseToken classifies a slot token. Unrecognized strings come back as
// TokenDirect; whether they name a real team is decided by the resolver.
func ParseToken(raw string) Token {
	if m := groupPlacementRe.FindStringSubmatch(raw); m != nil {
		rank, _ := strconv.Atoi(m[1])
		return Token{Kind: TokenGroupPlacement, Raw: raw, Rank: rank, Group: m[2]}
	}
	if m := thirdPlaceRe.FindStringSubmatch(raw); m != nil {
		n, _ := strconv.Atoi(m[1])
		return Token{Kind: TokenThirdPlace, Raw: raw, Index: n - 1}
	}
	if m := matchResultRe.FindStringSubmatch(raw); m != nil {
		kind := TokenMatchWinner
		if strings.EqualFold(m[1], "L") {
			kind = TokenMatchLoser
		}
		return Token{Kind: kind, Raw: raw, Match: m[2]}
	}

	return Token{Kind: TokenDirect, Raw: raw}
}
