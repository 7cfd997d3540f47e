package matches

import "strings"

// TrailingID reduces a match reference to its trailing path component, so a
// full API URL ("https://api.chess.com/pub/match/1530241"), a web URL and a
// bare ID ("1530241") all normalize to the same key. IDs are kept as strings
// verbatim; no numeric conversion happens here.
func TrailingID(idOrURL string) string {
	trimmed := strings.TrimSuffix(strings.TrimSpace(idOrURL), "/")
	if i := strings.LastIndex(trimmed, "/"); i >= 0 {
		return trimmed[i+1:]
	}
	return trimmed
}
