package urlpath

const upperhex = "0123456789ABCDEF"

// safe marks the bytes that never need escaping in a path segment: the
// RFC 3986 unreserved set [A-Za-z0-9_.-].
var safe [256]bool

func init() {
	for c := 'a'; c <= 'z'; c++ {
		safe[c] = true
	}
	for c := 'A'; c <= 'Z'; c++ {
		safe[c] = true
	}
	for c := '0'; c <= '9'; c++ {
		safe[c] = true
	}
	safe['_'] = true
	safe['.'] = true
	safe['-'] = true
}

// QuotePathSegment percent-encodes a single decoded path segment. Every
// byte outside the unreserved set is escaped with an uppercase two-digit
// escape. This is segment encoding, not full-path encoding: "/" is always
// escaped, because the caller joins segments with "/" afterwards.
//
// Results are memoized per segment in a bounded LRU cache, so repeated URL
// generation for the same names never re-encodes.
func QuotePathSegment(segment string) string {
	if cached, ok := segmentCache.Get(segment); ok {
		return cached
	}
	quoted := quote(segment)
	segmentCache.Add(segment, quoted)
	return quoted
}

func quote(s string) string {
	escape := 0
	for i := 0; i < len(s); i++ {
		if !safe[s[i]] {
			escape++
		}
	}
	if escape == 0 {
		return s
	}
	out := make([]byte, 0, len(s)+2*escape)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if safe[c] {
			out = append(out, c)
		} else {
			out = append(out, '%', upperhex[c>>4], upperhex[c&0xf])
		}
	}
	return string(out)
}
