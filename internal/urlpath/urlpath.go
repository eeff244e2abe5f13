// Package urlpath converts between raw request paths and normalized
// sequences of decoded segments. It owns the lexical normalization rules
// (empty, "." and ".." segments) and percent-encoding in both directions,
// plus the two LRU caches that keep the hot path cheap.
package urlpath

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Both caches share the same bound. Keys are exact raw strings; a race
// between two resolutions of the same key recomputes redundantly but can
// never publish a half-written entry.
const cacheSize = 1000

var (
	pathCache    = mustCache[string, []string](cacheSize)
	segmentCache = mustCache[string, string](cacheSize)
)

func mustCache[K comparable, V any](size int) *lru.Cache[K, V] {
	c, err := lru.New[K, V](size)
	if err != nil {
		panic(err)
	}
	return c
}

// DecodeError reports a path segment that could not be decoded, either
// because of a malformed percent-escape or because the unescaped bytes are
// not valid UTF-8.
type DecodeError struct {
	Segment string
	Err     error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("cannot decode path segment %q: %v", e.Segment, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// TraversalPath turns a slash-separated raw path into the sequence of
// decoded segments used to walk a model graph. Each segment is
// percent-unescaped and must decode to valid UTF-8. Empty segments and "."
// are dropped; ".." removes the previously accepted segment, and a ".."
// with nothing before it is ignored rather than an error.
//
// Examples:
//
//	"/"                     -> []
//	"/foo//bar//baz/"       -> ["foo", "bar", "baz"]
//	"/foo/bar/baz/.."       -> ["foo", "bar"]
//	"/my%20archives/hello"  -> ["my archives", "hello"]
//
// Results are memoized per raw string in a bounded LRU cache; callers must
// not mutate the returned slice.
//
// Unlike the tuples produced by ModelPathTuple, the returned sequence has
// no leading empty segment — it carries no absolute/relative marker.
func TraversalPath(path string) ([]string, error) {
	if cached, ok := pathCache.Get(path); ok {
		return cached, nil
	}
	clean, err := decodePath(path)
	if err != nil {
		return nil, err
	}
	pathCache.Add(path, clean)
	return clean, nil
}

func decodePath(path string) ([]string, error) {
	path = strings.Trim(path, "/")
	clean := []string{}
	for _, raw := range strings.Split(path, "/") {
		segment, err := decodeSegment(raw)
		if err != nil {
			return nil, err
		}
		switch segment {
		case "", ".":
			// ignored
		case "..":
			if len(clean) > 0 {
				clean = clean[:len(clean)-1]
			}
		default:
			clean = append(clean, segment)
		}
	}
	return clean, nil
}

func decodeSegment(raw string) (string, error) {
	segment := raw
	if strings.IndexByte(raw, '%') >= 0 {
		unescaped, err := url.PathUnescape(raw)
		if err != nil {
			return "", &DecodeError{Segment: raw, Err: err}
		}
		segment = unescaped
	}
	if !utf8.ValidString(segment) {
		return "", &DecodeError{Segment: raw, Err: errInvalidUTF8}
	}
	return segment, nil
}

var errInvalidUTF8 = errors.New("not valid UTF-8")
