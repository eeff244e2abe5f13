package urlpath

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraversalPath_Normalization(t *testing.T) {
	cases := []struct {
		path string
		want []string
	}{
		{"", []string{}},
		{"/", []string{}},
		{"/foo/bar/baz", []string{"foo", "bar", "baz"}},
		{"foo/bar/baz", []string{"foo", "bar", "baz"}},
		{"/foo/bar/baz/", []string{"foo", "bar", "baz"}},
		{"/foo//bar//baz/", []string{"foo", "bar", "baz"}},
		{"/foo/./bar/.", []string{"foo", "bar"}},
		{"/foo/bar/baz/..", []string{"foo", "bar"}},
		{"/my%20archives/hello", []string{"my archives", "hello"}},
		{"/archives/La%20Pe%C3%B1a", []string{"archives", "La Peña"}},
	}
	for _, tc := range cases {
		got, err := TraversalPath(tc.path)
		require.NoError(t, err, "path %q", tc.path)
		assert.Equal(t, tc.want, got, "path %q", tc.path)
	}
}

func TestTraversalPath_ParentUnderflowIsIgnored(t *testing.T) {
	// A ".." with nothing before it is dropped rather than an error.
	cases := []struct {
		path string
		want []string
	}{
		{"/..", []string{}},
		{"/../..", []string{}},
		{"/../foo", []string{"foo"}},
		{"/foo/..", []string{}},
		{"/foo/../..", []string{}},
		{"/foo/../../bar", []string{"bar"}},
	}
	for _, tc := range cases {
		got, err := TraversalPath(tc.path)
		require.NoError(t, err, "path %q", tc.path)
		assert.Equal(t, tc.want, got, "path %q", tc.path)
	}
}

func TestTraversalPath_EncodedDotSegments(t *testing.T) {
	// Classification happens after decoding: %2E%2E is "..".
	got, err := TraversalPath("/foo/bar/%2E%2E")
	require.NoError(t, err)
	assert.Equal(t, []string{"foo"}, got)
}

func TestTraversalPath_MalformedEscape(t *testing.T) {
	_, err := TraversalPath("/foo/%zz")
	require.Error(t, err)

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, "%zz", decodeErr.Segment)
}

func TestTraversalPath_InvalidUTF8(t *testing.T) {
	// %C3%28 unescapes to bytes that are not valid UTF-8.
	_, err := TraversalPath("/foo/%C3%28")
	require.Error(t, err)

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, "%C3%28", decodeErr.Segment)
	assert.True(t, errors.Is(err, errInvalidUTF8))
}

func TestTraversalPath_StableAcrossEviction(t *testing.T) {
	const path = "/stable/%C3%B1"
	first, err := TraversalPath(path)
	require.NoError(t, err)

	// Force the entry out of the LRU cache, then recompute.
	for i := 0; i < cacheSize+100; i++ {
		_, err := TraversalPath(fmt.Sprintf("/filler/%d", i))
		require.NoError(t, err)
	}
	second, err := TraversalPath(path)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestQuotePathSegment(t *testing.T) {
	cases := []struct {
		segment string
		want    string
	}{
		{"plain", "plain"},
		{"unreserved_.-09AZ", "unreserved_.-09AZ"},
		{"my archives", "my%20archives"},
		{"La Peña", "La%20Pe%C3%B1a"},
		{"a/b", "a%2Fb"},
		{"q?&=", "q%3F%26%3D"},
		{"%", "%25"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, QuotePathSegment(tc.segment), "segment %q", tc.segment)
	}
}

func TestQuotePathSegment_UppercaseHex(t *testing.T) {
	assert.Equal(t, "%2F", QuotePathSegment("/"))
	assert.Equal(t, "%7F", QuotePathSegment("\x7f"))
}

func TestQuotePathSegment_Deterministic(t *testing.T) {
	// Identical output before and after cache population.
	first := QuotePathSegment("café corner")
	second := QuotePathSegment("café corner")
	assert.Equal(t, first, second)
	assert.Equal(t, "caf%C3%A9%20corner", second)
}

func TestQuoteDecode_RoundTrip(t *testing.T) {
	segments := []string{
		"plain",
		"with space",
		"sla/sh",
		"per%cent",
		"La Peña",
		"日本語",
		"dots..inside",
		"@@not-a-view", // quoting escapes '@', so the marker cannot fire
	}
	quoted := make([]string, len(segments))
	for i, segment := range segments {
		quoted[i] = QuotePathSegment(segment)
	}
	decoded, err := TraversalPath("/" + strings.Join(quoted, "/"))
	require.NoError(t, err)
	assert.Equal(t, segments, decoded)
}

func TestCaches_ConcurrentAccess(t *testing.T) {
	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(seed int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				segment := fmt.Sprintf("seg %d", (seed+i)%50)
				want := "seg%20" + fmt.Sprint((seed+i)%50)
				if got := QuotePathSegment(segment); got != want {
					t.Errorf("QuotePathSegment(%q) = %q, want %q", segment, got, want)
					return
				}
				path := fmt.Sprintf("/a/%d/b", i%25)
				got, err := TraversalPath(path)
				if err != nil {
					t.Errorf("TraversalPath(%q): %v", path, err)
					return
				}
				if len(got) != 3 {
					t.Errorf("TraversalPath(%q) = %v", path, got)
					return
				}
			}
		}(w)
	}
	wg.Wait()
}
