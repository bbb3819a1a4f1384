/*
Copyright © 2025 Acronis International GmbH.

Released under MIT license.
*/

package query

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	got, err := Encode(map[string]interface{}{"b": 2, "a": 1, "skip": nil, "q": "go lang&more", "empty": ""})
	require.NoError(t, err)
	require.Equal(t, "a=1&b=2&empty=&q=go%20lang%26more", got)

	got, err = Encode(nil)
	require.NoError(t, err)
	require.Empty(t, got)

	_, err = Encode(map[string]interface{}{"bad": struct{}{}})
	require.ErrorContains(t, err, `"bad"`)
}

func TestParse(t *testing.T) {
	require.Equal(t, map[string]string{"ie": "utf-8", "f": "8", "rsv_bp": "1", "tn": "baidu"},
		Parse("https://www.baidu.com/s?ie=utf-8&f=8&rsv_bp=1&tn=baidu"))
	require.Equal(t, map[string]string{"q": "go lang", "x": ""}, Parse("/search?q=go%20lang&flag&x="))
	require.Equal(t, map[string]string{"b": "2"}, Parse("/first?a=1?b=2"))
	require.Equal(t, map[string]string{"bad": "%zz"}, Parse("?bad=%zz"))
	require.Empty(t, Parse("https://example.com/path"))
}

func TestCleanStrings(t *testing.T) {
	require.Equal(t, []string{"1", "2", "e"}, CleanStrings([]string{"1", "", "2", "", "e"}))
	require.Equal(t, []string{}, CleanStrings(nil))
}
