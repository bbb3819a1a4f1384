/*
Copyright © 2025 Acronis International GmbH.

Released under MIT license.
*/

// Package query builds and parses URL query strings.
package query

import (
	"fmt"
	"net/url"
	"regexp"
	"sort"
	"strings"

	"github.com/spf13/cast"
)

var pairRegexp = regexp.MustCompile(`([^?&=]+)=([^?&=]*)`)

// Encode builds a query string ("a=1&b=2") from params. Keys are sorted, nil values are skipped
// and other values are converted to strings with github.com/spf13/cast.
// Keys and values are percent-encoded, spaces as "%20".
func Encode(params map[string]interface{}) (string, error) {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		v := params[k]
		if v == nil {
			continue
		}
		str, err := cast.ToStringE(v)
		if err != nil {
			return "", fmt.Errorf("convert value of %q: %w", k, err)
		}
		pairs = append(pairs, escape(k)+"="+escape(str))
	}
	return strings.Join(CleanStrings(pairs), "&"), nil
}

func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// Parse returns the key-value pairs found after the last '?' of rawURL (the whole string if there is none).
// Pairs without '=' are ignored and a later duplicate key overrides an earlier one.
// Malformed percent-encoding is kept as is.
func Parse(rawURL string) map[string]string {
	search := rawURL[strings.LastIndexByte(rawURL, '?')+1:]
	result := make(map[string]string)
	for _, m := range pairRegexp.FindAllStringSubmatch(search, -1) {
		result[unescape(m[1])] = unescape(m[2])
	}
	return result
}

func unescape(s string) string {
	if res, err := url.PathUnescape(s); err == nil {
		return res
	}
	return s
}

// CleanStrings returns the non-empty items of items.
func CleanStrings(items []string) []string {
	res := make([]string, 0, len(items))
	for _, item := range items {
		if item != "" {
			res = append(res, item)
		}
	}
	return res
}
