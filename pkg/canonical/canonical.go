// Package canonical normalizes URLs into the form used for duplicate
// detection and filtering. Two URLs that differ only in fragment,
// tracking parameters or query parameter order canonicalize identically.
package canonical

import (
	"net/url"
	"sort"
	"strings"
)

// Canonicalize strips the fragment, removes every query parameter whose
// key starts with "utm_" and re-serializes the remaining parameters
// sorted by key. It is idempotent and performs no network access.
func Canonicalize(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	u.Fragment = ""
	u.RawFragment = ""

	if u.RawQuery != "" {
		u.RawQuery = normalizeQuery(u.Query())
	}

	return u.String(), nil
}

func normalizeQuery(values url.Values) string {
	keys := make([]string, 0, len(values))
	for k := range values {
		if strings.HasPrefix(k, "utm_") {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		for _, v := range values[k] {
			if b.Len() > 0 {
				b.WriteByte('&')
			}
			b.WriteString(url.QueryEscape(k))
			b.WriteByte('=')
			b.WriteString(url.QueryEscape(v))
		}
	}
	return b.String()
}
