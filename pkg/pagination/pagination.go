// Package pagination slices ordered result sets into fixed-size pages
// and builds the discovery link to the last page.
package pagination

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
)

const DefaultPerPage = 20

// ErrOutOfRange is returned when the requested page is past the end of
// the result set. Page 1 is always in range, even when empty.
var ErrOutOfRange = errors.New("page out of range")

// Page is a resolved window into a result set.
type Page struct {
	Number  int
	PerPage int
	Last    int
	Offset  int
}

// Resolve computes the window for a 1-based page over total rows.
// Zero or negative page/perPage fall back to the defaults.
func Resolve(total int64, page, perPage int) (Page, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}

	last := int((total + int64(perPage) - 1) / int64(perPage))
	if last < 1 {
		last = 1
	}
	if page > last {
		return Page{}, ErrOutOfRange
	}

	return Page{
		Number:  page,
		PerPage: perPage,
		Last:    last,
		Offset:  (page - 1) * perPage,
	}, nil
}

// HasMore reports whether pages exist beyond this one.
func (p Page) HasMore() bool {
	return p.Number < p.Last
}

// LastPageLink renders a Link header value pointing at the last page.
// The current request's query parameters are preserved; only "page" is
// rewritten.
func (p Page) LastPageLink(path string, query url.Values) string {
	q := url.Values{}
	for k, vs := range query {
		for _, v := range vs {
			q.Add(k, v)
		}
	}
	q.Set("page", strconv.Itoa(p.Last))
	return fmt.Sprintf("<%s?%s>; rel=\"last\"", path, q.Encode())
}
