package query

// FirstPage is the first page number accepted by paginated queries.
const FirstPage = 1

// PerPage returns the page size the named query requests, or 0 when the query
// is not paginated or unknown.
func PerPage(name Name) int {
	c, ok := Lookup(name)
	if !ok {
		return 0
	}
	return c.PerPage
}

// Page is a caller-side cursor for paginated queries. The core never loops on
// its own; callers request increasing pages until a page comes back empty.
type Page struct {
	Number  int
	PerPage int
}

// PageOf returns the cursor for page number n of the named query.
// Page numbers below 1 are clamped to FirstPage.
func PageOf(name Name, n int) Page {
	if n < FirstPage {
		n = FirstPage
	}
	return Page{Number: n, PerPage: PerPage(name)}
}

// Next returns the following page.
func (p Page) Next() Page {
	return Page{Number: p.Number + 1, PerPage: p.PerPage}
}

// Done reports whether a page that returned n items ends the iteration.
func (p Page) Done(n int) bool {
	return n == 0
}
