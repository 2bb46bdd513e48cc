package model

// SearchResult is one raw web-search hit from the search provider.
// Input only; the core never mutates it.
type SearchResult struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet"`
}
