package rules

import (
	"net/url"
	"strings"

	"github.com/AnthonyP05/WizardsOfWaverlyHacks/internal/core/model"
)

// dedupeSources keeps the first result per unique hostname, reduced to a
// title + URL citation. Results whose URL fails to parse are kept rather
// than dropped.
func dedupeSources(results []model.SearchResult) []model.Source {
	sources := []model.Source{}
	seen := make(map[string]bool)
	for _, r := range results {
		u, err := url.Parse(r.URL)
		if err == nil && u.Hostname() != "" {
			host := strings.ToLower(u.Hostname())
			if seen[host] {
				continue
			}
			seen[host] = true
		}
		sources = append(sources, model.Source{Title: r.Title, URL: r.URL})
	}
	return sources
}
