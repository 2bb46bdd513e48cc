package rules

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/AnthonyP05/WizardsOfWaverlyHacks/internal/core/common"
	"github.com/AnthonyP05/WizardsOfWaverlyHacks/internal/core/model"
)

var (
	// "Recycling Rules | Beverly Hills, CA"
	titleCityState = regexp.MustCompile(`\|\s*([A-Z][A-Za-z.\- ]+?),\s*([A-Z]{2})\s*$`)
	// "Los Angeles County residential recycling"
	titleSuffix = regexp.MustCompile(`([A-Z][a-zA-Z]+(?:\s+[A-Z][a-zA-Z]+)*)\s+(City|County|Town|Village|Borough)\b`)
	// "beverlyhills.gov", "www.santamonicacity.org", "monroecountyrecycling.org"
	govHost = regexp.MustCompile(`^(?:www\.)?([A-Za-z]+?)(?:city|county|gov|recycling)?\.(?:gov|org)$`)

	camelBoundary = regexp.MustCompile(`([a-z])([A-Z])`)
)

// hostCorrections maps concatenated city hostnames that naive capitalization
// would get wrong.
var hostCorrections = map[string]string{
	"beverlyhills": "Beverly Hills",
	"losangeles":   "Los Angeles",
	"sanfrancisco": "San Francisco",
	"sandiego":     "San Diego",
	"santamonica":  "Santa Monica",
	"longbeach":    "Long Beach",
	"newyork":      "New York",
	"saltlake":     "Salt Lake City",
}

// resolveLocation derives a display name for the service area from the search
// results, falling back to the raw ZIP. Results are tried in order and only
// the first successful match is used.
func resolveLocation(zip string, results []model.SearchResult) string {
	for _, r := range results {
		if loc := locationFromTitle(r.Title); loc != "" {
			return loc
		}
		if loc := locationFromURL(r.URL); loc != "" {
			return loc
		}
	}
	return "ZIP " + zip
}

func locationFromTitle(title string) string {
	if m := titleCityState.FindStringSubmatch(title); m != nil {
		return strings.TrimSpace(m[1]) + ", " + m[2]
	}
	if m := titleSuffix.FindStringSubmatch(title); m != nil {
		return m[1] + " " + m[2]
	}
	return ""
}

func locationFromURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	m := govHost.FindStringSubmatch(u.Hostname())
	if m == nil {
		return ""
	}

	name := strings.TrimPrefix(strings.ToLower(m[1]), "cityof")
	if fixed, ok := hostCorrections[name]; ok {
		return fixed
	}

	// Hostnames are usually flat lowercase, but split camelCase boundaries
	// when a result preserved them.
	split := camelBoundary.ReplaceAllString(strings.TrimPrefix(m[1], "cityof"), "$1 $2")
	return common.Capitalize(strings.ToLower(split))
}
