// Package taxonomy holds the static material vocabulary: canonical material
// names with their recognized surface forms, split into curbside-accepted and
// not-accepted categories, plus the rejection-language markers used to gate
// not-accepted matches. Loaded once, read-only, safe for concurrent use.
package taxonomy

import "strings"

type Material struct {
	Name     string
	Synonyms []string
}

// Accepted and NotAccepted are ordered slices rather than maps so that every
// scan walks materials in the same order and output stays deterministic.
var Accepted = []Material{
	{"Aluminum Cans", []string{"aluminum can", "aluminum cans", "aluminium can", "soda can", "soda cans", "beer can", "beverage can", "drink can"}},
	{"Steel Cans", []string{"steel can", "steel cans", "tin can", "tin cans", "food can", "soup can", "metal can", "metal cans"}},
	{"Plastic Bottles", []string{"plastic bottle", "plastic bottles", "water bottle", "water bottles", "soda bottle", "pet bottle", "milk jug", "milk jugs", "detergent bottle"}},
	{"Plastic Containers", []string{"plastic container", "plastic containers", "plastic tub", "plastic tubs", "yogurt container", "yogurt cup", "plastic jug"}},
	{"Glass Bottles", []string{"glass bottle", "glass bottles", "wine bottle", "beer bottle", "glass container"}},
	{"Glass Jars", []string{"glass jar", "glass jars", "mason jar", "jam jar", "pickle jar"}},
	{"Cardboard", []string{"cardboard", "corrugated cardboard", "cardboard box", "cardboard boxes", "shipping box", "cereal box", "cereal boxes"}},
	{"Paper", []string{"paper", "office paper", "white paper", "mixed paper", "junk mail", "envelopes", "paper bags"}},
	{"Newspaper", []string{"newspaper", "newspapers", "newsprint"}},
	{"Magazines", []string{"magazine", "magazines", "catalogs", "glossy paper"}},
	{"Cartons", []string{"carton", "cartons", "milk carton", "juice carton", "juice box", "tetra pak"}},
	{"Aluminum Foil", []string{"aluminum foil", "foil", "foil trays", "aluminum trays"}},
}

var NotAccepted = []Material{
	{"Plastic Bags", []string{"plastic bag", "plastic bags", "grocery bag", "grocery bags", "shopping bag", "plastic film", "plastic wrap", "bubble wrap"}},
	{"Styrofoam", []string{"styrofoam", "polystyrene", "foam cup", "foam cups", "foam container", "foam containers", "packing peanuts"}},
	{"Batteries", []string{"battery", "batteries", "lithium battery", "car battery", "aa batteries"}},
	{"Electronics", []string{"electronics", "e-waste", "ewaste", "computer", "television", "cell phone", "phones"}},
	{"Hazardous Waste", []string{"hazardous", "hazardous waste", "paint", "motor oil", "chemicals", "pesticides", "propane"}},
	{"Food Waste", []string{"food waste", "food scraps", "compost", "organic waste", "leftover food"}},
	{"Greasy Pizza Boxes", []string{"greasy pizza box", "pizza box", "pizza boxes", "greasy cardboard"}},
	{"Ceramics", []string{"ceramic", "ceramics", "dishes", "porcelain", "pottery"}},
	{"Light Bulbs", []string{"light bulb", "light bulbs", "lightbulb", "fluorescent bulb", "cfl"}},
	{"Mirrors", []string{"mirror", "mirrors", "window glass", "broken glass", "drinking glasses"}},
	{"Textiles", []string{"textile", "textiles", "clothing", "clothes", "shoes", "fabric"}},
	{"Garden Hoses", []string{"garden hose", "garden hoses", "hoses", "cords", "wires", "tanglers"}},
}

// RejectionMarkers is the negating language that must appear in a snippet
// before a not-accepted material match is trusted (unless the material is
// universally excluded).
var RejectionMarkers = []string{
	"not accepted",
	"do not",
	"cannot",
	"never",
	"prohibited",
	"banned",
	"no ",
}

// AlwaysNotAccepted lists materials excluded from curbside programs broadly
// enough that no rejection context is required to record them.
var AlwaysNotAccepted = []string{
	"plastic bag",
	"styrofoam",
	"batter",
	"electronic",
	"hazardous",
}

// HasRejectionContext reports whether text (already lower-cased) carries any
// rejection-language marker.
func HasRejectionContext(text string) bool {
	for _, marker := range RejectionMarkers {
		if strings.Contains(text, marker) {
			return true
		}
	}
	return false
}

// AlwaysExcluded reports whether a matched synonym belongs to the universal
// exclusion list. Matching runs both directions so "plastic bags" hits the
// "plastic bag" entry and vice versa.
func AlwaysExcluded(synonym string) bool {
	syn := strings.ToLower(synonym)
	for _, term := range AlwaysNotAccepted {
		if strings.Contains(syn, term) || strings.Contains(term, syn) {
			return true
		}
	}
	return false
}
