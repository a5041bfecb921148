package entities

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// IDFromURL extracts the trailing integer segment of a resource URL such as
// "https://pokeapi.co/api/v2/pokemon/25/". It returns 0 when there is none.
func IDFromURL(url string) int {
	trimmed := strings.TrimRight(url, "/")
	idx := strings.LastIndex(trimmed, "/")
	if idx < 0 {
		return 0
	}
	id, err := strconv.Atoi(trimmed[idx+1:])
	if err != nil || id < 0 {
		return 0
	}
	return id
}

// DisplayName turns a hyphenated identifier like "mr-mime" into "Mr Mime".
// A Caser carries state, so each call gets its own.
func DisplayName(name string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(name, "-", " "))
}

// BaseName strips everything from the first hyphen onwards, which is how
// alternate forms ("charizard-mega-x") map back to their base species.
func BaseName(name string) string {
	if idx := strings.Index(name, "-"); idx > 0 {
		return name[:idx]
	}
	return name
}
