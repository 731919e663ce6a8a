package rule

import "strings"

// Oxfordize joins things into a sentence list, with an Oxford comma when
// there are three or more.
func Oxfordize(things []string, conjunction string) string {
	switch len(things) {
	case 0:
		return ""
	case 1:
		return things[0]
	case 2:
		return things[0] + " " + conjunction + " " + things[1]
	}
	return strings.Join(things[:len(things)-1], ", ") + ", " + conjunction + " " + things[len(things)-1]
}
