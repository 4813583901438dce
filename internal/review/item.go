package review

import "regexp"

// itemPattern matches the "item" token of a line: a letter, followed
// by any run of letters, spaces, periods and hyphens, ending in a
// letter or a period.
var itemPattern = regexp.MustCompile(`\pL[\pL .-]*[\pL.]`)

// Item is an item match within a line.
type Item struct {
	// Text is the matched substring.
	Text string

	// Col is the byte column of the match start within the line.
	Col int
}

// ExtractItem returns the first item match on the line at or after
// fromCol. The search never crosses line boundaries. Pure: neither
// the line nor any cursor state is touched.
func ExtractItem(line string, fromCol int) (Item, bool) {
	if fromCol < 0 {
		fromCol = 0
	}
	if fromCol >= len(line) {
		return Item{}, false
	}

	loc := itemPattern.FindStringIndex(line[fromCol:])
	if loc == nil {
		return Item{}, false
	}

	return Item{
		Text: line[fromCol+loc[0] : fromCol+loc[1]],
		Col:  fromCol + loc[0],
	}, true
}
