package rule

import (
	"strconv"
	"strings"
)

// Decode parses a canonical description string back into a TransferRule.
// It returns a *ParseError when text does not conform to the grammar.
func Decode(text string) (TransferRule, error) {
	if strings.Count(text, Arrow) != 1 {
		return TransferRule{}, &ParseError{Kind: MissingArrow}
	}
	source, destination, _ := strings.Cut(text, Arrow)

	sourceCourses, err := decodeSide(SourceSide, source)
	if err != nil {
		return TransferRule{}, err
	}
	destinationCourses, err := decodeSide(DestinationSide, destination)
	if err != nil {
		return TransferRule{}, err
	}

	return TransferRule{SourceCourses: sourceCourses, DestinationCourses: destinationCourses}, nil
}

func decodeSide(side Side, half string) ([]CourseItem, error) {
	if strings.TrimSpace(half) == "" {
		return nil, &ParseError{Kind: EmptySide, Detail: side.String() + " side"}
	}

	var items []CourseItem
	for position, text := range splitItems(half) {
		item, err := decodeItem(side, strings.TrimSpace(text), position)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// splitItems splits a rule half on commas, ignoring commas inside an alias
// parenthetical.
func splitItems(half string) []string {
	var items []string

	depth := 0
	initialPos := 0
	for pos, char := range half {
		switch char {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				items = append(items, half[initialPos:pos])
				initialPos = pos + 1
			}
		}
	}
	return append(items, half[initialPos:])
}

func decodeItem(side Side, text string, position int) (CourseItem, error) {
	fields := strings.Split(text, " ")
	if len(fields) < 3 {
		return CourseItem{}, malformed(text, position, "expected course, flag, and requirements")
	}

	suffix := fields[len(fields)-1]
	flag := fields[len(fields)-2]
	name := strings.Join(fields[:len(fields)-2], " ")

	course, aliases, err := decodeCourseName(name, text, position)
	if err != nil {
		return CourseItem{}, err
	}

	if !validFlag(side, flag) {
		if side == SourceSide {
			return CourseItem{}, malformed(text, position, "unrecognized minimum grade "+flag)
		}
		return CourseItem{}, malformed(text, position, "unrecognized destination flag "+flag)
	}

	item := CourseItem{Course: course, Aliases: aliases, Flag: flag}
	if err := decodeRequirements(&item, suffix, text, position); err != nil {
		return CourseItem{}, err
	}
	return item, nil
}

func decodeCourseName(name, text string, position int) (string, []string, error) {
	open := strings.IndexByte(name, '(')
	if open < 0 {
		if name == "" || strings.ContainsRune(name, ')') {
			return "", nil, malformed(text, position, "unable to determine course")
		}
		return name, nil, nil
	}

	if !strings.HasSuffix(name, ")") {
		if strings.ContainsRune(name[open+1:], ')') {
			return "", nil, malformed(text, position, "unexpected text after alias list")
		}
		return "", nil, malformed(text, position, "unterminated alias list")
	}

	course := name[:open]
	if course == "" || strings.ContainsRune(course, ')') {
		return "", nil, malformed(text, position, "unable to determine course")
	}

	aliases := strings.Split(name[open+1:len(name)-1], ",")
	for _, alias := range aliases {
		if alias == "" || strings.ContainsAny(alias, "()") {
			return "", nil, malformed(text, position, "unable to determine course aliases")
		}
	}
	return course, aliases, nil
}

func decodeRequirements(item *CourseItem, suffix, text string, position int) error {
	parts := strings.Split(suffix, ":")
	if len(parts) != 4 {
		return malformed(text, position, "requirements must have four colon-separated parts")
	}

	pathways := PathwaysArea(parts[0])
	if !pathwaysAreas[pathways] {
		return malformed(text, position, "unrecognized pathways area "+parts[0])
	}
	item.Pathways = pathways

	switch parts[1] {
	case "CO":
		item.CollegeOption = true
	case "--":
	default:
		return malformed(text, position, "unrecognized college option "+parts[1])
	}

	switch parts[2] {
	case "ME":
		item.MajorEquivalency = true
	case "--":
	default:
		return malformed(text, position, "unrecognized major equivalency "+parts[2])
	}

	count, okay := parseMajorCount(parts[3])
	if !okay {
		return malformed(text, position, "major count is not a non-negative integer")
	}
	item.MajorCount = count
	return nil
}

// parseMajorCount accepts digits only, so signed forms like "-1" and "+1"
// are rejected before Atoi ever sees them. Out-of-range counts fail too.
func parseMajorCount(text string) (int, bool) {
	if text == "" {
		return 0, false
	}
	for _, char := range text {
		if char < '0' || char > '9' {
			return 0, false
		}
	}
	count, err := strconv.Atoi(text)
	if err != nil {
		return 0, false
	}
	return count, true
}
