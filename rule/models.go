// Package rule converts structured CUNY transfer rules to and from the
// canonical description strings stored in the rule_descriptions table.
package rule

// PathwaysArea is a Pathways general-education category code.
type PathwaysArea string

const (
	PathwaysEC   PathwaysArea = "EC"
	PathwaysMQ   PathwaysArea = "MQ"
	PathwaysLP   PathwaysArea = "LP"
	PathwaysWG   PathwaysArea = "WG"
	PathwaysUS   PathwaysArea = "US"
	PathwaysIS   PathwaysArea = "IS"
	PathwaysCE   PathwaysArea = "CE"
	PathwaysSW   PathwaysArea = "SW"
	PathwaysNone PathwaysArea = "--"
)

var pathwaysAreas = map[PathwaysArea]bool{
	PathwaysEC:   true,
	PathwaysMQ:   true,
	PathwaysLP:   true,
	PathwaysWG:   true,
	PathwaysUS:   true,
	PathwaysIS:   true,
	PathwaysCE:   true,
	PathwaysSW:   true,
	PathwaysNone: true,
}

// ValidPathwaysArea reports whether area is one of the nine recognized
// codes, including none.
func ValidPathwaysArea(area PathwaysArea) bool {
	return pathwaysAreas[area]
}

// CourseItem is one course reference on either side of a transfer rule.
//
// Flag is side-dependent: on the source side it is a minimum-grade token
// ("P" or a letter grade), on the destination side some combination of
// "M" (message course) and "B" (blanket credit), or "-" for neither.
type CourseItem struct {
	Course           string
	Aliases          []string
	Flag             string
	Pathways         PathwaysArea
	CollegeOption    bool
	MajorEquivalency bool
	MajorCount       int
}

// TransferRule maps one or more sending-college courses to one or more
// receiving-college courses. Both sides are non-empty.
type TransferRule struct {
	SourceCourses      []CourseItem
	DestinationCourses []CourseItem
}

// NoFlag is the destination-side placeholder for a course that is neither
// a message course nor blanket credit.
const NoFlag = "-"

// Side distinguishes the two halves of a rule, since flag validation
// differs between them.
type Side int

const (
	SourceSide Side = iota
	DestinationSide
)

func (s Side) String() string {
	if s == SourceSide {
		return "source"
	}
	return "destination"
}

// ValidDestinationFlag reports whether flag is "-" or a non-empty subset
// of {M, B} with no repeated letter.
func ValidDestinationFlag(flag string) bool {
	switch flag {
	case NoFlag, "M", "B", "MB", "BM":
		return true
	}
	return false
}

func validFlag(side Side, flag string) bool {
	if side == SourceSide {
		return ValidGradeToken(flag)
	}
	return ValidDestinationFlag(flag)
}
