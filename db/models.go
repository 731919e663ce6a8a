package db

// Requirements is the shape of the cuny_courses.requirements json column:
// the requirement types a course can satisfy, if any.
type Requirements struct {
	Pathways *string  `json:"pways"`
	Copt     bool     `json:"copt"`
	Equiv    []string `json:"equiv"`
	Plans    []string `json:"plans"`
}

// CourseInfo caches the cuny_courses columns needed to describe a rule.
// Courses are keyed by course_id and offer_nbr; the offer numbers of a
// course_id other than the one a rule names are its catalog aliases.
type CourseInfo struct {
	Institution  string
	CourseID     int
	OfferNbr     int
	Course       string
	IsMesg       bool
	IsBkcr       bool
	Status       string
	Career       string
	Requirements *Requirements
}

// SourceCourse is one sending-side course of a transfer rule.
type SourceCourse struct {
	CourseID int     `json:"course_id"`
	OfferNbr int     `json:"offer_nbr"`
	MinGPA   float64 `json:"min_gpa"`
}

// DestinationCourse is one receiving-side course of a transfer rule.
type DestinationCourse struct {
	CourseID int `json:"course_id"`
	OfferNbr int `json:"offer_nbr"`
}

// RuleRow is one transfer rule with its courses aggregated per side.
type RuleRow struct {
	RuleKey            string
	EffectiveDate      string
	SourceCourses      []SourceCourse
	DestinationCourses []DestinationCourse
}

// RuleDescription is one row of the rule_descriptions table.
type RuleDescription struct {
	RuleKey       string
	EffectiveDate string
	Description   string
}

// ActiveCourse is an active undergraduate course with the catalog fields
// the requirements derivation reads.
type ActiveCourse struct {
	CourseID    int
	OfferNbr    int
	Designation string
	Attributes  string
	Plans       []string
}
