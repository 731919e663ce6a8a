package rule

import (
	"fmt"
	"strconv"
	"strings"
)

// Arrow separates the source and destination halves of a description.
const Arrow = " => "

const itemSeparator = ", "

// Encode produces the canonical description string for rule. It returns a
// *ValidationError if rule violates any structural invariant.
func Encode(rule TransferRule) (string, error) {
	source, err := encodeSide(SourceSide, rule.SourceCourses)
	if err != nil {
		return "", err
	}
	destination, err := encodeSide(DestinationSide, rule.DestinationCourses)
	if err != nil {
		return "", err
	}
	return source + Arrow + destination, nil
}

func encodeSide(side Side, items []CourseItem) (string, error) {
	if len(items) == 0 {
		return "", validationf("%v course list is empty", side)
	}

	encoded := make([]string, 0, len(items))
	for _, item := range items {
		text, err := encodeItem(side, item)
		if err != nil {
			return "", err
		}
		encoded = append(encoded, text)
	}
	return strings.Join(encoded, itemSeparator), nil
}

func encodeItem(side Side, item CourseItem) (string, error) {
	if err := validCourseName(side, item.Course); err != nil {
		return "", err
	}
	if !validFlag(side, item.Flag) {
		return "", validationf("%v flag %q is not recognized", side, item.Flag)
	}
	if !pathwaysAreas[item.Pathways] {
		return "", validationf("pathways area %q is not recognized", item.Pathways)
	}
	if item.MajorCount < 0 {
		return "", validationf("major count %v is negative", item.MajorCount)
	}
	for _, alias := range item.Aliases {
		if err := validCourseName(side, alias); err != nil {
			return "", err
		}
	}

	var builder strings.Builder
	builder.WriteString(item.Course)
	if len(item.Aliases) > 0 {
		fmt.Fprintf(&builder, "(%v)", strings.Join(item.Aliases, ","))
	}
	builder.WriteString(" ")
	builder.WriteString(item.Flag)
	builder.WriteString(" ")
	builder.WriteString(formatRequirements(item))
	return builder.String(), nil
}

// Course names and aliases may not contain the grammar's delimiters, or
// the description could not be decoded back.
func validCourseName(side Side, name string) error {
	if name == "" {
		return validationf("%v course name is empty", side)
	}
	if strings.ContainsAny(name, "(),") || strings.Contains(name, "=>") {
		return validationf("%v course name %q contains a reserved delimiter", side, name)
	}
	return nil
}

func formatRequirements(item CourseItem) string {
	collegeOption := "--"
	if item.CollegeOption {
		collegeOption = "CO"
	}
	majorEquivalency := "--"
	if item.MajorEquivalency {
		majorEquivalency = "ME"
	}
	return fmt.Sprintf("%v:%v:%v:%v", item.Pathways, collegeOption, majorEquivalency, strconv.Itoa(item.MajorCount))
}
