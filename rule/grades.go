package rule

import "sort"

// AnyPassingGrade is the minimum-grade token meaning any passing grade
// satisfies the rule.
const AnyPassingGrade = "P"

var gradeBreakpoints = []float64{0.7, 1.0, 1.3, 1.7, 2.0, 2.3, 2.7, 3.0, 3.3, 3.7, 4.0, 4.3}

var gradeLetters = []string{
	AnyPassingGrade,
	"D-", "D", "D+",
	"C-", "C", "C+",
	"B-", "B", "B+",
	"A-", "A", "A+",
}

// MinGrade converts a rule's min_gpa to a letter-grade token. A GPA below
// 0.7 means any passing grade.
func MinGrade(minGPA float64) string {
	i := sort.Search(len(gradeBreakpoints), func(i int) bool {
		return gradeBreakpoints[i] > minGPA
	})
	return gradeLetters[i]
}

// ValidGradeToken reports whether token is a recognized minimum-grade
// token: "P" or a letter grade A through D with an optional +/- suffix.
func ValidGradeToken(token string) bool {
	if token == AnyPassingGrade {
		return true
	}
	switch len(token) {
	case 1:
	case 2:
		if token[1] != '+' && token[1] != '-' {
			return false
		}
	default:
		return false
	}
	return token[0] >= 'A' && token[0] <= 'D'
}
