package main

import (
	"io"
	"log"
	"testing"

	"github.com/cuny-transfer/rules/db"
	"github.com/stretchr/testify/assert"
)

func TestDescribeRule(t *testing.T) {
	errorLog = log.New(io.Discard, "", 0)

	pathways := "EC"
	courseInfoMap = map[int]map[int]db.CourseInfo{
		1: {
			1: {CourseID: 1, OfferNbr: 1, Course: "CSCI 101"},
		},
		2: {
			1: {CourseID: 2, OfferNbr: 1, Course: "CSCI 201", Requirements: &db.Requirements{Pathways: &pathways, Copt: true, Plans: []string{"CSCI-BA", "CSCI-BS"}}},
		},
	}

	ruleRow := db.RuleRow{
		RuleKey:            "QNS01-LEH01-CSCI-1",
		SourceCourses:      []db.SourceCourse{{CourseID: 1, OfferNbr: 1, MinGPA: 2.0}},
		DestinationCourses: []db.DestinationCourse{{CourseID: 2, OfferNbr: 1}},
	}

	assert.Equal(t, "CSCI 101 C --:--:--:0 => CSCI 201 - EC:CO:--:2", describeRule(ruleRow))
}

func TestDescribeRuleWithoutCourses(t *testing.T) {
	errorLog = log.New(io.Discard, "", 0)
	courseInfoMap = map[int]map[int]db.CourseInfo{}

	// A rule with no courses on either side cannot be encoded, but it must
	// still yield a rule_descriptions row.
	assert.Equal(t, noRuleInformation, describeRule(db.RuleRow{RuleKey: "QNS01-LEH01-CSCI-2"}))
}
