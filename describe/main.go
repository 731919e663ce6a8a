package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/cuny-transfer/rules/db"
	"github.com/cuny-transfer/rules/rule"
	"github.com/jackc/pgx/v5/pgxpool"
)

// courseInfoMap caches cuny_courses rows by course_id, then offer_nbr. The
// sibling offer numbers of a course_id are the catalog aliases of a course.
var courseInfoMap map[int]map[int]db.CourseInfo

var errorLog *log.Logger

func requirementItems(info db.CourseInfo, ruleKey string) (rule.PathwaysArea, bool, bool, int) {
	if info.Requirements == nil {
		return rule.PathwaysNone, false, false, 0
	}

	pathways := rule.PathwaysNone
	if info.Requirements.Pathways != nil {
		pathways = rule.PathwaysArea(*info.Requirements.Pathways)
		if !rule.ValidPathwaysArea(pathways) {
			errorLog.Printf("%v: unrecognized pathways area %v for %v", ruleKey, pathways, info.Course)
			pathways = rule.PathwaysNone
		}
	}

	return pathways, info.Requirements.Copt, len(info.Requirements.Equiv) > 0, len(info.Requirements.Plans)
}

func describeCourse(ruleKey string, courseID, offerNbr int, flag string) rule.CourseItem {
	item := rule.CourseItem{Flag: flag, Pathways: rule.PathwaysNone}

	found := false
	for thisOfferNbr, info := range courseInfoMap[courseID] {
		if thisOfferNbr == offerNbr {
			found = true
			item.Course = info.Course
			item.Pathways, item.CollegeOption, item.MajorEquivalency, item.MajorCount = requirementItems(info, ruleKey)
		} else {
			item.Aliases = append(item.Aliases, info.Course)
		}
	}
	sort.Strings(item.Aliases)

	if !found {
		// Bogus rule: it names a course/offer pair the catalog does not have.
		errorLog.Printf("%v: no course info for %06d:%v", ruleKey, courseID, offerNbr)
		item.Course = "No course"
		item.Aliases = nil
	}

	return item
}

func destinationFlag(info db.CourseInfo) string {
	flag := ""
	if info.IsMesg {
		flag += "M"
	}
	if info.IsBkcr {
		flag += "B"
	}
	if flag == "" {
		flag = rule.NoFlag
	}
	return flag
}

// noRuleInformation describes a rule that cannot be assembled into a valid
// TransferRule, so every rule_key still gets a row.
const noRuleInformation = "No Rule Information"

func describeRule(ruleRow db.RuleRow) string {
	var transferRule rule.TransferRule

	for _, sourceCourse := range ruleRow.SourceCourses {
		flag := rule.MinGrade(sourceCourse.MinGPA)
		item := describeCourse(ruleRow.RuleKey, sourceCourse.CourseID, sourceCourse.OfferNbr, flag)
		transferRule.SourceCourses = append(transferRule.SourceCourses, item)
	}

	for _, destinationCourse := range ruleRow.DestinationCourses {
		flag := rule.NoFlag
		if info, okay := courseInfoMap[destinationCourse.CourseID][destinationCourse.OfferNbr]; okay {
			flag = destinationFlag(info)
		}
		item := describeCourse(ruleRow.RuleKey, destinationCourse.CourseID, destinationCourse.OfferNbr, flag)
		transferRule.DestinationCourses = append(transferRule.DestinationCourses, item)
	}

	description, err := rule.Encode(transferRule)
	if err != nil {
		errorLog.Printf("%v: %v", ruleRow.RuleKey, err)
		return noRuleInformation
	}
	return description
}

func main() {
	schemaName := db.PublicSchema
	if len(os.Args) > 1 {
		schemaName = os.Args[1]
	}

	pool, err := pgxpool.New(context.Background(), os.Getenv("DATABASE_CONNECTION_STRING"))
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()
	database := db.Database{Pool: pool}

	exists, err := database.SchemaExists(schemaName)
	if err != nil {
		log.Fatal(err)
	}
	if !exists {
		log.Fatalf("schema %v does not exist", schemaName)
	}

	errorFile, err := os.Create(fmt.Sprintf("description_errors.%v.log", schemaName))
	if err != nil {
		log.Fatal(err)
	}
	defer errorFile.Close()
	errorLog = log.New(errorFile, "", 0)

	if err := database.CreateUnifiedViews(schemaName); err != nil {
		log.Fatal(err)
	}

	// Descriptions are always based on the current cuny_courses table, so
	// there will be inaccuracies for archived rule sets.
	courseInfos, err := database.ListCourseInfo()
	if err != nil {
		log.Fatal(err)
	}

	courseInfoMap = make(map[int]map[int]db.CourseInfo)
	institutionSet := make(map[string]bool)
	for _, courseInfo := range courseInfos {
		if courseInfoMap[courseInfo.CourseID] == nil {
			courseInfoMap[courseInfo.CourseID] = make(map[int]db.CourseInfo)
		}
		courseInfoMap[courseInfo.CourseID][courseInfo.OfferNbr] = courseInfo
		institutionSet[courseInfo.Institution] = true
	}

	ruleRows, err := database.ListRuleRows(schemaName)
	if err != nil {
		log.Fatal(err)
	}

	var ruleDescriptions []db.RuleDescription
	for _, ruleRow := range ruleRows {
		ruleDescriptions = append(ruleDescriptions, db.RuleDescription{RuleKey: ruleRow.RuleKey, EffectiveDate: ruleRow.EffectiveDate, Description: describeRule(ruleRow)})
	}

	if err := database.ReplaceRuleDescriptions(schemaName, ruleDescriptions); err != nil {
		log.Fatal(err)
	}

	institutions := make([]string, 0, len(institutionSet))
	for institution := range institutionSet {
		institutions = append(institutions, institution)
	}
	sort.Strings(institutions)

	fmt.Printf("Generated %v rule descriptions in schema %v covering %v\n", len(ruleDescriptions), schemaName, rule.Oxfordize(institutions, "and"))
}
