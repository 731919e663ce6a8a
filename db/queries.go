package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const listCourseInfo = `SELECT institution, course_id, offer_nbr, discipline||' '||catalog_number AS course, designation IN ('MLA', 'MNL') AS is_mesg, COALESCE(attributes, '') ~* 'bkcr' AS is_bkcr, course_status, career, requirements FROM cuny_courses`

const listActiveCourses = `
SELECT
  c.course_id,
  c.offer_nbr,
  c.designation,
  COALESCE(c.attributes, ''),
  COALESCE(array_agg(DISTINCT dc.plan ORDER BY dc.plan) FILTER (WHERE dc.plan IS NOT NULL), '{}') AS plans
FROM cuny_courses AS c
LEFT JOIN dgw.courses AS dc
  ON c.course_id = split_part(dc.course_id, ':', 1)::int
 AND c.offer_nbr = split_part(dc.course_id, ':', 2)::int
WHERE c.career = 'UGRD'
  AND c.course_status = 'A'
GROUP BY c.course_id, c.offer_nbr, c.designation, c.attributes`

const addRequirementsColumn = `ALTER TABLE cuny_courses ADD COLUMN IF NOT EXISTS requirements json`
const updateCourseRequirements = `UPDATE cuny_courses SET requirements = $1 WHERE course_id = $2 AND offer_nbr = $3`

// The _u views paper over the schema difference: public keys source and
// destination courses by rule_id while archive schemas carry rule_key
// directly.
const createPublicViews = `
CREATE OR REPLACE VIEW public.source_courses_u AS
  SELECT tr.rule_key, sc.course_id, sc.offer_nbr, sc.min_gpa
  FROM   public.source_courses sc
  JOIN   public.transfer_rules tr ON tr.id = sc.rule_id;

CREATE OR REPLACE VIEW public.destination_courses_u AS
  SELECT tr.rule_key, dc.course_id, dc.offer_nbr
  FROM   public.destination_courses dc
  JOIN   public.transfer_rules tr ON tr.id = dc.rule_id`

const createArchiveViewsTemplate = `
CREATE OR REPLACE VIEW %[1]v.source_courses_u AS
  SELECT rule_key, course_id, offer_nbr, min_gpa
  FROM   %[1]v.source_courses;

CREATE OR REPLACE VIEW %[1]v.destination_courses_u AS
  SELECT rule_key, course_id, offer_nbr
  FROM   %[1]v.destination_courses`

const schemaExists = `SELECT schema_name FROM information_schema.schemata WHERE schema_name = $1`

const listRuleRowsTemplate = `
WITH
sc AS (
  SELECT rule_key,
         jsonb_agg(
           jsonb_build_object(
             'course_id', course_id,
             'offer_nbr', offer_nbr,
             'min_gpa',   COALESCE(min_gpa, 0.0)
           )
           ORDER BY course_id, offer_nbr, COALESCE(min_gpa, 0.0)
         ) AS source_courses
  FROM %[1]v.source_courses_u
  GROUP BY rule_key
),
dc AS (
  SELECT rule_key,
         jsonb_agg(
           jsonb_build_object(
             'course_id', course_id,
             'offer_nbr', offer_nbr
           )
           ORDER BY course_id, offer_nbr
         ) AS destination_courses
  FROM %[1]v.destination_courses_u
  GROUP BY rule_key
)
SELECT r.rule_key,
       r.effective_date::text,
       COALESCE(sc.source_courses, '[]'::jsonb) AS source_courses,
       COALESCE(dc.destination_courses, '[]'::jsonb) AS destination_courses
FROM %[1]v.transfer_rules r
LEFT JOIN sc USING (rule_key)
LEFT JOIN dc USING (rule_key)
ORDER BY r.rule_key`

const dropRuleDescriptions = `DROP TABLE IF EXISTS %v.rule_descriptions`
const createRuleDescriptions = `CREATE TABLE %v.rule_descriptions (rule_key text PRIMARY KEY, effective_date text, description text)`
const insertRuleDescription = `INSERT INTO %v.rule_descriptions (rule_key, effective_date, description) VALUES ($1, $2, $3)`
const touchRuleDescriptions = `UPDATE updates SET update_date = current_date WHERE table_name = 'rule_descriptions'`

func insertCallback(ct pgconn.CommandTag) error {
	return nil
}

func (d *Database) ListCourseInfo() ([]CourseInfo, error) {
	sql := listCourseInfo
	rows, err := d.Pool.Query(context.Background(), sql)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courseInfos []CourseInfo
	for rows.Next() {
		var courseInfo CourseInfo
		var requirementsJson []byte
		if err := rows.Scan(&courseInfo.Institution, &courseInfo.CourseID, &courseInfo.OfferNbr, &courseInfo.Course, &courseInfo.IsMesg, &courseInfo.IsBkcr, &courseInfo.Status, &courseInfo.Career, &requirementsJson); err != nil {
			return nil, err
		}
		if len(requirementsJson) > 0 {
			var requirements Requirements
			if err := json.Unmarshal(requirementsJson, &requirements); err != nil {
				return nil, err
			}
			courseInfo.Requirements = &requirements
		}
		courseInfos = append(courseInfos, courseInfo)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courseInfos, nil
}

func (d *Database) SchemaExists(schemaName string) (bool, error) {
	rows, err := d.Pool.Query(context.Background(), schemaExists, schemaName)
	if err != nil {
		return false, err
	}
	defer rows.Close()

	exists := rows.Next()
	if err := rows.Err(); err != nil {
		return false, err
	}
	return exists, nil
}

func (d *Database) CreateUnifiedViews(schemaName string) error {
	sql := createPublicViews
	if schemaName != PublicSchema {
		sql = fmt.Sprintf(createArchiveViewsTemplate, schemaName)
	}
	if _, err := d.Pool.Exec(context.Background(), sql); err != nil {
		return err
	}
	return nil
}

func (d *Database) ListRuleRows(schemaName string) ([]RuleRow, error) {
	sql := fmt.Sprintf(listRuleRowsTemplate, schemaName)
	rows, err := d.Pool.Query(context.Background(), sql)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ruleRows []RuleRow
	for rows.Next() {
		var ruleRow RuleRow
		var sourceJson, destinationJson []byte
		if err := rows.Scan(&ruleRow.RuleKey, &ruleRow.EffectiveDate, &sourceJson, &destinationJson); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(sourceJson, &ruleRow.SourceCourses); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(destinationJson, &ruleRow.DestinationCourses); err != nil {
			return nil, err
		}
		ruleRows = append(ruleRows, ruleRow)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return ruleRows, nil
}

func (d *Database) ReplaceRuleDescriptions(schemaName string, ruleDescriptions []RuleDescription) error {
	if _, err := d.Pool.Exec(context.Background(), fmt.Sprintf(dropRuleDescriptions, schemaName)); err != nil {
		return err
	}
	if _, err := d.Pool.Exec(context.Background(), fmt.Sprintf(createRuleDescriptions, schemaName)); err != nil {
		return err
	}

	if len(ruleDescriptions) > 0 {
		sql := fmt.Sprintf(insertRuleDescription, schemaName)

		batch := pgx.Batch{}
		var queuedQueries []*pgx.QueuedQuery

		for _, ruleDescription := range ruleDescriptions {
			queuedQueries = append(queuedQueries, batch.Queue(sql, ruleDescription.RuleKey, ruleDescription.EffectiveDate, ruleDescription.Description))
		}

		for _, queuedQuery := range queuedQueries {
			queuedQuery.Exec(insertCallback)
		}

		if err := d.Pool.SendBatch(context.Background(), &batch).Close(); err != nil {
			return err
		}
	}

	if schemaName == PublicSchema {
		if _, err := d.Pool.Exec(context.Background(), touchRuleDescriptions); err != nil {
			return err
		}
	}

	return nil
}

func (d *Database) ListActiveCourses() ([]ActiveCourse, error) {
	sql := listActiveCourses
	rows, err := d.Pool.Query(context.Background(), sql)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var activeCourses []ActiveCourse
	for rows.Next() {
		var activeCourse ActiveCourse
		if err := rows.Scan(&activeCourse.CourseID, &activeCourse.OfferNbr, &activeCourse.Designation, &activeCourse.Attributes, &activeCourse.Plans); err != nil {
			return nil, err
		}
		activeCourses = append(activeCourses, activeCourse)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return activeCourses, nil
}

// CourseRequirements pairs a course with its derived requirements for the
// bulk update.
type CourseRequirements struct {
	CourseID     int
	OfferNbr     int
	Requirements Requirements
}

func (d *Database) UpdateCourseRequirements(courseRequirements []CourseRequirements) error {
	if _, err := d.Pool.Exec(context.Background(), addRequirementsColumn); err != nil {
		return err
	}

	if len(courseRequirements) == 0 {
		return nil
	}

	batch := pgx.Batch{}
	var queuedQueries []*pgx.QueuedQuery

	for _, courseRequirement := range courseRequirements {
		requirementsJson, err := json.Marshal(courseRequirement.Requirements)
		if err != nil {
			return err
		}
		queuedQueries = append(queuedQueries, batch.Queue(updateCourseRequirements, requirementsJson, courseRequirement.CourseID, courseRequirement.OfferNbr))
	}

	for _, queuedQuery := range queuedQueries {
		queuedQuery.Exec(insertCallback)
	}

	if err := d.Pool.SendBatch(context.Background(), &batch).Close(); err != nil {
		return err
	}

	return nil
}
