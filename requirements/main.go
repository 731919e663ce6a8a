package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/cuny-transfer/rules/db"
	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	pool, err := pgxpool.New(context.Background(), os.Getenv("DATABASE_CONNECTION_STRING"))
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()
	database := db.Database{Pool: pool}

	activeCourses, err := database.ListActiveCourses()
	if err != nil {
		log.Fatal(err)
	}

	var courseRequirements []db.CourseRequirements
	for _, activeCourse := range activeCourses {
		requirements := db.DeriveRequirements(activeCourse.Designation, activeCourse.Attributes, activeCourse.Plans)
		courseRequirements = append(courseRequirements, db.CourseRequirements{
			CourseID:     activeCourse.CourseID,
			OfferNbr:     activeCourse.OfferNbr,
			Requirements: requirements,
		})
	}

	if err := database.UpdateCourseRequirements(courseRequirements); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Updated requirements for %v courses\n", len(courseRequirements))
}
