package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/tutorlink/tutorlink-go/core/course"
	"github.com/tutorlink/tutorlink-go/core/user"
)

func (cli *commandLine) coursesCmd(args []string) error {
	coursesCmd := flag.NewFlagSet("courses", flag.ExitOnError)
	inactive := coursesCmd.Bool("inactive", false, "Include inactive courses (lecturer listing).")
	search := coursesCmd.Bool("search", false, "Search the public catalog instead of listing own courses.")
	subject := coursesCmd.String("subject", "", "Filter the catalog search by subject.")
	level := coursesCmd.String("level", "", "Filter the catalog search by level.")
	create := coursesCmd.String("create", "", "Create a course with this name.")
	duration := coursesCmd.Int("duration", 60, "Session duration in minutes for -create.")
	rate := coursesCmd.Float64("rate", 0, "Hourly rate for -create.")
	if err := coursesCmd.Parse(args); err != nil {
		return err
	}
	ctx := context.Background()

	if *create != "" {
		if _, err := cli.requireRole(user.RoleLecturer); err != nil {
			return err
		}
		crs, err := cli.queries.Courses.Create(ctx, course.CreateCourse{
			Name:       *create,
			Subject:    *subject,
			Level:      *level,
			Duration:   *duration,
			HourlyRate: *rate,
		}, course.Upload{})
		if err != nil {
			return err
		}
		fmt.Fprintf(cli.out, "Created course %s\n", crs.ID)
		return nil
	}

	if *search {
		if _, err := cli.requireLogin(); err != nil {
			return err
		}
		page, err := cli.queries.Courses.Search(ctx, course.SearchParams{Subject: *subject, Level: *level, Page: 1, Limit: 50})
		if err != nil {
			return err
		}
		for _, res := range page.Data {
			fmt.Fprintf(cli.out, "%s  %-30s %-12s %s %s (%.2f/h)\n",
				res.ID, res.Name, res.Subject, res.Lecturer.FirstName, res.Lecturer.LastName, res.HourlyRate)
		}
		fmt.Fprintf(cli.out, "%d course(s)\n", page.Meta.Total)
		return nil
	}

	if _, err := cli.requireRole(user.RoleLecturer); err != nil {
		return err
	}
	courses, err := cli.queries.Courses.Mine(ctx, *inactive)
	if err != nil {
		return err
	}
	for _, crs := range courses {
		state := "active"
		if !crs.IsActive {
			state = "inactive"
		}
		fmt.Fprintf(cli.out, "%s  %-30s %-12s %s\n", crs.ID, crs.Name, crs.Subject, state)
	}
	fmt.Fprintf(cli.out, "%d course(s)\n", len(courses))
	return nil
}
