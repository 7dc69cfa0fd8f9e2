package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/tutorlink/tutorlink-go/core/availability"
	"github.com/tutorlink/tutorlink-go/core/enrollment"
	"github.com/tutorlink/tutorlink-go/core/user"
)

func (cli *commandLine) enrollCmd(args []string) error {
	enrollCmd := flag.NewFlagSet("enroll", flag.ExitOnError)
	courseID := enrollCmd.String("course", "", "The course to enroll into.")
	groupID := enrollCmd.String("group", "", "Enroll an owned study group instead of yourself.")
	if err := enrollCmd.Parse(args); err != nil {
		return err
	}
	if *courseID == "" {
		enrollCmd.Usage()
		return errHelp
	}
	if _, err := cli.requireRole(user.RoleStudent); err != nil {
		return err
	}

	enr, err := cli.queries.Students.Enroll(context.Background(), enrollment.EnrollRequest{
		CourseID:       *courseID,
		StudentGroupID: *groupID,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "enrollment %s is %s\n", enr.ID, enr.Status)
	return nil
}

func (cli *commandLine) enrollmentsCmd(args []string) error {
	enrCmd := flag.NewFlagSet("enrollments", flag.ExitOnError)
	approve := enrCmd.String("approve", "", "Approve the pending enrollment with this ID.")
	reject := enrCmd.String("reject", "", "Reject the pending enrollment with this ID.")
	status := enrCmd.String("status", "", "Filter by status: PENDING, APPROVED or REJECTED.")
	if err := enrCmd.Parse(args); err != nil {
		return err
	}
	ctx := context.Background()

	usr, err := cli.requireLogin()
	if err != nil {
		return err
	}

	switch {
	case *approve != "" || *reject != "":
		if usr.Role != user.RoleLecturer {
			return fmt.Errorf("only lecturers can resolve enrollments")
		}
		id, newStatus := *approve, enrollment.StatusApproved
		if *reject != "" {
			id, newStatus = *reject, enrollment.StatusRejected
		}
		det, err := cli.queries.Enrollments.UpdateStatus(ctx, id, enrollment.StatusUpdate{Status: newStatus})
		if err != nil {
			return err
		}
		fmt.Fprintf(cli.out, "enrollment %s is now %s\n", det.ID, det.Status)
		return nil

	case usr.Role == user.RoleStudent:
		enrollments, err := cli.queries.Students.Enrollments(ctx, enrollment.Status(*status))
		if err != nil {
			return err
		}
		for _, enr := range enrollments {
			fmt.Fprintf(cli.out, "%s  %-30s %s\n", enr.ID, enr.Course.Name, enr.Status)
		}
		fmt.Fprintf(cli.out, "%d enrollment(s)\n", len(enrollments))
		return nil

	default:
		details, err := cli.queries.Enrollments.List(ctx, enrollment.Status(*status), "")
		if err != nil {
			return err
		}
		for _, det := range details {
			who := "group"
			if det.Student != nil {
				who = det.Student.FirstName + " " + det.Student.LastName
			} else if det.StudentGroup != nil {
				who = det.StudentGroup.Name
			}
			fmt.Fprintf(cli.out, "%s  %-30s %-20s %s\n", det.ID, det.Course.Name, who, det.Status)
		}
		fmt.Fprintf(cli.out, "%d enrollment(s)\n", len(details))
		return nil
	}
}

func (cli *commandLine) availabilityCmd(args []string) error {
	avCmd := flag.NewFlagSet("availability", flag.ExitOnError)
	expired := avCmd.Bool("expired", false, "Include expired one-off slots.")
	day := avCmd.Int("day", -1, "Add a weekly slot on this day (0=Sunday..6=Saturday).")
	date := avCmd.String("date", "", "Add a one-off slot on this date (YYYY-MM-DD).")
	start := avCmd.String("start", "", "Slot start time (HH:MM).")
	end := avCmd.String("end", "", "Slot end time (HH:MM).")
	if err := avCmd.Parse(args); err != nil {
		return err
	}
	if _, err := cli.requireRole(user.RoleLecturer); err != nil {
		return err
	}

	if *day >= 0 || *date != "" {
		ca := availability.CreateAvailability{
			SpecificDate: *date,
			StartTime:    *start,
			EndTime:      *end,
		}
		if *day >= 0 {
			ca.IsRecurring = true
			ca.DayOfWeek = day
		}
		av, err := cli.queries.Availability.Create(context.Background(), ca)
		if err != nil {
			return err
		}
		fmt.Fprintf(cli.out, "Added slot %s\n", av.ID)
		return nil
	}

	slots, err := cli.queries.Availability.Mine(context.Background(), *expired)
	if err != nil {
		return err
	}
	for _, av := range slots {
		when := av.SpecificDate
		if av.IsRecurring {
			when = "every " + av.DayName
		}
		fmt.Fprintf(cli.out, "%s  %-20s %s-%s\n", av.ID, when, av.StartTime, av.EndTime)
	}
	fmt.Fprintf(cli.out, "%d slot(s)\n", len(slots))
	return nil
}
