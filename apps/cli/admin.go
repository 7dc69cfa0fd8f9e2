package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/tutorlink/tutorlink-go/core/user"
)

func (cli *commandLine) adminCmd(args []string) error {
	adminCmd := flag.NewFlagSet("admin", flag.ExitOnError)
	stats := adminCmd.Bool("stats", false, "Show platform-wide statistics.")
	users := adminCmd.Bool("users", false, "List user accounts.")
	if err := adminCmd.Parse(args); err != nil {
		return err
	}
	ctx := context.Background()

	if _, err := cli.requireRole(user.RoleAdmin); err != nil {
		return err
	}

	switch {
	case *stats:
		st, err := cli.queries.Admin.Stats(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(cli.out, "users: %d (%d lecturers, %d students)\n",
			st.Overview.TotalUsers, st.Overview.TotalLecturers, st.Overview.TotalStudents)
		fmt.Fprintf(cli.out, "courses: %d (%d active)\n", st.Overview.TotalCourses, st.Overview.ActiveCourses)
		fmt.Fprintf(cli.out, "classes: %d\n", st.Overview.TotalClasses)
		fmt.Fprintf(cli.out, "enrollments: %d (%d pending)\n",
			st.Overview.TotalEnrollments, st.Overview.PendingEnrollments)
		return nil

	case *users:
		page, err := cli.queries.Admin.Users(ctx, 1, 50, "", nil)
		if err != nil {
			return err
		}
		for _, u := range page.Data {
			state := "active"
			if !u.IsActive {
				state = "disabled"
			}
			fmt.Fprintf(cli.out, "%s  %-30s %-10s %s\n", u.ID, u.Email, u.Role, state)
		}
		fmt.Fprintf(cli.out, "%d user(s)\n", page.Meta.Total)
		return nil

	default:
		adminCmd.Usage()
		return errHelp
	}
}

func (cli *commandLine) dashboardCmd() error {
	ctx := context.Background()
	usr, err := cli.requireLogin()
	if err != nil {
		return err
	}

	switch usr.Role {
	case user.RoleLecturer:
		dash, err := cli.queries.Dashboard.Lecturer(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(cli.out, "courses: %d (%d active)\n", dash.Overview.TotalCourses, dash.Overview.ActiveCourses)
		fmt.Fprintf(cli.out, "classes: %d upcoming, %d completed, %d cancelled\n",
			dash.Classes.Upcoming, dash.Classes.Completed, dash.Classes.Cancelled)
		return nil

	case user.RoleStudent:
		dash, err := cli.queries.Dashboard.Student(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(cli.out, "enrollments: %d (%d approved, %d pending)\n",
			dash.Overview.TotalEnrollments, dash.Overview.ApprovedEnrollments, dash.Overview.PendingEnrollments)
		fmt.Fprintf(cli.out, "classes: %d upcoming, %d completed\n", dash.Classes.Upcoming, dash.Classes.Completed)
		return nil

	default:
		st, err := cli.queries.Admin.Stats(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(cli.out, "users: %d, courses: %d, enrollments: %d\n",
			st.Overview.TotalUsers, st.Overview.TotalCourses, st.Overview.TotalEnrollments)
		return nil
	}
}
