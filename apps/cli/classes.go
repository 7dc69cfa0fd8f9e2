package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/tutorlink/tutorlink-go/core/class"
	"github.com/tutorlink/tutorlink-go/core/user"
)

func (cli *commandLine) classesCmd(args []string) error {
	classesCmd := flag.NewFlagSet("classes", flag.ExitOnError)
	status := classesCmd.String("status", "", "Filter by status: SCHEDULED, COMPLETED or CANCELLED.")
	cancel := classesCmd.String("cancel", "", "Cancel the class with this ID.")
	if err := classesCmd.Parse(args); err != nil {
		return err
	}
	ctx := context.Background()

	usr, err := cli.requireLogin()
	if err != nil {
		return err
	}

	if *cancel != "" {
		if usr.Role != user.RoleLecturer {
			return fmt.Errorf("only lecturers can cancel classes")
		}
		cls, err := cli.queries.Classes.Cancel(ctx, *cancel)
		if err != nil {
			return err
		}
		fmt.Fprintf(cli.out, "class %s is now %s\n", cls.ID, cls.Status)
		return nil
	}

	if usr.Role == user.RoleStudent {
		classes, err := cli.queries.Students.Classes(ctx, true /* upcoming */)
		if err != nil {
			return err
		}
		for _, cls := range classes {
			fmt.Fprintf(cli.out, "%s  %s %s-%s  %-30s %s %s\n",
				cls.ID, cls.Date, cls.StartTime, cls.EndTime, cls.Course.Name, cls.Lecturer.FirstName, cls.Lecturer.LastName)
		}
		fmt.Fprintf(cli.out, "%d class(es)\n", len(classes))
		return nil
	}

	classes, err := cli.queries.Classes.Mine(ctx, class.Status(*status), "")
	if err != nil {
		return err
	}
	for _, cls := range classes {
		fmt.Fprintf(cli.out, "%s  %s %s-%s  %-30s %s\n",
			cls.ID, cls.Date, cls.StartTime, cls.EndTime, cls.Course.Name, cls.Status)
	}
	fmt.Fprintf(cli.out, "%d class(es)\n", len(classes))
	return nil
}
