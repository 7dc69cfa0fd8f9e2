package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/tutorlink/tutorlink-go/core/user"
)

func (cli *commandLine) groupsCmd(args []string) error {
	groupsCmd := flag.NewFlagSet("groups", flag.ExitOnError)
	join := groupsCmd.String("join", "", "Join a study group by its code.")
	if err := groupsCmd.Parse(args); err != nil {
		return err
	}
	ctx := context.Background()

	if _, err := cli.requireRole(user.RoleStudent); err != nil {
		return err
	}

	if *join != "" {
		if err := cli.queries.Groups.JoinByCode(ctx, *join); err != nil {
			return err
		}
		fmt.Fprintln(cli.out, "join request sent")
		return nil
	}

	mine, err := cli.queries.Groups.Mine(ctx)
	if err != nil {
		return err
	}
	joined, err := cli.queries.Groups.Joined(ctx)
	if err != nil {
		return err
	}
	for _, grp := range mine {
		fmt.Fprintf(cli.out, "%s  %-30s %-12s owner\n", grp.ID, grp.Name, grp.GroupCode)
	}
	for _, grp := range joined {
		fmt.Fprintf(cli.out, "%s  %-30s %-12s member\n", grp.ID, grp.Name, grp.GroupCode)
	}
	fmt.Fprintf(cli.out, "%d group(s)\n", len(mine)+len(joined))
	return nil
}
