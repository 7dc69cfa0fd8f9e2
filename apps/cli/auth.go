package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/tutorlink/tutorlink-go/core/user"
)

func (cli *commandLine) loginCmd(args []string) error {
	loginCmd := flag.NewFlagSet("login", flag.ExitOnError)
	email := loginCmd.String("email", "", "The account's email. The password will be prompted next.")
	if err := loginCmd.Parse(args); err != nil {
		return err
	}
	if *email == "" {
		loginCmd.Usage()
		return errHelp
	}

	pwd, err := promptPassword()
	if err != nil {
		return err
	}
	if pwd == "" {
		loginCmd.Usage()
		return errHelp
	}

	auth, err := cli.queries.Auth.Login(context.Background(), user.Credentials{Email: *email, Password: pwd})
	if err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "logged in as %s %s (%s)\n", auth.User.FirstName, auth.User.LastName, auth.User.Role)
	return nil
}

func (cli *commandLine) logoutCmd() error {
	if err := cli.queries.Auth.Logout(); err != nil {
		return err
	}
	fmt.Fprintln(cli.out, "logged out")
	return nil
}

func (cli *commandLine) whoamiCmd() error {
	usr, err := cli.requireLogin()
	if err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "%s %s <%s> (%s)\n", usr.FirstName, usr.LastName, usr.Email, usr.Role)
	cli.printMenu(usr.Role)
	return nil
}
