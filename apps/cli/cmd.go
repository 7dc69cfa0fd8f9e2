package main

import (
	"errors"
	"fmt"
	"io"
	"syscall"

	"golang.org/x/term"

	"github.com/tutorlink/tutorlink-go/core/user"
	"github.com/tutorlink/tutorlink-go/nav"
	"github.com/tutorlink/tutorlink-go/query"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp        = errors.New("help provided")
	errNotLoggedIn = errors.New("not logged in")
)

type commandLine struct {
	queries *query.Queries
	out     io.Writer
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  login -email EMAIL                          - log in; the password is prompted next")
	fmt.Fprintln(cli.out, "  logout                                      - log out and clear the saved session")
	fmt.Fprintln(cli.out, "  whoami                                      - show the logged-in account and its menu")
	fmt.Fprintln(cli.out, "  courses [-inactive] [-subject S] [-search]  - list own courses, or search the catalog")
	fmt.Fprintln(cli.out, "  courses -create NAME -subject S [-duration M] [-rate R] - create a course")
	fmt.Fprintln(cli.out, "  classes [-status S] [-cancel ID]            - list own classes, or cancel one")
	fmt.Fprintln(cli.out, "  enroll -course ID [-group ID]               - request enrollment into a course")
	fmt.Fprintln(cli.out, "  enrollments [-approve ID] [-reject ID]      - list enrollment requests, or resolve one")
	fmt.Fprintln(cli.out, "  availability [-expired]                     - list own availability slots")
	fmt.Fprintln(cli.out, "  availability [-day D|-date D] -start T -end T - add an availability slot")
	fmt.Fprintln(cli.out, "  groups [-join CODE]                         - list study groups, or join one by code")
	fmt.Fprintln(cli.out, "  admin -stats|-users                         - platform stats or the user listing")
	fmt.Fprintln(cli.out, "  dashboard                                   - role dashboard summary")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	switch args[1] {
	case "login":
		return cli.loginCmd(args[2:])
	case "logout":
		return cli.logoutCmd()
	case "whoami":
		return cli.whoamiCmd()
	case "courses":
		return cli.coursesCmd(args[2:])
	case "classes":
		return cli.classesCmd(args[2:])
	case "enroll":
		return cli.enrollCmd(args[2:])
	case "enrollments":
		return cli.enrollmentsCmd(args[2:])
	case "availability":
		return cli.availabilityCmd(args[2:])
	case "groups":
		return cli.groupsCmd(args[2:])
	case "admin":
		return cli.adminCmd(args[2:])
	case "dashboard":
		return cli.dashboardCmd()
	default:
		cli.printUsage()
		return errHelp
	}
}

// requireRole resolves the current session and checks it may use the given
// area, mirroring the route guard.
func (cli *commandLine) requireRole(role user.Role) (user.User, error) {
	usr, ok := cli.queries.Auth.Current()
	if !ok {
		return user.User{}, errNotLoggedIn
	}
	if usr.Role != role {
		return user.User{}, fmt.Errorf("%s access required, logged in as %s", role, usr.Role)
	}
	return usr, nil
}

func (cli *commandLine) requireLogin() (user.User, error) {
	usr, ok := cli.queries.Auth.Current()
	if !ok {
		return user.User{}, errNotLoggedIn
	}
	return usr, nil
}

func promptPassword() (string, error) {
	fmt.Print("Enter password:")
	pwd, err := readPasswordFunc(syscall.Stdin)
	fmt.Println()
	if err != nil {
		return "", err
	}
	return string(pwd), nil
}

func (cli *commandLine) printMenu(role user.Role) {
	fmt.Fprintf(cli.out, "menu (%s):\n", role)
	for _, item := range nav.Items(role) {
		fmt.Fprintf(cli.out, "  %-20s %s\n", item.Label, item.Path)
	}
}
