package main

import (
	"log"
	"os"

	"github.com/tutorlink/tutorlink-go/cache"
	"github.com/tutorlink/tutorlink-go/client"
	"github.com/tutorlink/tutorlink-go/core"
	"github.com/tutorlink/tutorlink-go/query"
	notifysvc "github.com/tutorlink/tutorlink-go/services/notify"
	sessionstore "github.com/tutorlink/tutorlink-go/storage/session"
)

var logger *log.Logger

func main() {
	defer os.Exit(0)

	logger = log.New(os.Stdout, "TUTORLINK : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	conf := core.NewConfig()

	sessions, err := sessionstore.OpenFileStore(conf.SessionFile)
	errAndDie(err)

	var notifier notifysvc.Notifier = notifysvc.NewConsoleNotifier()
	if conf.RollbarToken != "" {
		notifier = notifysvc.NewRollbarNotifier(notifier, conf)
	}

	api := client.New(conf, sessions, client.WithLogger(cliLogger{logger}))
	queries := query.New(api, cache.New(conf.Cache.StaleTime), notifier)

	cli := commandLine{
		queries: queries,
		out:     os.Stdout,
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}

func errAndDie(err error) {
	if err != nil {
		logger.Fatal(err)
	}
}

// cliLogger adapts the process logger to the SDK's logging contract.
type cliLogger struct{ l *log.Logger }

func (c cliLogger) Debug(msg string, args ...interface{}) { c.print("DEBUG", msg, args) }
func (c cliLogger) Info(msg string, args ...interface{})  { c.print("INFO", msg, args) }
func (c cliLogger) Warn(msg string, args ...interface{})  { c.print("WARN", msg, args) }
func (c cliLogger) Error(msg string, args ...interface{}) { c.print("ERROR", msg, args) }

func (c cliLogger) print(level, msg string, args []interface{}) {
	c.l.Println(append([]interface{}{level, msg}, args...)...)
}
