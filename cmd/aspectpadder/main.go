package main

import (
	"os"

	"github.com/ds124wfegd/storeassets/internal/app"
	"github.com/sirupsen/logrus"
)

func main() {
	a, err := app.Bootstrap(app.ToolPadder)
	if err != nil {
		logrus.Fatalf("error occured while starting aspectpadder: %s", err.Error())
	}
	os.Exit(a.RunPad(os.Args[1:]))
}
