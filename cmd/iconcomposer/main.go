package main

import (
	"os"

	"github.com/ds124wfegd/storeassets/internal/app"
	"github.com/sirupsen/logrus"
)

func main() {
	a, err := app.Bootstrap(app.ToolIcon)
	if err != nil {
		logrus.Fatalf("error occured while starting iconcomposer: %s", err.Error())
	}
	os.Exit(a.RunIcon(os.Args[1:]))
}
