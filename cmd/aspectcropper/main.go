package main

import (
	"os"

	"github.com/ds124wfegd/storeassets/internal/app"
	"github.com/sirupsen/logrus"
)

func main() {
	a, err := app.Bootstrap(app.ToolCropper)
	if err != nil {
		logrus.Fatalf("error occured while starting aspectcropper: %s", err.Error())
	}
	os.Exit(a.RunCrop(os.Args[1:]))
}
