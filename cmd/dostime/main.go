package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"os"
)

func main() {
	log := logrus.New()
	log.SetOutput(os.Stderr)

	os.Exit(run(os.Args[1:], afero.NewOsFs(), os.Stdout, log))
}
