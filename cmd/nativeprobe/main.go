package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/amikos-tech/pure-native/cmd/nativeprobe/commands"
)

func main() {
	rootCmd := commands.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}
