package main

import (
	"os"

	"github.com/lazyclaw/dashboard/internal/cli"
)

func main() {
	app := cli.NewApp()
	err := app.Execute()
	_ = app.Close()
	if err != nil {
		// cobra already printed the error
		os.Exit(1)
	}
}
