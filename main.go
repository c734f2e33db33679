package main

import (
	"os"

	"github.com/jpillora/overseer"

	"github.com/benedict-erwin/agency-console/cmd"
)

// main starts the console. serve runs under overseer for zero-downtime restarts.
func main() {
	if len(os.Args) >= 2 && os.Args[1] == "serve" {
		overseer.Run(overseer.Config{
			Program:          cmd.ExecuteWithState,
			Address:          cmd.ServeAddress(os.Args[2:]),
			RestartSignal:    overseer.SIGUSR2,
			TerminateTimeout: 30,
		})
		return
	}
	cmd.Execute()
}
