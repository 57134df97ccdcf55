// Command lifetracker is the CLI front end for the daily-activity tracker.
package main

import "github.com/patrickrbarry/lifetracker/internal/cli"

func main() {
	cli.Execute()
}
