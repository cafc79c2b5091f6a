package main

import (
	// Embed the zone database so the default America/New_York timezone
	// resolves on hosts without tzdata installed.
	_ "time/tzdata"

	"github.com/pfrederiksen/daily-monitor/internal/cli"
)

func main() {
	cli.Execute()
}
