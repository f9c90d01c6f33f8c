package runner

import (
	"github.com/projectdiscovery/gologger"
	updateutils "github.com/projectdiscovery/utils/update"
)

var banner = (`
  _                    _      _ _     _
 | |_ ___  _ _ ___ ___| |  __| |_|___| |_
 |  _| . || | |  -|   | |_|  _| | |_ -|  _|
 |_| |___||_|_|___|_|_|_(_)_| |_|_|___|_|
`)

var version = "v0.1.0"

// showBanner is used to show the banner to the user
func showBanner() {
	gologger.Print().Msgf("%s\n", banner)
	gologger.Print().Msgf("\t\ttoken-aware edit distance\n\n")
}

// GetUpdateCallback returns a callback function that updates tokendist
func GetUpdateCallback() func() {
	return func() {
		showBanner()
		updateutils.GetUpdateToolCallback("tokendist", version)()
	}
}
