package theme

import (
	"fmt"
)

// Banner returns the forum's gothic terminal banner.
func Banner() string {
	const purple = "\033[35m"
	const red = "\033[31m"
	const grey = "\033[90m"
	const reset = "\033[0m"

	art := "" +
		"  ☾✧   " + purple + "NIGHT RITUALS" + reset + "   ✧☽\n" +
		red + "   ▄▄▄▄▄  ▄▄  ▄▄  ▄▄▄▄▄\n" + reset +
		red + "   ██▀▀█  ███▐██  █▀▀██▌\n" + reset +
		red + "   ▀█▄▄█  ▐█████  █▄▄█▀\n" + reset +
		grey + "   ─────────────────────────\n" + reset +
		"   a forum for the hours after midnight ☾\n"

	stars := grey + "      ✧    ☾     ✧     ☽    ✧\n" + reset
	return art + stars
}

// PrintBanner prints the banner to stdout.
func PrintBanner() {
	fmt.Print(Banner())
}
