// Command gridprint prints aligned, optionally colored grids of text.
package main

import "os"

func main() {
	log := newLogger(os.Stderr)
	if err := newRootCommand(log).Execute(); err != nil {
		log.WithError(err).Error("gridprint failed")
		os.Exit(1)
	}
}
