// Package main is the entry point for the footstats CLI, which imports the
// international football results dataset and renders filtered team
// statistics in the terminal or over HTTP.
package main

import "github.com/pable/go-football-stats/cmd"

func main() {
	cmd.Execute()
}
