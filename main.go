/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>

*/
package main

import "github.com/djotaku/lastfmeoystats/cmd"

func main() {
	cmd.Execute()
}
