package main

import "github.com/theirongolddev/startupcalc/cmd"

func main() {
	cmd.Execute()
}
