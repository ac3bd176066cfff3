package main

import "github.com/birdwatchers/birdhunter/cmd"

func main() {
	cmd.Execute()
}
