package main

import "github.com/twotier/twotier-services/cmd"

func main() {
	cmd.Execute()
}
