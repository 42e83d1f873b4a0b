package main

import "github.com/nordicwalking/trailview/cmd"

func main() {
	cmd.Execute()
}
