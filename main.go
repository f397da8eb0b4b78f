package main

import "github.com/formshift/formshift/cmd"

var version = "v0.3.1"

func main() {
	cmd.Execute(version)
}
