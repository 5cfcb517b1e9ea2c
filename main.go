package main

import "github.com/jermspeaks/slowtube/cmd"

func main() {
	cmd.Execute()
}
