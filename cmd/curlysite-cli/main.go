package main

import "github.com/curlylint/site/cmd/curlysite-cli/cmd"

func main() {
	cmd.Execute()
}
