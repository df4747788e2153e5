package main

import "github.com/prepqhq/prepq-cli/cmd"

func main() {
	cmd.Execute()
}
