package main

import "github.com/cp-topic-list/site/cmd/sitegen/cmd"

func main() {
	cmd.Execute()
}
