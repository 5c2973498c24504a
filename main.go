package main

import "github.com/serena-hb/jiractx/cmd"

func main() {
	cmd.Execute()
}
