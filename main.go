package main

import "github.com/lepinkainen/storeview/cmd"

var execute = cmd.Execute

func main() {
	execute()
}
