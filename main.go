package main

import "github.com/jsphweid/pnote/cmd"

func main() {
	cmd.Execute()
}
