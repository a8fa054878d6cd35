package main

import "github.com/bz888/banter/cmd"

func main() {
	cmd.Execute()
}
