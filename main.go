package main

import "github.com/intervu/intervu/cmd"

func main() {
	cmd.Execute()
}
