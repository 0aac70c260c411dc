package main

import "github.com/lhohan/simple-time-tracker-sub000/cmd"

func main() {
	cmd.Execute()
}
