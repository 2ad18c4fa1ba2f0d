package main

import "rlar/cmd"

func main() {
	cmd.Execute()
}
