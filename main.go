package main

import "courselookup/cmd"

func main() {
	cmd.Execute()
}
