package main

import "mamoji/cmd"

func main() {
	cmd.Execute()
}
