package main

import "economy-manager/cmd"

func main() {
	cmd.Execute()
}
