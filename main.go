package main

import "shortcuts/cmd"

func main() {
	cmd.Execute()
}
