package main

import "pricepilot/cmd"

func main() {
	cmd.Execute()
}
