package main

import "dailylog/cmd/dailylog-cli/cmd"

func main() {
	cmd.Execute()
}
