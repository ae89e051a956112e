package main

import "github.com/daiguadaidai/tsql-stats/cmd"

func main() {
	cmd.Execute()
}
