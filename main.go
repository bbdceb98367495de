package main

import "github.com/rmerrell/polyvoice/cmd"

func main() {
	cmd.Execute()
}
