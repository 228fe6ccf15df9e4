package main

import "github.com/Digital-Shane/tvdbxml/internal/cmd"

func main() {
	cmd.Execute()
}
