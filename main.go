package main

import "github.com/shandysiswandi/goamviajes/cmd"

func main() {
	cmd.Execute()
}
