package main

import "github.com/alexiusacademia/gobcf/cmd"

func main() {
	cmd.Execute()
}
