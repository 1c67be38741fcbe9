package main

import "github.com/alexiusacademia/woodgeo/cmd"

func main() {
	cmd.Execute()
}
