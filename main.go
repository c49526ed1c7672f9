package main

import "registro/cli"

func main() {
	cli.Execute()
}
