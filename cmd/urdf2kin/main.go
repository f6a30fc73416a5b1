package main

import "urdf2kin/internal/cli"

func main() {
	cli.Execute()
}
