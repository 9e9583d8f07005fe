package main

import "mxmodeler/internal/cli"

func main() {
	cli.Execute()
}
