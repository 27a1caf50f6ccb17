package main

import "life-lab/internal/cli"

func main() {
	cli.Execute()
}
