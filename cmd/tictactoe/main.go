package main

import "ctchen222/noughts-and-crosses/internal/cli"

func main() {
	cli.Execute()
}
