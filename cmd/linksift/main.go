package main

import "github.com/w95/linksift/internal/cli"

func main() {
	cli.Execute()
}
