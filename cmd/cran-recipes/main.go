package main

import "cran-recipes/internal/cli"

func main() {
	cli.Execute()
}
