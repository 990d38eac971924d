package main

import "github.com/arya-nigam06/reelcut/internal/cli"

func main() {
	cli.Main()
}
