package main

import "github.com/avelev99/cpuinfo-app/pkg/cli"

func main() {
	cli.Execute()
}
