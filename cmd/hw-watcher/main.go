package main

import "github.com/davarch/hw-watcher/cmd/hw-watcher/cli"

func main() {
	cli.Execute()
}
