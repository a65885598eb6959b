package main

import (
	"github.com/jonathan-long-lin/prompt-analyzer/internal/cli"
)

func main() {
	cli.Execute()
}
