package main

import (
	"os"

	"github.com/viant/baiwen/cmd"
)

func main() {
	cmd.Run(os.Args[1:])
}
