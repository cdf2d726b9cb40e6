package main

import (
	"fmt"
	"os"

	"github.com/arlowright/streamdiff/cmd"
)

var version = "dev"

func main() {
	if len(os.Args) < 2 {
		cmd.RunDiff(os.Args[1:])
		return
	}

	switch os.Args[1] {
	case "trace":
		cmd.RunTrace(os.Args[2:])
	case "--version":
		fmt.Println("streamdiff", version)
	default:
		cmd.RunDiff(os.Args[1:])
	}
}
