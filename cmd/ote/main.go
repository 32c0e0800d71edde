package main

import "github.com/OpenTraceLab/OpenTraceEagle/cmd/ote/cmd"

func main() {
	cmd.Execute()
}
