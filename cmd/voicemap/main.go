package main

import (
	"voicemap/cmd/voicemap/cmd"
)

func main() {
	cmd.Execute()
}
