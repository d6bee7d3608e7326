package main

import "github.com/calliglyph/calliglyph/cmd"

func main() {
	cmd.Execute()
}
