package main

import "github.com/mattmcc/microformats2/cmd"

func main() {
	cmd.Execute()
}
