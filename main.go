package main

import "github.com/mannixp/D.stratify-pdfe/cmd"

func main() {
	cmd.Execute()
}
