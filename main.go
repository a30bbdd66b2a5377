package main

import "github.com/mlindgren/boxgen/cmd"

func main() {
	cmd.Execute()
}
