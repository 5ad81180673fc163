package main

import "github.com/ashrafm152/gauge/cmd"

func main() {
	cmd.Execute()
}
