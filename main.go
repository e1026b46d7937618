package main

import "github.com/RustyNova016/charchart/cmd"

func main() {
	cmd.Execute()
}
