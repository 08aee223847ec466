package main

import "github.com/ridoystarlord/tsmodel/cmd"

func main() {
	cmd.Execute()
}
