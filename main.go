package main

import "github.com/omynix/waybar-manager/cmd"

func main() {
	cmd.Execute()
}
