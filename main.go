package main

import "github.com/zixu-w/DPP/cmd"

func main() {
	cmd.Execute()
}
