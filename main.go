package main

import "github.com/byfernandatovar/byfernandatovar/cmd"

func main() {
	cmd.Execute()
}
