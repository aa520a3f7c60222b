/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import (
	"github.com/amirdaaee/TGSaver/cmd"
)

func main() {
	cmd.Execute()
}
