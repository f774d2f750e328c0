package main

import "github.com/MeKo-Tech/colorpicker/internal/cmd"

func main() {
	cmd.Execute()
}
