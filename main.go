package main

import "github.com/cheerioskun/regexninja/internal/cmd"

func main() {
	cmd.Execute()
}
