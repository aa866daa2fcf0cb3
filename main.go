package main

import "github.com/nodax-hub/SSAU-Schedule-Bot/cmd"

func main() {
	cmd.Execute()
}
