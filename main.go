package main

import "github.com/proflink/proflink_backend/cmd"

func main() {
	cmd.Execute()
}
