package main

import "github.com/korliakov/TensorBackend/cmd"

func main() {
	cmd.Execute()
}
