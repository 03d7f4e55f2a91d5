package main

import "github.com/harshilsakhiya/Salwa-Admin-sub001/cmd"

func main() {
	cmd.Execute()
}
