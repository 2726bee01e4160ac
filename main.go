package main

import "github.com/knoxval/fortshop/cmd"

func main() {
	cmd.Execute()
}
