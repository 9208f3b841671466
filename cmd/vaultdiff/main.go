package main

import "vaultdiff/cmd/vaultdiff/cmd"

func main() {
	cmd.Execute()
}
