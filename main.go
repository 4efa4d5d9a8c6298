package main

import "payments-engine/cmd"

func main() {
	cmd.Execute()
}
