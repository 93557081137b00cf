package main

import "admin-backoffice/cmd"

func main() {
	cmd.Execute()
}
