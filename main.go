package main

import "github.com/chrisdamba/restobill/cmd"

func main() {
	cmd.Execute()
}
