package main

import "github.com/ValentinKolb/cstore/cmd"

func main() {
	cmd.Execute()
}
