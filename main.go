package main

import "github.com/czarbitoon/smch-mobile-app-sub000/cmd"

func main() {
	cmd.Execute()
}
