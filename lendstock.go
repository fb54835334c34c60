package main

import (
	_ "lendstock.GO/custom"

	"lendstock.GO/cmd"
	"lendstock.GO/config"
)

func main() {
	config.LoadEnv()
	config.LoadAppConfig()
	cmd.Execute()
}
