package main

import "github.com/shannicec/moneymorph/internal/cli"

func main() {
	cli.Execute()
}
