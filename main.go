package main

import "github.com/dev-shimada/csv-refreshment-filter/cmd"

func main() {
	cmd.Execute()
}
