package main

import (
	"github.com/lehigh-university-libraries/marc-transform/cmd"
)

func main() {
	cmd.Execute()
}
