package main

import (
	"github.com/timewave-computer/proof-relayer/cmd/proof_relayer/cmd"
)

func main() {
	cmd.Execute()
}
