package main

import (
	"github.com/mpq-cli/mpq/cmd"
	"github.com/mpq-cli/mpq/config"
	"github.com/mpq-cli/mpq/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
