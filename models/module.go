package models

import (
	"github.com/atrislabs/rlm/configs"
	"github.com/atrislabs/rlm/logs"
	"github.com/atrislabs/rlm/nets"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Configs configs.Module
	Logs    logs.Module
	Nets    nets.Module
}
