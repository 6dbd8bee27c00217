package tagconfigs

import (
	"github.com/reusee/dscope"
	"github.com/reusee/typeof/logs"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}
