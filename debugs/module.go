package debugs

import (
	"github.com/reusee/dscope"
	"github.com/reusee/typeof/logs"
	"github.com/reusee/typeof/typetags"
)

type Module struct {
	dscope.Module
	Logs     logs.Module
	TypeTags typetags.Module
}
