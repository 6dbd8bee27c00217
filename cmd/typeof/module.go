package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/typeof/debugs"
	"github.com/reusee/typeof/typetags"
)

type Module struct {
	dscope.Module
	TypeTags typetags.Module
	Debugs   debugs.Module
}
