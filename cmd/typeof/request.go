package main

import (
	"github.com/reusee/typeof/cmds"
	"github.com/reusee/typeof/decodes"
)

type action uint8

const (
	actionPrint action = iota + 1
	actionTable
	actionLines
	actionREPL
	actionEval
	actionConfigShow
	actionConfigPaths
)

func (a action) String() string {
	switch a {
	case actionPrint:
		return "print"
	case actionTable:
		return "table"
	case actionLines:
		return "lines"
	case actionREPL:
		return "repl"
	case actionEval:
		return "eval"
	case actionConfigShow:
		return "config show"
	case actionConfigPaths:
		return "config paths"
	}
	return "unknown"
}

type request struct {
	action action
	format string
	text   string
}

var requests []request

func init() {
	for _, format := range decodes.Formats {
		cmds.Define(format, cmds.Func(func(text string) {
			requests = append(requests, request{
				action: actionPrint,
				format: format,
				text:   text,
			})
		}).Desc("print the type tag of a "+format+" value"))
	}

	cmds.Define("table", cmds.Func(func(format string, text string) {
		requests = append(requests, request{
			action: actionTable,
			format: format,
			text:   text,
		})
	}).Desc("print the type tags of a value under all flag combinations"))

	cmds.Define("lines", cmds.Func(func(format string) {
		requests = append(requests, request{
			action: actionLines,
			format: format,
		})
	}).Desc("print the type tag of each stdin line"))

	cmds.Define("repl", cmds.Func(func() {
		requests = append(requests, request{
			action: actionREPL,
		})
	}).Desc("starlark REPL with type_of, get_config and set_config"))

	cmds.Define("eval", cmds.Func(func(src string) {
		requests = append(requests, request{
			action: actionEval,
			text:   src,
		})
	}).Desc("run a starlark script with type_of, get_config and set_config"))

	cmds.Define("config", cmds.Sub(map[string]*cmds.Command{
		"show": cmds.Func(func() {
			requests = append(requests, request{
				action: actionConfigShow,
			})
		}).Desc("print the effective classifier config"),
		"paths": cmds.Func(func() {
			requests = append(requests, request{
				action: actionConfigPaths,
			})
		}).Desc("print the config files in precedence order"),
	}).Desc("inspect configuration"))
}

var jobsFlag = cmds.Var[int]("-jobs", "max concurrent classifications of the lines command")
