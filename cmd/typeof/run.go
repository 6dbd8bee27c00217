package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/reusee/typeof/configs"
	"github.com/reusee/typeof/debugs"
	"github.com/reusee/typeof/decodes"
	"github.com/reusee/typeof/logs"
	"github.com/reusee/typeof/syncs"
	"github.com/reusee/typeof/tables"
	"github.com/reusee/typeof/typetags"
	"github.com/reusee/typeof/vars"
)

const defaultJobs = 8

// maxLineSize bounds one input line of the lines command.
const maxLineSize = 64 << 20

type Run func(ctx context.Context, req request, stdin io.Reader, stdout io.Writer) error

func (Module) Run(
	classifier *typetags.Classifier,
	newSpan logs.NewSpan,
	logger logs.Logger,
	tap debugs.Tap,
	eval debugs.Eval,
	loader configs.Loader,
) Run {

	classify := func(ctx context.Context, format string, text string) (string, error) {
		value, err := decodes.ByFormat(format, text)
		if err != nil {
			return "", err
		}
		tag := classifier.TypeOf(value, nil, nil)
		logger.DebugContext(ctx, "classified",
			"format", format,
			"tag", tag,
		)
		return tag, nil
	}

	return func(ctx context.Context, req request, stdin io.Reader, stdout io.Writer) (err error) {
		ctx, _ = newSpan(ctx, req.action.String())
		defer func() {
			if err != nil {
				err = logs.WrapSpan(ctx, err)
			}
		}()

		switch req.action {

		case actionPrint:
			tag, err := classify(ctx, req.format, req.text)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(stdout, tag)
			return err

		case actionTable:
			value, err := decodes.ByFormat(req.format, req.text)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(stdout, tables.Render(classifier, value))
			return err

		case actionLines:
			var lines []string
			scanner := bufio.NewScanner(stdin)
			scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)
			for scanner.Scan() {
				line := strings.TrimSpace(scanner.Text())
				if line == "" {
					continue
				}
				lines = append(lines, line)
			}
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("read lines: %w", err)
			}
			results, err := syncs.Map(
				ctx,
				vars.FirstNonZero(*jobsFlag, defaultJobs),
				lines,
				func(line string) string {
					tag, err := classify(ctx, req.format, line)
					if err != nil {
						logger.WarnContext(ctx, "classify line",
							"line", line,
							"error", err,
						)
						return "error: " + err.Error()
					}
					return tag
				},
			)
			if err != nil {
				return err
			}
			for _, result := range results {
				if _, err := fmt.Fprintln(stdout, result); err != nil {
					return err
				}
			}
			return nil

		case actionREPL:
			tap(ctx, "repl", nil)
			return nil

		case actionEval:
			_, err := eval(ctx, req.text, nil, stdout)
			return err

		case actionConfigShow:
			config := classifier.GetConfig()
			_, err := fmt.Fprintf(stdout, "specific_type: %v\noriginal_case: %v\n",
				config.SpecificType,
				config.OriginalCase,
			)
			return err

		case actionConfigPaths:
			for _, path := range loader.Paths() {
				if _, err := fmt.Fprintln(stdout, path); err != nil {
					return err
				}
			}
			return nil

		}

		return fmt.Errorf("unknown action: %d", req.action)
	}
}
