package logs

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/typeof/modes"
)

func TestNewSpan(t *testing.T) {
	buf := new(bytes.Buffer)
	dscope.New(new(Module), modes.ForTest(t)).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		newSpan NewSpan,
	) {
		ctx := context.Background()
		ctx1, span1 := newSpan(ctx, "request")
		_, span2 := newSpan(ctx1, "line")

		lines := strings.Split(buf.String(), "\n")
		if !strings.Contains(lines[0], "span="+string(span1)) {
			t.Fatalf("got %v", lines[0])
		}
		if !strings.Contains(lines[0], "what=request") {
			t.Fatalf("got %v", lines[0])
		}
		if strings.Contains(lines[0], "parent=") {
			t.Fatalf("got %v", lines[0])
		}
		if !strings.Contains(lines[1], "span="+string(span2)) {
			t.Fatalf("got %v", lines[1])
		}
		if !strings.Contains(lines[1], "parent="+string(span1)) {
			t.Fatalf("got %v", lines[1])
		}
	})
}

func TestSpanWithAttrs(t *testing.T) {
	buf := new(bytes.Buffer)
	dscope.New(new(Module), modes.ForTest(t)).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		newSpan NewSpan,
		logger Logger,
	) {
		ctx, span := newSpan(context.Background(), "request")
		buf.Reset()
		logger.With("format", "json").InfoContext(ctx, "classified")
		if !strings.Contains(buf.String(), "span="+string(span)) {
			t.Fatalf("got %v", buf.String())
		}
		if !strings.Contains(buf.String(), "format=json") {
			t.Fatalf("got %v", buf.String())
		}
	})
}

func TestWrapSpan(t *testing.T) {
	base := errors.New("foo")
	if err := WrapSpan(context.Background(), base); err != base {
		t.Fatalf("got %v", err)
	}
	if err := WrapSpan(context.Background(), nil); err != nil {
		t.Fatalf("got %v", err)
	}

	dscope.New(new(Module), modes.ForTest(t)).Call(func(
		newSpan NewSpan,
	) {
		ctx, span := newSpan(context.Background(), "request")
		err := WrapSpan(ctx, base)
		if !errors.Is(err, base) {
			t.Fatalf("got %v", err)
		}
		var spanErr *SpanError
		if !errors.As(err, &spanErr) {
			t.Fatalf("got %v", err)
		}
		if spanErr.Span != span {
			t.Fatalf("got %v", spanErr.Span)
		}
		if err.Error() != "foo (span: "+string(span)+")" {
			t.Fatalf("got %v", err)
		}

		// nested spans keep the innermost
		ctx2, _ := newSpan(ctx, "inner")
		if err2 := WrapSpan(ctx2, err); err2 != err {
			t.Fatalf("got %v", err2)
		}
	})
}
