// Copyright 2026 The Docpub Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package reporting renders check findings for the current environment:
// plain output, GitHub Actions workflow commands or an interactive
// terminal.
package reporting

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"

	"github.com/docpub-project/docpub/internal/tutorial"
)

// Report is a closable tutorial.Report.
type Report interface {
	io.Closer
	tutorial.Report
}

// Get returns the right reporting implementation based on the current
// environment.
func Get(ctx context.Context) (*MultiReport, error) {
	r := &MultiReport{}

	// The following reporters all emit to stdout so they are mutually
	// exclusive.
	switch {
	case os.Getenv("GITHUB_RUN_ID") != "":
		// On GitHub Actions. Emits GitHub Workflows commands, so findings
		// annotate the pull request.
		r.Reporters = append(r.Reporters, &github{out: os.Stdout})
	case os.Getenv("TERM") != "dumb" && isatty.IsTerminal(os.Stderr.Fd()):
		// Active terminal. Colors!
		r.Reporters = append(r.Reporters, &interactive{
			out: colorable.NewColorableStdout(),
		})
	default:
		// Anything else, e.g. redirected output.
		r.Reporters = append(r.Reporters, &basic{out: os.Stdout})
	}

	return r, nil
}

type basic struct {
	out io.Writer
}

func (b *basic) Close() error {
	return nil
}

func (b *basic) EmitFinding(ctx context.Context, check string, level tutorial.Level, message, root, file string, s tutorial.Span) error {
	if file != "" {
		if s.Start.Line > 0 {
			_, err := fmt.Fprintf(b.out, "[%s/%s] %s(%d): %s\n", check, level, file, s.Start.Line, message)
			return err
		}
		_, err := fmt.Fprintf(b.out, "[%s/%s] %s: %s\n", check, level, file, message)
		return err
	}
	_, err := fmt.Fprintf(b.out, "[%s/%s] %s\n", check, level, message)
	return err
}

func (b *basic) CheckCompleted(ctx context.Context, check string, d time.Duration, level tutorial.Level, err error) {
	if err != nil {
		level = tutorial.Error
	}
	l := string(level)
	if level == "" || level == tutorial.Notice {
		l = "success"
	}
	if err != nil {
		fmt.Fprintf(b.out, "- %s (%s in %s): %s\n", check, l, d.Round(time.Millisecond), err)
	} else {
		fmt.Fprintf(b.out, "- %s (%s in %s)\n", check, l, d.Round(time.Millisecond))
	}
}

func (b *basic) Print(ctx context.Context, file string, line int, message string) {
	if file != "" {
		fmt.Fprintf(b.out, "[%s:%d] %s\n", file, line, message)
	} else {
		fmt.Fprintf(b.out, "%s\n", message)
	}
}

// github is the Report implementation when running inside a GitHub
// Actions workflow.
//
// See https://docs.github.com/en/actions/using-workflows/workflow-commands-for-github-actions
type github struct {
	out io.Writer
}

func (g *github) Close() error {
	return nil
}

func (g *github) EmitFinding(ctx context.Context, check string, level tutorial.Level, message, root, file string, s tutorial.Span) error {
	if file != "" {
		if s.Start.Line > 0 {
			_, err := fmt.Fprintf(g.out, "::%s ::file=%s,line=%d,title=%s::%s\n", level, file, s.Start.Line, check, message)
			return err
		}
		_, err := fmt.Fprintf(g.out, "::%s ::file=%s,title=%s::%s\n", level, file, check, message)
		return err
	}
	_, err := fmt.Fprintf(g.out, "::%s ::title=%s::%s\n", level, check, message)
	return err
}

func (g *github) CheckCompleted(ctx context.Context, check string, d time.Duration, l tutorial.Level, err error) {
}

func (g *github) Print(ctx context.Context, file string, line int, message string) {
	if file != "" {
		fmt.Fprintf(g.out, "::debug::[%s:%d] %s\n", file, line, message)
	} else {
		fmt.Fprintf(g.out, "::debug::%s\n", message)
	}
}

type interactive struct {
	out io.Writer
}

func (i *interactive) Close() error {
	return nil
}

func (i *interactive) EmitFinding(ctx context.Context, check string, level tutorial.Level, message, root, file string, s tutorial.Span) error {
	c := levelColor[level]
	if file != "" {
		if s.Start.Line > 0 {
			fmt.Fprintf(i.out, "%s[%s%s%s/%s%s%s] %s(%d): %s\n", reset, fgHiCyan, check, reset, c, level, reset, file, s.Start.Line, message)
			// Emit the offending line in interactive mode.
			b, err := os.ReadFile(filepath.Join(root, file))
			if err != nil {
				return err
			}
			lines := bytes.Split(b, []byte("\n"))
			if s.Start.Line > len(lines) {
				return nil
			}
			_, err = fmt.Fprintf(i.out, "\n  %s%s%s\n\n", c, lines[s.Start.Line-1], reset)
			return err
		}
		_, err := fmt.Fprintf(i.out, "%s[%s%s%s/%s%s%s] %s: %s\n", reset, fgHiCyan, check, reset, c, level, reset, file, message)
		return err
	}
	_, err := fmt.Fprintf(i.out, "%s[%s%s%s/%s%s%s] %s\n", reset, fgHiCyan, check, reset, c, level, reset, message)
	return err
}

func (i *interactive) CheckCompleted(ctx context.Context, check string, d time.Duration, level tutorial.Level, err error) {
	if err != nil {
		level = tutorial.Error
	}
	c := levelColor[level]
	l := string(level)
	if level == "" || level == tutorial.Notice {
		l = "success"
	}
	if err != nil {
		fmt.Fprintf(i.out, "%s- %s%s%s (%s in %s): %s\n", reset, c, check, reset, l, d.Round(time.Millisecond), err)
	} else {
		fmt.Fprintf(i.out, "%s- %s%s%s (%s in %s)\n", reset, c, check, reset, l, d.Round(time.Millisecond))
	}
}

func (i *interactive) Print(ctx context.Context, file string, line int, message string) {
	if file != "" {
		fmt.Fprintf(i.out, "%s[%s%s:%d%s] %s%s%s\n", reset, fgHiBlue, file, line, reset, bold, message, reset)
	} else {
		fmt.Fprintf(i.out, "%s%s%s%s\n", reset, bold, message, reset)
	}
}

var levelColor = map[tutorial.Level]ansiCode{
	tutorial.Notice:  fgGreen,
	tutorial.Warning: fgYellow,
	tutorial.Error:   fgRed,
}
