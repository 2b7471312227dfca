package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

type statusWriter struct {
	w     io.Writer
	color bool
}

func newStatusWriter() *statusWriter {
	fd := os.Stdout.Fd()
	return &statusWriter{
		w:     colorable.NewColorableStdout(),
		color: isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd),
	}
}

func (s *statusWriter) status(ok bool, name, detail string) {
	tag, code := "PASS", "32"
	if !ok {
		tag, code = "FAIL", "31"
	}
	if s.color {
		tag = "\x1b[" + code + "m" + tag + "\x1b[0m"
	}
	if detail != "" {
		fmt.Fprintf(s.w, "%s  %-40s %s\n", tag, name, detail)
		return
	}
	fmt.Fprintf(s.w, "%s  %s\n", tag, name)
}

func (s *statusWriter) note(msg string) {
	tag := "NOTE"
	if s.color {
		tag = "\x1b[33m" + tag + "\x1b[0m"
	}
	fmt.Fprintf(s.w, "%s    %s\n", tag, msg)
}
