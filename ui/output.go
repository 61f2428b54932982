package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

var warn = color.New(color.FgHiRed).SprintFunc()

type Output struct {
	writer io.Writer
}

func NewOutput(writer io.Writer) *Output {
	return &Output{writer: writer}
}

// Prompt writes without a trailing newline so the answer follows on the same line.
func (o *Output) Prompt(message string) {
	_, _ = fmt.Fprint(o.writer, message)
}

func (o *Output) Println(args ...interface{}) {
	_, _ = fmt.Fprintln(o.writer, args...)
}

func (o *Output) Printfln(format string, args ...interface{}) {
	o.Println(fmt.Sprintf(format, args...))
}

func (o *Output) Printlns(lines []string) {
	o.Println(strings.Join(lines, "\n"))
}

func (o *Output) Warnfln(format string, args ...interface{}) {
	o.Println(warn(fmt.Sprintf(format, args...)))
}
