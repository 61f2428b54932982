package logs

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Formatter writes one line per entry: time [level] file:line func message.
type Formatter struct{}

func (f *Formatter) Format(entry *log.Entry) ([]byte, error) {
	timestamp := entry.Time.Format("2006-01-02 15:04:05")
	level := strings.ToLower(entry.Level.String())

	caller := ""
	if entry.HasCaller() {
		funcName := entry.Caller.Function
		funcName = funcName[strings.LastIndex(funcName, ".")+1:]
		caller = fmt.Sprintf(" %s:%d %s", filepath.Base(entry.Caller.File), entry.Caller.Line, funcName)
	}

	var fields strings.Builder
	for key, value := range entry.Data {
		fields.WriteString(fmt.Sprintf(" %s=%v", key, value))
	}
	return []byte(fmt.Sprintf("%s [%s]%s %s%s\n", timestamp, level, caller, entry.Message, fields.String())), nil
}

// Setup configures the standard logrus logger.
func Setup(level string, out io.Writer) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return err
	}
	log.SetOutput(out)
	log.SetLevel(lvl)
	log.SetReportCaller(true)
	log.SetFormatter(&Formatter{})
	return nil
}
