package logger

import (
	"io"
	"log"
	"os"
	"strings"
)

var (
	Info    = log.New(os.Stdout, "INFO: ", log.Ldate|log.Ltime)
	Warning = log.New(os.Stdout, "WARNING: ", log.Ldate|log.Ltime)
	Error   = log.New(os.Stderr, "ERROR: ", log.Ldate|log.Ltime)
	Debug   = log.New(io.Discard, "DEBUG: ", log.Ldate|log.Ltime)
	HTTP    = log.New(os.Stdout, "HTTP: ", log.Ldate|log.Ltime)
)

// Setup configures the package loggers. LOG_LEVEL=debug enables Debug output.
func Setup() {
	flags := log.Ldate | log.Ltime | log.Lshortfile

	Info.SetFlags(flags)
	Warning.SetFlags(flags)
	Error.SetFlags(flags)
	HTTP.SetFlags(log.Ldate | log.Ltime)

	Debug.SetFlags(flags)
	if strings.EqualFold(os.Getenv("LOG_LEVEL"), "debug") {
		Debug.SetOutput(os.Stdout)
	} else {
		Debug.SetOutput(io.Discard)
	}
}

// SetOutput redirects every logger to w.
func SetOutput(w io.Writer) {
	for _, l := range []*log.Logger{Info, Warning, Error, Debug, HTTP} {
		l.SetOutput(w)
	}
}
