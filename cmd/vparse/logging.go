package main

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

func getFormatter(format string) (logrus.Formatter, error) {
	switch format {
	case "text":
		return &logrus.TextFormatter{DisableTimestamp: true}, nil
	case "json":
		return &logrus.JSONFormatter{}, nil
	case "json-pretty":
		return &logrus.JSONFormatter{PrettyPrint: true}, nil
	}
	return nil, fmt.Errorf("invalid log format %q", format)
}

func setupLogging(logger *logrus.Logger, out io.Writer, level, format string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}

	formatter, err := getFormatter(format)
	if err != nil {
		return err
	}

	logger.SetLevel(lvl)
	logger.SetFormatter(formatter)
	logger.SetOutput(out)
	return nil
}
