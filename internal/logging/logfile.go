package logging

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Special values of LogConfig.Output.
const (
	OutputStderr = "-"
	OutputNone   = "none"
)

const (
	logFilePrefix = "patternctl-"
	logFileSuffix = ".log"
)

// LogConfig describes where and how patternctl writes its own log.
type LogConfig struct {
	Format        string // human, text or json (default)
	Level         string
	Output        string // path relative to Dir, "-" for stderr, "none"; empty picks a fresh file in Dir
	Dir           string
	RetentionDays int // 0 keeps every file
}

// LogFile is an opened log destination. Path is empty unless the log goes
// to a file.
type LogFile struct {
	Path string
	w    io.Writer
	c    io.Closer
}

func (lf *LogFile) Writer() io.Writer { return lf.w }

func (lf *LogFile) Close() error {
	if lf.c == nil {
		return nil
	}
	return lf.c.Close()
}

// Setup opens the destination named by cfg and returns a logger writing to
// it. File destinations also prune expired patternctl logs from cfg.Dir and
// start with a "command line" entry carrying args. The caller closes the
// returned LogFile.
func Setup(ctx context.Context, cfg *LogConfig, args []string) (Logger, *LogFile, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, err
	}
	now := time.Now()
	lf, err := openLogFile(cfg.Output, cfg.Dir, now)
	if err != nil {
		return nil, nil, err
	}
	l, err := NewWithWriter(cmp.Or(cfg.Format, "json"), level, lf.w)
	if err != nil {
		lf.Close()
		return nil, nil, err
	}
	if lf.Path == "" {
		return l, lf, nil
	}
	pruned, err := pruneLogFiles(cfg.Dir, cfg.RetentionDays, now)
	l.Info(ctx, "command line", "args", strings.Join(args, " "), "pruned", pruned)
	if err != nil {
		l.Warn(ctx, "log cleanup failed", "err", err)
	}
	return l, lf, nil
}

func openLogFile(output, dir string, now time.Time) (*LogFile, error) {
	var path string
	switch output = strings.TrimSpace(output); {
	case strings.EqualFold(output, OutputNone):
		return &LogFile{w: io.Discard}, nil
	case output == OutputStderr:
		return &LogFile{w: os.Stderr}, nil
	case output == "":
		path = filepath.Join(dir, logFileName(now))
	case filepath.IsAbs(output):
		path = output
	default:
		path = filepath.Join(dir, output)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return &LogFile{Path: path, w: f, c: f}, nil
}

// logFileName is patternctl-YYYYMMDD-HHMMSS-mmm.log in UTC.
func logFileName(t time.Time) string {
	t = t.UTC()
	return fmt.Sprintf("%s%s-%03d%s", logFilePrefix, t.Format("20060102-150405"),
		t.Nanosecond()/int(time.Millisecond), logFileSuffix)
}

// pruneLogFiles removes patternctl log files in dir last modified more than
// retentionDays before now and reports how many were removed.
func pruneLogFiles(dir string, retentionDays int, now time.Time) (int, error) {
	if retentionDays <= 0 || dir == "" {
		return 0, nil
	}
	matches, err := filepath.Glob(filepath.Join(dir, logFilePrefix+"*"+logFileSuffix))
	if err != nil {
		return 0, err
	}
	cutoff := now.AddDate(0, 0, -retentionDays)
	var (
		removed int
		errs    []error
	)
	for _, path := range matches {
		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() || !info.ModTime().Before(cutoff) {
			continue
		}
		if err := os.Remove(path); err != nil {
			errs = append(errs, err)
			continue
		}
		removed++
	}
	return removed, errors.Join(errs...)
}
