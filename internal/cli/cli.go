package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/dvarchive/dvsrt/internal/config"
	"github.com/dvarchive/dvsrt/internal/dvtime"
)

const (
	exitOK    = 0
	exitError = 1
)

type Options struct {
	Debug      bool
	MinCount   int
	ConfigPath string
}

func Run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		return exitError
	}

	program := programName(args[0])
	opts := Options{}
	paths := make([]string, 0)

	for i := 1; i < len(args); i++ {
		original := args[i]
		normalized := normalizeArg(original)

		switch {
		case normalized == "--debug" || normalized == "-d":
			opts.Debug = true
		case normalized == "--help" || normalized == "-h":
			Help(program, stdout)
			return exitOK
		case strings.HasPrefix(normalized, "--min-count="):
			value, ok := valueAfterEqual(original)
			if !ok {
				Help(program, stdout)
				return exitError
			}
			count, err := strconv.Atoi(value)
			if err != nil || count < 1 {
				fmt.Fprintf(stderr, "invalid --min-count value: %s\n", value)
				return exitError
			}
			opts.MinCount = count
		case strings.HasPrefix(normalized, "--config="):
			if value, ok := valueAfterEqual(original); ok {
				opts.ConfigPath = value
			}
		case normalized == "--version":
			Version(stdout)
			return exitOK
		case strings.HasPrefix(normalized, "-"):
			fmt.Fprintf(stderr, "unknown option: %s\n", original)
			return exitError
		default:
			paths = append(paths, original)
		}
	}

	if len(paths) != 1 {
		return Usage(program, stdout)
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintln(stderr, err.Error())
		return exitError
	}

	log := newLogger(stderr, opts.Debug || cfg.Debug)
	extract := dvtime.Options{MinCount: cfg.MinOccurrences, Log: log}
	if opts.MinCount > 0 {
		extract.MinCount = opts.MinCount
	}

	return processPath(paths[0], cfg, extract, stdout, stderr)
}

func loadConfig(opts Options) (*config.Config, error) {
	if opts.ConfigPath != "" {
		return config.Load(opts.ConfigPath)
	}
	return config.Load(defaultConfigPath())
}

func defaultConfigPath() string {
	exe, err := os.Executable()
	if err != nil {
		return "dvsrt.yaml"
	}
	return filepath.Join(filepath.Dir(exe), "dvsrt.yaml")
}

func newLogger(stderr io.Writer, debug bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(stderr)
	log.SetLevel(logrus.WarnLevel)
	if debug {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}

func processPath(path string, cfg *config.Config, extract dvtime.Options, stdout, stderr io.Writer) int {
	info, err := os.Stat(path)
	if err != nil {
		fmt.Fprintf(stderr, "invalid path: %s\n", path)
		return exitError
	}

	if info.IsDir() {
		return processDirectory(path, cfg, extract, stdout, stderr)
	}

	if !cfg.MatchesExtension(path) {
		fmt.Fprintf(stderr, "not a supported container file: %s\n", path)
		return exitError
	}
	if processFile(path, extract, stdout, stderr) {
		return exitOK
	}
	return exitError
}

func processDirectory(dir string, cfg *config.Config, extract dvtime.Options, stdout, stderr io.Writer) int {
	processed := 0
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			fmt.Fprintf(stderr, "skipping %s: %v\n", path, err)
			return nil
		}
		if d.IsDir() || !cfg.MatchesExtension(d.Name()) {
			return nil
		}
		if processFile(path, extract, stdout, stderr) {
			processed++
		}
		return nil
	})
	if err != nil {
		fmt.Fprintln(stderr, err.Error())
		return exitError
	}

	fmt.Fprintf(stdout, "All files processed (%d with timecodes).\n", processed)
	if processed > 0 {
		return exitOK
	}
	return exitError
}

// processFile handles one file end to end. Failures are reported and
// absorbed so a batch run keeps going; the return value only says whether
// this file produced a subtitle track.
func processFile(path string, extract dvtime.Options, stdout, stderr io.Writer) bool {
	fmt.Fprintf(stdout, "Processing file: %s\n", path)

	result, err := dvtime.ProcessFile(path, extract)
	switch {
	case errors.Is(err, dvtime.ErrNotAVI):
		fmt.Fprintf(stderr, "not an AVI file, skipping: %s\n", path)
		return false
	case errors.Is(err, dvtime.ErrNoTimecodes):
		fmt.Fprintf(stderr, "could not find timecodes in file: %s (cut or transcoded footage?)\n", path)
		return false
	case err != nil:
		fmt.Fprintf(stderr, "error processing %s: %v\n", path, err)
		return false
	}

	for _, tc := range result.Timeline {
		fmt.Fprintln(stdout, tc.String())
	}
	fmt.Fprintf(stdout, "Wrote %d timecodes to %s\n", len(result.Timeline), result.OutputPath)
	return true
}

func programName(arg0 string) string {
	name := filepath.Base(arg0)
	if runtime.GOOS == "windows" {
		ext := filepath.Ext(name)
		name = strings.TrimSuffix(name, ext)
	}
	return name
}

func normalizeArg(arg string) string {
	eq := strings.IndexByte(arg, '=')
	if eq == -1 {
		eq = len(arg)
	}

	lower := strings.ToLower(arg[:eq])
	return lower + arg[eq:]
}

func valueAfterEqual(arg string) (string, bool) {
	eq := strings.IndexByte(arg, '=')
	if eq == -1 {
		return "", false
	}
	return arg[eq+1:], true
}
