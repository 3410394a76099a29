package cli

import (
	"fmt"
	"io"
)

func Help(program string, stdout io.Writer) {
	Version(stdout)
	fmt.Fprintf(stdout, "Usage: \"%s [-Options...] FileOrDirectory\"\n", program)
	fmt.Fprintln(stdout, "")
	fmt.Fprintln(stdout, "Extracts the recording date/time embedded in DV AVI footage and writes")
	fmt.Fprintln(stdout, "it as an SRT subtitle track next to each input file.")
	fmt.Fprintln(stdout, "")
	fmt.Fprintln(stdout, "Options:")
	fmt.Fprintln(stdout, "--Help, -h")
	fmt.Fprintln(stdout, "                    Display this help and exit")
	fmt.Fprintln(stdout, "--Version")
	fmt.Fprintln(stdout, "                    Display version information and exit")
	fmt.Fprintln(stdout, "--Debug, -d")
	fmt.Fprintln(stdout, "                    Dump container headers and per-frame decode traces")
	fmt.Fprintln(stdout, "--Min-Count=N")
	fmt.Fprintln(stdout, "                    Keep timecodes seen at least N times (default 3)")
	fmt.Fprintln(stdout, "--Config=PATH")
	fmt.Fprintln(stdout, "                    Read settings from the given YAML file")
}

func Usage(program string, stdout io.Writer) int {
	fmt.Fprintf(stdout, "Usage: \"%s [-Options...] FileOrDirectory\"\n", program)
	fmt.Fprintf(stdout, "\"%s --Help\" for displaying more information\n", program)
	return exitError
}
