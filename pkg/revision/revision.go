package revision

import (
	"flag"
	"fmt"
	"runtime"
)

// Build information. Populated at build-time.
var commit = "no commit"
var tag = "no tag"

// runtimeVersion is the version of the Go compiler used.
var runtimeVersion = fmt.Sprintf("%s %s/%s", runtime.Version(), runtime.GOOS, runtime.GOARCH)

// Usage returns a function that prints what the binary does, the usage and
// the build information to the flag output.
func Usage(binname, summary string) func() {
	return func() {
		w := flag.CommandLine.Output()
		fmt.Fprintln(w, "Built on", runtimeVersion, "at", commit, "/", tag)
		if summary != "" {
			fmt.Fprintln(w, summary)
		}
		fmt.Fprintf(w, "Usage: %s [options]\n", binname)
		flag.PrintDefaults()
	}
}
