package asm

import (
	"fmt"
	"io"

	"github.com/oscasm/casm/asm/errlog"
)

// Build assembles every named file in turn and writes a single combined
// error summary to w afterward. Processing continues after a per-file
// failure (§7: "continue after error"), so one bad file never hides
// diagnostics from the rest.
//
// All files share one errlog.Sink (§5: "the error sink is process-wide
// and append-only within a run"), so its 100-entry cap and the final
// Summary cover the whole invocation rather than resetting per file.
//
// The returned exit code mirrors spec §6: 0 if at least one file was
// inputted (even if it failed to translate), 1 if names is empty.
func Build(w io.Writer, names []string) int {
	if len(names) == 0 {
		fmt.Fprintln(w, "no input files")
		return 1
	}

	errs := errlog.New()

	for _, name := range names {
		report, err := AssembleFile(name, errs)
		if err != nil {
			fmt.Fprintf(w, "%s: %s\n", name, err)
			continue
		}
		if !report.Translated {
			fmt.Fprintf(w, "%s: translation failed\n", name)
		}
	}

	errs.Summary(w)

	return 0
}
