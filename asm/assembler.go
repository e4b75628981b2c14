// Package asm drives a single input file through the full pipeline: macro
// pre-processing, first pass, second pass, and output emission. It turns
// the per-stage packages (asm/macro, asm/firstpass, asm/secondpass,
// object) into the one contract a caller needs: "assemble this file".
package asm

import (
	"bytes"
	"os"

	"github.com/pkg/errors"

	"github.com/oscasm/casm/asm/errlog"
	"github.com/oscasm/casm/asm/firstpass"
	"github.com/oscasm/casm/asm/macro"
	"github.com/oscasm/casm/asm/secondpass"
	"github.com/oscasm/casm/isa"
	"github.com/oscasm/casm/object"
)

// Report summarizes the outcome of assembling a single file.
type Report struct {
	Name       string
	Translated bool // true if the file produced output, i.e. no stage logged a diagnostic
}

// AssembleFile reads "<name>.as", runs it through the full pipeline, and
// on success writes "<name>.ob" and, where applicable, "<name>.ent" and
// "<name>.ext". It writes "<name>.am" once the pre-processor succeeds,
// per spec: downstream passes depend only on that intermediate file.
//
// errs is the process-wide diagnostic sink (spec §5: "the error sink is
// process-wide and append-only within a run"); AssembleFile appends to it
// rather than owning one of its own, so its 100-entry cap and final
// summary apply across every file a single invocation assembles, not per
// file. AssembleFile compares errs' length before and after each stage to
// decide whether *this* file stayed clean, since the sink may already
// hold diagnostics from files assembled earlier in the same run.
//
// AssembleFile returns an error only for failures at the OS boundary (the
// source could not be read, or an output file could not be written).
// Source-level problems are recorded in errs instead. Each stage scans the
// whole file so the sink collects every diagnostic of that stage, but a
// later stage runs only if the earlier ones logged nothing for this file,
// and no output beyond "<name>.am" is written otherwise.
func AssembleFile(name string, errs *errlog.Sink) (Report, error) {
	report := Report{Name: name}

	srcPath := name + ".as"
	src, err := os.ReadFile(srcPath)
	if err != nil {
		return report, errors.Wrapf(err, "unable to read %q", srcPath)
	}

	before := errs.Len()

	expanded, macros, ok := macro.Expand(bytes.NewReader(src), srcPath, errs)
	if !ok {
		return report, nil
	}

	amPath := name + ".am"
	if err := os.WriteFile(amPath, []byte(expanded), 0644); err != nil {
		return report, errors.Wrapf(err, "unable to write %q", amPath)
	}

	first := firstpass.Run(expanded, amPath, errs, macros)
	if errs.Len() != before {
		return report, nil
	}

	second := secondpass.Run(expanded, amPath, first.Symbols, errs)
	if errs.Len() != before {
		return report, nil
	}

	program := object.Program{
		Code:     second.Code,
		Data:     second.Data,
		DataBase: isa.FirstAddress + len(second.Code),
		Symbols:  first.Symbols,
	}

	if err := writeObject(name, program); err != nil {
		return report, err
	}

	report.Translated = true
	return report, nil
}

func writeObject(name string, p object.Program) error {
	obFile, err := os.Create(name + ".ob")
	if err != nil {
		return errors.Wrapf(err, "unable to create %q", name+".ob")
	}
	defer obFile.Close()
	if err := object.WriteObject(obFile, p); err != nil {
		return errors.Wrapf(err, "unable to write %q", name+".ob")
	}

	if p.Symbols.HasEntries() {
		entFile, err := os.Create(name + ".ent")
		if err != nil {
			return errors.Wrapf(err, "unable to create %q", name+".ent")
		}
		defer entFile.Close()
		if err := object.WriteEntries(entFile, p); err != nil {
			return errors.Wrapf(err, "unable to write %q", name+".ent")
		}
	}

	if object.HasExternalReferences(p.Symbols) {
		extFile, err := os.Create(name + ".ext")
		if err != nil {
			return errors.Wrapf(err, "unable to create %q", name+".ext")
		}
		defer extFile.Close()
		if err := object.WriteExternals(extFile, p); err != nil {
			return errors.Wrapf(err, "unable to write %q", name+".ext")
		}
	}

	return nil
}
