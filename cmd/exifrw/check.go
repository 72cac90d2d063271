package main

import (
	"fmt"
	"math"

	log "github.com/dsoprea/go-logging"
	"github.com/hashicorp/go-multierror"

	"github.com/soypat/exifrw/internal/crosscheck"
)

var checkLogger = log.NewLogger("exifrw.check")

type checkParameters struct {
	Positional struct {
		Files []string `positional-arg-name:"FILE" required:"1"`
	} `positional-args:"yes"`
}

func (p *checkParameters) Execute(args []string) error {
	var result *multierror.Error
	for _, name := range p.Positional.Files {
		data, err := readFile(name)
		if err != nil {
			result = multierror.Append(result, err)
			continue
		}
		report, err := crosscheck.Check(data)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("%s: %w", name, err))
			continue
		}
		for _, u := range report.Unmatched {
			checkLogger.Debugf(nil, "%s: unmatched %s", name, u)
		}
		status := "ok"
		if err := report.Err(); err != nil {
			status = "MISMATCH"
			result = multierror.Append(result, fmt.Errorf("%s: %w", name, err))
		}
		fmt.Fprintf(stdout, "%s: %s (%d entries, goexif %d, dsoprea %d", name, status,
			report.Entries, report.Compared["goexif"], report.Compared["dsoprea"])
		if !math.IsNaN(report.GPSDistance) {
			fmt.Fprintf(stdout, ", GPS within %.2f m", report.GPSDistance)
		}
		fmt.Fprintln(stdout, ")")
	}
	return result.ErrorOrNil()
}
