package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Urethramancer/ippcode/stats"
	"github.com/grimdork/climate/arg"
)

var errCombination = errors.New("invalid combination of arguments")

type options struct {
	opt     *arg.Options
	help    bool
	opcodes bool
	verbose bool
	stats   stats.Request
}

func (o *options) wantStats() bool {
	return o.stats.Path != ""
}

// Long names of the options, keyed by short name.
var shortNames = map[string]string{
	"h": "help",
	"c": "comments",
	"l": "loc",
	"o": "opcodes",
	"v": "verbose",
}

// parseOptions reads the command line, args[0] being the program name.
func parseOptions(args []string) (*options, error) {
	o := &options{opt: arg.New("parse18")}
	err := o.opt.SetOption(arg.GroupDefault, "h", "help", "Print this help message.", false, false, arg.VarBool, nil)
	if err != nil {
		return nil, err
	}
	err = o.opt.SetOption(arg.GroupDefault, "", "stats", "File to write statistics to.", "", false, arg.VarString, nil)
	if err != nil {
		return nil, err
	}
	err = o.opt.SetOption(arg.GroupDefault, "c", "comments", "Write the number of comment lines to the statistics file.", false, false, arg.VarBool, nil)
	if err != nil {
		return nil, err
	}
	err = o.opt.SetOption(arg.GroupDefault, "l", "loc", "Write the number of instructions to the statistics file.", false, false, arg.VarBool, nil)
	if err != nil {
		return nil, err
	}
	err = o.opt.SetOption(arg.GroupDefault, "o", "opcodes", "List the instruction set and exit.", false, false, arg.VarBool, nil)
	if err != nil {
		return nil, err
	}
	err = o.opt.SetOption(arg.GroupDefault, "v", "verbose", "Log every instruction to stderr.", false, false, arg.VarBool, nil)
	if err != nil {
		return nil, err
	}

	if len(args) < 2 {
		return o, nil
	}

	// Parse blanks out the values it consumes, so the scan below only
	// sees option names.
	rest := args[1:]
	for _, a := range rest {
		if a == "-" {
			return nil, fmt.Errorf("unexpected argument %q", a)
		}
	}
	if err := o.opt.Parse(rest); err != nil {
		return nil, err
	}

	o.help = o.opt.GetBool("help")
	o.opcodes = o.opt.GetBool("opcodes")
	o.verbose = o.opt.GetBool("verbose")
	o.stats.Path = o.opt.GetString("stats")

	for _, a := range rest {
		if a != "" && !strings.HasPrefix(a, "-") {
			return nil, fmt.Errorf("unexpected argument %q", a)
		}
	}
	given := optionNames(rest)

	// Statistics are written in the order they were asked for.
	for _, name := range given {
		switch {
		case name == "comments" && o.opt.GetBool("comments"):
			o.stats.Add(stats.Comments)
		case name == "loc" && o.opt.GetBool("loc"):
			o.stats.Add(stats.Loc)
		}
	}

	if (o.help || o.opcodes) && len(given) > 1 {
		return nil, errCombination
	}
	if len(o.stats.Order) > 0 && !o.wantStats() {
		return nil, errors.New(`missing "--stats=FILE" argument`)
	}
	return o, nil
}

// optionNames lists the long name of every option on the command line in
// the order given. Clustered short options count one by one.
func optionNames(args []string) []string {
	var names []string
	for _, a := range args {
		switch {
		case strings.HasPrefix(a, "--"):
			name, _, _ := strings.Cut(a[2:], "=")
			names = append(names, name)
		case strings.HasPrefix(a, "-") && len(a) > 1:
			cluster, _, _ := strings.Cut(a[1:], "=")
			for _, c := range cluster {
				names = append(names, shortNames[string(c)])
			}
		}
	}
	return names
}
