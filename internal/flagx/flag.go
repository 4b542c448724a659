// Package flagx lets several configuration layers share os.Args: each layer
// picks out the flags it owns and parses only those.
package flagx

import (
	"flag"
	"os"
	"strings"
)

// FilterArgs keeps the flags named in allowed, with their values, and
// drops everything else. Both "-f value" and "-f=value" forms are kept; a
// following token is taken as the value unless it starts with '-'.
func FilterArgs(args []string, allowed []string) []string {
	owned := make(map[string]bool, len(allowed))
	for _, f := range allowed {
		owned[f] = true
	}

	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]

		if name, _, found := strings.Cut(arg, "="); found && strings.HasPrefix(arg, "-") {
			if owned[name] {
				out = append(out, arg)
			}
			continue
		}

		if !owned[arg] {
			continue
		}
		out = append(out, arg)
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			i++
			out = append(out, args[i])
		}
	}
	return out
}

// JsonConfigFlags returns the config file path given with -c or -config,
// or "" when neither is present. The last occurrence wins.
func JsonConfigFlags() string {
	var path string

	fs := flag.NewFlagSet("json", flag.ContinueOnError)
	fs.StringVar(&path, "config", "", "path to config file")
	fs.StringVar(&path, "c", "", "path to config file (short)")
	_ = fs.Parse(FilterArgs(os.Args[1:], []string{"-c", "-config"}))

	return path
}
