// Command hintc lowers surface type hints into display strings and
// runtime type constraints.
//
// Single-hint mode:
//
//	hintc -kind return -tparams T -skip-awaitable '?Awaitable<T>'
//
// Manifest mode:
//
//	hintc -manifest decls.yaml -o unit.yaml
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/hacklite/hintc/internal/bc"
	"github.com/hacklite/hintc/internal/config"
	"github.com/hacklite/hintc/internal/hintparse"
	"github.com/hacklite/hintc/internal/lower"
	"github.com/hacklite/hintc/internal/unit"
)

var (
	kindFlag      = flag.String("kind", "param", "usage kind: property, return, param, typedef, upper_bound")
	tparamsFlag   = flag.String("tparams", "", "comma-separated generic parameter names in scope")
	nullableFlag  = flag.Bool("nullable", false, "declaration site is nullable")
	skipAwaitable = flag.Bool("skip-awaitable", false, "unwrap one async-wrapper layer (return sites)")
	stripTypeArgs = flag.Bool("strip-type-args", false, "print the display string without type arguments")
	manifestFlag  = flag.String("manifest", "", "lower a YAML manifest of declarations")
	outFlag       = flag.String("o", "", "write the lowered unit to this file (manifest mode)")
	configFlag    = flag.String("config", "", "path to hintc.yaml options")
)

func main() {
	flag.Parse()

	opts, err := loadOptions()
	if err != nil {
		fail(err)
	}

	if *manifestFlag != "" {
		if err := runManifest(opts); err != nil {
			fail(err)
		}
		return
	}

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: hintc [flags] <hint>")
		flag.PrintDefaults()
		os.Exit(2)
	}
	if err := runSingle(opts, flag.Arg(0)); err != nil {
		fail(err)
	}
}

func loadOptions() (*config.Options, error) {
	if *configFlag == "" {
		return config.DefaultOptions(), nil
	}
	return config.Load(*configFlag)
}

func splitTParams(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func runSingle(opts *config.Options, hintText string) error {
	kind, err := lower.ParseKind(*kindFlag)
	if err != nil {
		return err
	}
	tparams := splitTParams(*tparamsFlag)

	h, err := hintparse.Parse(hintText, tparams, opts.Aliases)
	if err != nil {
		return err
	}

	tis, err := lower.HintToTypeInfoUnion(kind, *skipAwaitable, *nullableFlag, tparams, h)
	if err != nil {
		return err
	}

	display, err := lower.FormatHint(tparams, *stripTypeArgs, h)
	if err != nil {
		return err
	}
	fmt.Printf("display:    %s\n", colored(colorCyan, display))
	for _, ti := range tis {
		fmt.Printf("user type:  %s\n", colored(colorCyan, bc.Lookup(ti.UserType)))
		fmt.Printf("constraint: %s\n", describeConstraint(ti))
	}
	return nil
}

func describeConstraint(ti bc.TypeInfo) string {
	c := ti.Constraint
	name := "(no target)"
	if c.Name.Valid() {
		name = bc.Lookup(c.Name)
		if name == "" {
			name = "(empty)"
		}
		name = colored(colorGreen, name)
	}
	if c.Flags.Empty() {
		return name
	}
	return fmt.Sprintf("%s [%s]", name, colored(colorDim, c.Flags.String()))
}

func runManifest(opts *config.Options) error {
	m, err := config.LoadManifest(*manifestFlag)
	if err != nil {
		return err
	}

	u := unit.New()
	for _, d := range m.Decls {
		kind, err := lower.ParseKind(d.Kind)
		if err != nil {
			return err
		}
		h, err := hintparse.Parse(d.Hint, d.TParams, opts.Aliases)
		if err != nil {
			return fmt.Errorf("%s: %w", d.Name, err)
		}
		tis, err := lower.HintToTypeInfoUnion(kind, d.SkipAwaitable, d.Nullable, d.TParams, h)
		if err != nil {
			return fmt.Errorf("%s: %w", d.Name, err)
		}
		u.Add(d.Name, d.Kind, d.Hint, tis)
	}

	if *outFlag != "" {
		return u.WriteFile(*outFlag)
	}
	return u.Encode(os.Stdout)
}

const (
	colorCyan  = "\033[36m"
	colorGreen = "\033[32m"
	colorDim   = "\033[2m"
	colorReset = "\033[0m"
)

var stdoutIsTTY = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())

func colored(color, s string) string {
	if !stdoutIsTTY {
		return s
	}
	return color + s + colorReset
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "hintc: %v\n", err)
	os.Exit(1)
}
