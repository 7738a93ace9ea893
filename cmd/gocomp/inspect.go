package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	json "github.com/goccy/go-json"
	"github.com/spf13/pflag"

	gocomp "github.com/reoring/gocomp"
	"github.com/reoring/gocomp/internal/format"
)

func listCmd(args []string) error {
	fs := pflag.NewFlagSet("list", pflag.ContinueOnError)
	configFlag := addConfigFlag(fs)
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	e, err := loadEnv(*configFlag)
	if err != nil {
		return err
	}
	reg := e.engine.Registry()
	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tPROPERTIES\tDESCRIPTION")
	for _, name := range reg.Names() {
		def, _ := reg.Lookup(name)
		fmt.Fprintf(tw, "%s\t%d\t%s\n", name, len(def.Schema.Properties), def.Schema.Description)
	}
	return tw.Flush()
}

func schemaCmd(args []string) error {
	fs := pflag.NewFlagSet("schema", pflag.ContinueOnError)
	configFlag := addConfigFlag(fs)
	colorFlag := addColorFlag(fs)
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	name, err := componentArg(fs)
	if err != nil {
		return err
	}
	color, err := useColor(*colorFlag, os.Stdout)
	if err != nil {
		return err
	}
	e, err := loadEnv(*configFlag)
	if err != nil {
		return err
	}
	def, ok := e.engine.Registry().Lookup(name)
	if !ok {
		return fmt.Errorf("%w: %q", gocomp.ErrUnknownComponent, name)
	}
	out, err := json.MarshalIndent(def.Schema.JSONSchema(name), "", "  ")
	if err != nil {
		return err
	}
	return writeJSON(os.Stdout, append(out, '\n'), color)
}

func renderCmd(args []string) error {
	fs := pflag.NewFlagSet("render", pflag.ContinueOnError)
	configFlag := addConfigFlag(fs)
	props := fs.String("props", "{}", "property bag as JSON or JSONC")
	nested := fs.Bool("nested", false, "split target paths into nested objects")
	colorFlag := addColorFlag(fs)
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	name, err := componentArg(fs)
	if err != nil {
		return err
	}
	color, err := useColor(*colorFlag, os.Stdout)
	if err != nil {
		return err
	}
	e, err := loadEnv(*configFlag)
	if err != nil {
		return err
	}
	bag, err := parseProps(*props)
	if err != nil {
		return err
	}
	doc := gocomp.NewDocument()
	if err := e.engine.Invoke(context.Background(), name, bag, doc); err != nil {
		printIssues(err)
		return err
	}
	indent := e.cfg.Indent
	if indent == "" {
		indent = "  "
	}
	out, err := doc.Encode(indent, *nested || e.cfg.Nested)
	if err != nil {
		return err
	}
	return writeJSON(os.Stdout, out, color)
}

func checkCmd(args []string) error {
	fs := pflag.NewFlagSet("check", pflag.ContinueOnError)
	configFlag := addConfigFlag(fs)
	props := fs.String("props", "{}", "property bag as JSON or JSONC")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	name, err := componentArg(fs)
	if err != nil {
		return err
	}
	e, err := loadEnv(*configFlag)
	if err != nil {
		return err
	}
	bag, err := parseProps(*props)
	if err != nil {
		return err
	}
	emissions, err := e.engine.Render(context.Background(), name, bag)
	if err != nil {
		printIssues(err)
		return err
	}
	fp, err := gocomp.Fingerprint(emissions)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "ok: %d emission(s), fingerprint %s\n", len(emissions), fp)
	return nil
}

func componentArg(fs *pflag.FlagSet) (string, error) {
	if fs.NArg() != 1 {
		return "", usageError{fs.Name() + ": expected exactly one component name"}
	}
	return fs.Arg(0), nil
}

func parseProps(s string) (gocomp.PropertyBag, error) {
	var bag gocomp.PropertyBag
	if err := format.Decode([]byte(s), format.JSONC, &bag); err != nil {
		return nil, fmt.Errorf("--props: %w", err)
	}
	if bag == nil {
		bag = gocomp.PropertyBag{}
	}
	return bag, nil
}

// printIssues lists schema violations one per line on stderr.
func printIssues(err error) {
	var sv *gocomp.SchemaViolationError
	if !errors.As(err, &sv) {
		return
	}
	for _, it := range sv.Issues {
		fmt.Fprintf(os.Stderr, "  %s\t%s\t%s\n", it.Path, it.Code, it.Message)
	}
}
