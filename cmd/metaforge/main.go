package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/eidosian/metaforge/internal/docs"
	"github.com/eidosian/metaforge/internal/schema"
	"github.com/peterbourgon/ff/v3"
	"gopkg.in/yaml.v3"
)

var (
	// Version is the application version.
	// It is set at build time via -ldflags "-X main.Version=...".
	Version = "dev"
)

func main() {
	if len(os.Args) < 2 {
		// Default to "print"
		runPrint(os.Args[1:])
		return
	}

	switch os.Args[1] {
	case "print":
		runPrint(os.Args[2:])
	case "template":
		runTemplate(os.Args[2:])
	case "schema":
		runSchema(os.Args[2:])
	case "gen-docs":
		runGenDocs(os.Args[2:])
	case "version":
		fmt.Printf("metaforge %s\n", Version)
	default:
		// Also default to print if the argument looks like a flag
		if strings.HasPrefix(os.Args[1], "-") {
			runPrint(os.Args[1:])
			return
		}
		fmt.Fprintf(os.Stderr, "Unknown command %q. Available commands: print, template, schema, gen-docs, version\n", os.Args[1])
		os.Exit(1)
	}
}

// runPrint writes both template records to stdout: a labeled section for
// the example metadata record, then one for the meta-schema, one line
// per field.
func runPrint(args []string) {
	fs := flag.NewFlagSet("metaforge print", flag.ExitOnError)
	if err := ff.Parse(fs, args, ff.WithEnvVarPrefix("METAFORGE")); err != nil {
		fmt.Fprintf(os.Stderr, "Flag error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("=== Universal Eidosian Metadata Template ===")
	if err := schema.Print(schema.UniversalTemplate()); err != nil {
		log.Fatalf("Failed to print metadata template: %v", err)
	}
	fmt.Println("=== Eidosian Meta-Metadata Template ===")
	if err := schema.Print(schema.MetaSchema()); err != nil {
		log.Fatalf("Failed to print meta-schema: %v", err)
	}
}

// runTemplate emits an empty metadata record with every field present.
func runTemplate(args []string) {
	fs := flag.NewFlagSet("metaforge template", flag.ExitOnError)
	format := fs.String("format", "json", "Output format, one of \"json\" or \"yaml\"")
	output := fs.String("o", "-", "Output file path (use - for stdout)")
	if err := ff.Parse(fs, args, ff.WithEnvVarPrefix("METAFORGE")); err != nil {
		fmt.Fprintf(os.Stderr, "Flag error: %v\n", err)
		os.Exit(1)
	}

	bs, err := marshal(schema.NewTemplate(), *format)
	if err != nil {
		log.Fatalf("Failed to marshal template: %v", err)
	}
	if err := emit(bs, *output); err != nil {
		log.Fatalf("Failed to write template: %v", err)
	}
}

// runSchema emits the meta-schema record.
func runSchema(args []string) {
	fs := flag.NewFlagSet("metaforge schema", flag.ExitOnError)
	format := fs.String("format", "json", "Output format, one of \"json\" or \"yaml\"")
	output := fs.String("o", "-", "Output file path (use - for stdout)")
	if err := ff.Parse(fs, args, ff.WithEnvVarPrefix("METAFORGE")); err != nil {
		fmt.Fprintf(os.Stderr, "Flag error: %v\n", err)
		os.Exit(1)
	}

	bs, err := marshal(schema.MetaSchemaDefinition(), *format)
	if err != nil {
		log.Fatalf("Failed to marshal meta-schema: %v", err)
	}
	if err := emit(bs, *output); err != nil {
		log.Fatalf("Failed to write meta-schema: %v", err)
	}
}

// runGenDocs writes the schema reference documentation.
func runGenDocs(args []string) {
	fs := flag.NewFlagSet("metaforge gen-docs", flag.ExitOnError)
	outputDir := fs.String("out-dir", "docs", "Output directory for the documentation")
	if err := ff.Parse(fs, args, ff.WithEnvVarPrefix("METAFORGE")); err != nil {
		fmt.Fprintf(os.Stderr, "Flag error: %v\n", err)
		os.Exit(1)
	}

	gen := docs.NewGenerator(schema.MetaSchemaDefinition())
	if err := gen.Generate(*outputDir); err != nil {
		log.Fatalf("Failed to generate documentation: %v", err)
	}
	log.Printf("Documentation generated in %q", *outputDir)
}

func marshal(v any, format string) ([]byte, error) {
	switch format {
	case "json":
		bs, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(bs, '\n'), nil
	case "yaml":
		return yaml.Marshal(v)
	}
	return nil, fmt.Errorf("unsupported format %q (want json or yaml)", format)
}

func emit(bs []byte, output string) error {
	if output == "" || output == "-" {
		_, err := os.Stdout.Write(bs)
		return err
	}
	if err := os.WriteFile(output, bs, 0644); err != nil {
		return err
	}
	log.Printf("Written to %s", output)
	return nil
}
