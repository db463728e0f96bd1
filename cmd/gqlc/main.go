// Command gqlc reads the schema and operation documents named by a
// project's config file, parses them, and writes the formatted or
// minified result to the configured output location.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"

	"github.com/pkg/errors"

	"github.com/semtexzv/graphql-parser/ast"
	"github.com/semtexzv/graphql-parser/config"
	"github.com/semtexzv/graphql-parser/format"
	"github.com/semtexzv/graphql-parser/fs"
	"github.com/semtexzv/graphql-parser/minify"
	"github.com/semtexzv/graphql-parser/parser"
	"github.com/semtexzv/graphql-parser/schema"
)

var buildVersion = "(devel)"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "init":
			if err := initConfig(); err != nil {
				fmt.Fprintln(os.Stderr, err.Error())
				os.Exit(1)
			}
			return
		case "version", "--version", "-v":
			if buildVersion == "(devel)" {
				if bi, ok := debug.ReadBuildInfo(); ok {
					buildVersion = bi.Main.Version
				}
			}
			fmt.Printf("gqlc %s\n", buildVersion)
			return
		}
	}

	startedAt := time.Now()
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
	fmt.Printf("Finished in %s\n", time.Since(startedAt))
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	schemaFiles, err := fs.CollectGraphQLFiles(cfg.Input.Schemas)
	if err != nil {
		return errors.Wrap(err, "failed to load schemas")
	}
	defer closeAll(schemaFiles)

	operationFiles, err := fs.CollectGraphQLFiles(cfg.Input.Operations)
	if err != nil {
		return errors.Wrap(err, "failed to load operations")
	}
	defer closeAll(operationFiles)

	if err := os.MkdirAll(cfg.Output.Location, 0o755); err != nil {
		return errors.Wrap(err, "failed to create output directory")
	}

	for _, f := range schemaFiles {
		if err := processSchema(cfg, f); err != nil {
			return errors.Wrapf(err, "failed to process schema %s", f.Name())
		}
	}
	for _, f := range operationFiles {
		if err := processOperations(cfg, f); err != nil {
			return errors.Wrapf(err, "failed to process operations %s", f.Name())
		}
	}
	return nil
}

func processSchema(cfg config.Config, f *os.File) error {
	src, err := io.ReadAll(f)
	if err != nil {
		return err
	}
	doc, parseErr := parser.ParseSchema[ast.Borrowed](string(src))
	if parseErr != nil {
		return parseErr
	}

	summary := schema.Collect(doc)
	fmt.Printf("schema %s: %s\n", f.Name(), summarizeCounts(summary))

	out := filepath.Join(cfg.Output.Location, outputName(f.Name()))
	return os.WriteFile(out, []byte(format.SchemaDocument(doc)), 0o644)
}

func processOperations(cfg config.Config, f *os.File) error {
	src, err := io.ReadAll(f)
	if err != nil {
		return err
	}

	out := filepath.Join(cfg.Output.Location, outputName(f.Name()))

	switch cfg.Output.Mode {
	case "minify":
		minified, parseErr := minify.Minify(string(src))
		if parseErr != nil {
			return parseErr
		}
		return os.WriteFile(out, []byte(minified), 0o644)
	default:
		doc, parseErr := parser.ParseQuery[ast.Borrowed](string(src))
		if parseErr != nil {
			return parseErr
		}
		return os.WriteFile(out, []byte(format.QueryDocument(doc)), 0o644)
	}
}

func summarizeCounts(s *schema.Schema) string {
	return fmt.Sprintf("%d type(s)", len(s.Types))
}

func outputName(inputPath string) string {
	base := filepath.Base(inputPath)
	ext := filepath.Ext(base)
	return base[:len(base)-len(ext)] + ".out" + ext
}

func closeAll(files []*os.File) {
	for _, f := range files {
		if f != nil {
			_ = f.Close()
		}
	}
}

func initConfig() error {
	ext := "yaml"
	if len(os.Args) > 2 {
		for _, arg := range os.Args[2:] {
			switch arg {
			case "json", "xml", "toml", "yaml", "yml":
				ext = arg
			case "help":
				fmt.Println("Usage: gqlc init [yaml|yml|toml|json|xml]")
				return nil
			default:
				return errors.Errorf("unsupported extension %s (supported: yaml|yml|toml|json|xml)", arg)
			}
		}
	}
	cfg := config.New()
	if err := cfg.SaveAs(ext); err != nil {
		return errors.Wrap(err, "failed to save config")
	}
	return nil
}
