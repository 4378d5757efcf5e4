package main

import (
	"flag"
	"fmt"
	"go/token"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/m4gshm/accessors/command"
	"github.com/m4gshm/accessors/generator"
	"github.com/m4gshm/accessors/logger"
	"github.com/m4gshm/accessors/model/util"
	"github.com/m4gshm/accessors/params"
)

func usage() {
	out := os.Stderr
	_, _ = fmt.Fprintf(out, "Usage of "+params.Name+":\n")
	_, _ = fmt.Fprintf(out, "\t"+params.Name+" [flags]\n")
	_, _ = fmt.Fprintf(out, "\t"+params.Name+" [flags] -type T command [command flags] [command [command flags]]...\n")
	_, _ = fmt.Fprintf(out, "Types can be marked by the doc comment directive:\n")
	_, _ = fmt.Fprintf(out, "\t"+params.DirectivePrefix+"command [command flags]\n")
	_, _ = fmt.Fprintf(out, "Flags:\n")
	flag.PrintDefaults()
	command.PrintUsage()
}

func main() {
	log.SetPrefix(params.Name + ": ")
	log.SetFlags(0)

	config := params.NewConfig(flag.CommandLine)
	flag.Usage = usage
	flag.Parse()

	logger.Init(*config.Debug)
	defer logger.Sync()

	if err := run(config, flag.Args()); err != nil {
		log.Fatal(err)
	}
}

func run(config *params.Config, args []string) error {
	fileSet := token.NewFileSet()
	pkg, err := util.ExtractPackage(fileSet, *config.BuildTags, *config.PackagePattern)
	if err != nil {
		return err
	}
	logger.Debugw("package loaded", "path", pkg.PkgPath, "files", pkg.GoFiles)

	targets, err := command.FindTargets(fileSet, pkg.Syntax, pkg.Types)
	if err != nil {
		return err
	}
	if typeName := *config.Type; len(typeName) > 0 {
		target, err := command.NewTarget(pkg.Types, typeName, args, *config.Derive)
		if err != nil {
			return err
		}
		if targets, err = command.MergeTargets(targets, target); err != nil {
			return err
		}
	} else if len(args) > 0 {
		return fmt.Errorf("commands %v require the -type flag", args)
	}
	if len(targets) == 0 {
		log.Printf("no types marked by %s in package %s", params.DirectivePrefix, pkg.PkgPath)
		return nil
	}

	outputName := *config.Output
	if !filepath.IsAbs(outputName) {
		dir, err := util.PackageDir(pkg)
		if err != nil {
			return err
		}
		outputName = filepath.Join(dir, outputName)
	}

	g := generator.New(params.Name, os.Args[1:], *config.OutBuildTag, pkg.Types)
	if err := command.Generate(g, fileSet, targets); err != nil {
		return err
	}
	if err := write(g, outputName); err != nil {
		return err
	}
	logger.Infof("Generated: %s %v", outputName, g.Funcs())
	return nil
}

// write formats the generated source and writes it; nothing is written if formatting fails.
func write(g *generator.Generator, outputName string) error {
	src, err := g.FormatSrc()
	if err != nil {
		return err
	}
	const userWriteOtherRead = fs.FileMode(0o644)
	if err := os.WriteFile(outputName, src, userWriteOtherRead); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}
