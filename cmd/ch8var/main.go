package main

import (
	"fmt"
	"os"

	"github.com/calclink/ch8var"
	"github.com/calclink/ch8var/calcs"
	"github.com/retroenv/retrogolib/log"
	"github.com/urfave/cli/v2"
)

func main() {
	app := cli.App{
		Name:      "ch8var",
		Usage:     "Package CHIP-8 ROMs as TI-68k calculator variable files",
		ArgsUsage: "ROM_FILE",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "calc",
				Aliases:  []string{"c"},
				Usage:    "target calculator `MODEL` (" + modelSlugs() + ")",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "var-name",
				Aliases: []string{"n"},
				Usage:   "on-calculator variable name, clipped to 8 characters (default: derived from ROM_FILE)",
			},
			&cli.StringFlag{
				Name:    "folder",
				Aliases: []string{"f"},
				Value:   ch8var.DefaultFolder,
				Usage:   "on-calculator folder, clipped to 8 characters",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "output `FILE` (default: ROM_FILE with the model's extension)",
			},
			&cli.BoolFlag{Name: "quiet", Aliases: []string{"q"}, Usage: "only log errors"},
			&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: "enable debug logging"},
		},
		Action: convertRom,
	}

	if err := app.Run(os.Args); err != nil {
		newLogger(false, false).Fatal(err.Error())
	}
}

func newLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

func modelSlugs() string {
	slugs := ""
	for i, model := range calcs.Models() {
		if i > 0 {
			slugs += ", "
		}
		slugs += model.Slug
	}
	return slugs
}

func convertRom(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return fmt.Errorf("expected exactly one ROM file argument, got %d", ctx.NArg())
	}
	inputPath := ctx.Args().First()

	logger := newLogger(ctx.Bool("debug"), ctx.Bool("quiet"))

	model, err := calcs.GetPredefinedModel(ctx.String("calc"))
	if err != nil {
		return err
	}

	opts := ch8var.Options{
		Model:   model,
		Folder:  ctx.String("folder"),
		VarName: ctx.String("var-name"),
	}
	outputPath := ctx.String("output")
	if outputPath == "" {
		outputPath = ch8var.OutputPath(inputPath, model)
	}

	logger.Debug("Converting ROM",
		log.String("input", inputPath),
		log.String("model", model.Slug))

	if err := ch8var.ConvertFile(inputPath, outputPath, opts); err != nil {
		return err
	}

	logger.Info("Wrote variable file",
		log.String("output", outputPath),
		log.String("calculator", model.Name))
	return nil
}
