package main

import "github.com/urfave/cli/v2"

var (
	InFlag = &cli.StringFlag{
		Name:	"in",
		Aliases:	[]string{"i"},
		Usage:	"path to the decoy image (png, bmp, gif or jpeg)",
		Required:	true,
	}

	OutFlag = &cli.StringFlag{
		Name:	"out",
		Aliases:	[]string{"o"},
		Usage:	"path for the output image; generated when omitted",
	}

	MessageFlag = &cli.StringFlag{
		Name:	"message",
		Aliases:	[]string{"m"},
		Usage:	"text message to hide",
	}

	FileFlag = &cli.StringFlag{
		Name:	"file",
		Aliases:	[]string{"f"},
		Usage:	"path to the file to hide",
	}

	PasswordFlag = &cli.StringFlag{
		Name:	"password",
		Aliases:	[]string{"p"},
		Usage:	"enable encryption with this password",
		EnvVars:	[]string{"PIXELVAULT_PASSWORD"},
	}

	PromptFlag = &cli.BoolFlag{
		Name:	"prompt",
		Aliases:	[]string{"P"},
		Usage:	"read the password from the terminal instead of a flag",
	}

	CompressFlag = &cli.BoolFlag{
		Name:	"compress",
		Aliases:	[]string{"z"},
		Usage:	"compress the payload before hiding it",
	}

	RandomFlag = &cli.BoolFlag{
		Name:	"random",
		Aliases:	[]string{"r"},
		Usage:	"scatter the payload with seeded random addressing",
	}

	SeedFlag = &cli.Int64Flag{
		Name:	"seed",
		Aliases:	[]string{"s"},
		Usage:	"addressing seed; picked at random on encode when omitted",
	}

	ShredFlag = &cli.BoolFlag{
		Name:	"shred",
		Usage:	"overwrite and remove the original file after hiding it",
	}

	OutDirFlag = &cli.StringFlag{
		Name:	"outdir",
		Aliases:	[]string{"d"},
		Usage:	"directory for recovered files",
		Value:	".",
	}

	ConfigFlag = &cli.StringFlag{
		Name:	"config",
		Aliases:	[]string{"c"},
		Usage:	"path to the configuration file",
	}
)
