package main
import (
	"os"
	"fmt"

	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:	"pixelvault",
		Usage:	"hide encrypted payloads inside ordinary images",
		Commands: []*cli.Command{
			{
				Name:	"encode",
				Usage:	"hide a text message in a decoy image",
				Flags:	[]cli.Flag{ InFlag, OutFlag, MessageFlag, PasswordFlag, PromptFlag, CompressFlag, RandomFlag, SeedFlag },
				Action:	cmdEncode,
			},
			{
				Name:	"decode",
				Usage:	"recover a hidden text message",
				Flags:	[]cli.Flag{ InFlag, PasswordFlag, PromptFlag, RandomFlag, SeedFlag },
				Action:	cmdDecode,
			},
			{
				Name:	"encode-file",
				Usage:	"hide an arbitrary file in a decoy image",
				Flags:	[]cli.Flag{ InFlag, OutFlag, FileFlag, PasswordFlag, PromptFlag, CompressFlag, RandomFlag, SeedFlag, ShredFlag },
				Action:	cmdEncodeFile,
			},
			{
				Name:	"decode-file",
				Usage:	"recover a hidden file",
				Flags:	[]cli.Flag{ InFlag, OutDirFlag, PasswordFlag, PromptFlag, RandomFlag, SeedFlag },
				Action:	cmdDecodeFile,
			},
			{
				Name:	"capacity",
				Usage:	"report how much a carrier image can hold",
				Flags:	[]cli.Flag{ InFlag },
				Action:	cmdCapacity,
			},
			{
				Name:	"analyze",
				Usage:	"statistical look at a carrier's least significant bits",
				Flags:	[]cli.Flag{ InFlag },
				Action:	cmdAnalyze,
			},
			{
				Name:	"serve",
				Usage:	"run the local json api",
				Flags:	[]cli.Flag{ ConfigFlag },
				Action:	cmdServe,
			},
		},
	}

	if err := app.Run( os.Args ); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}
