package main
import (
	"os"
	"fmt"
	"path/filepath"
	"encoding/json"

	"github.com/urfave/cli/v2"

	"pixelvault/util"
	"pixelvault/local"
	"pixelvault/config"
	"pixelvault/stegano"
	"pixelvault/stegano/img"
)

const (
	PixelVaultFolder = ".pixelvault"
	ConfigFilename = "config.yaml"
)

func passwordFrom( c *cli.Context ) (string, error) {
	if c.Bool("prompt") {
		pw, err := util.GetPasswd("Password: ")
		if err != nil {
			return "", err
		}
		return string(pw), nil
	}
	return c.String("password"), nil
}

func optionsFrom( c *cli.Context, filename string ) (stegano.Options, error) {
	password, err := passwordFrom( c )
	if err != nil {
		return stegano.Options{}, err
	}
	mode := stegano.Sequential
	seed := int64(0)
	if c.Bool("random") || c.Int64("seed") != 0 {
		mode = stegano.Random
		seed = c.Int64("seed")
	}
	return stegano.Options{
		Password: password,
		Compress: c.Bool("compress"),
		Addressing: mode,
		Seed: seed,
		Filename: filename,
	}, nil
}

// derive the output path from the stego bytes themselves: raster
// carriers may change container (gif comes back as png), jpeg stays
// jpeg.
func outputPath( c *cli.Context, stego []byte ) string {
	out := c.String("out")
	if out != "" {
		return out
	}
	return util.GenFilename( "stego_", img.Sniff( stego ).String() )
}

func printJson( v any ) error {
	data, err := json.MarshalIndent( v, "", "  " )
	if err != nil {
		return err
	}
	fmt.Println( string(data) )
	return nil
}

func runHide( c *cli.Context, payload []byte, filename string ) error {
	decoy, err := os.ReadFile( c.String("in") )
	if err != nil {
		return fmt.Errorf("%w: %v", stegano.ErrCarrierNotFound, err)
	}
	opts, err := optionsFrom( c, filename )
	if err != nil {
		return err
	}
	stego, md, err := img.Hide( decoy, payload, opts )
	if err != nil {
		return err
	}
	out := outputPath( c, stego )
	if err = os.WriteFile( out, stego, 0660 ); err != nil {
		return fmt.Errorf("%w: %v", stegano.ErrFileWriteError, err)
	}
	fmt.Println("Written to", out)
	return printJson( md )
}

func cmdEncode( c *cli.Context ) error {
	message := util.FixUnicode( c.String("message") )
	if message == "" {
		return fmt.Errorf("nothing to hide, pass a --message")
	}
	return runHide( c, []byte(message), "" )
}

func cmdEncodeFile( c *cli.Context ) error {
	path := c.String("file")
	if path == "" {
		return fmt.Errorf("nothing to hide, pass a --file")
	}
	payload, err := os.ReadFile( path )
	if err != nil {
		return err
	}
	if err = runHide( c, payload, filepath.Base( path ) ); err != nil {
		return err
	}
	if c.Bool("shred") {
		if err = util.ShredFile( path ); err != nil {
			return err
		}
		return os.Remove( path )
	}
	return nil
}

func runReveal( c *cli.Context ) ([]byte, *stegano.Metadata, error) {
	stego, err := os.ReadFile( c.String("in") )
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", stegano.ErrCarrierNotFound, err)
	}
	opts, err := optionsFrom( c, "" )
	if err != nil {
		return nil, nil, err
	}
	return img.Reveal( stego, opts )
}

func cmdDecode( c *cli.Context ) error {
	payload, md, err := runReveal( c )
	if err != nil {
		return err
	}
	fmt.Println( string(payload) )
	return printJson( md )
}

func cmdDecodeFile( c *cli.Context ) error {
	payload, md, err := runReveal( c )
	if err != nil {
		return err
	}
	filename := md.Filename
	if filename == "" {
		filename = util.GenFilename( "recovered_", "bin" )
	}
	out := filepath.Join( c.String("outdir"), filename )
	if err = os.WriteFile( out, payload, 0660 ); err != nil {
		return fmt.Errorf("%w: %v", stegano.ErrFileWriteError, err)
	}
	fmt.Println("Recovered", out)
	return printJson( md )
}

func cmdCapacity( c *cli.Context ) error {
	decoy, err := os.ReadFile( c.String("in") )
	if err != nil {
		return fmt.Errorf("%w: %v", stegano.ErrCarrierNotFound, err)
	}
	capacity, err := img.Capacity( decoy )
	if err != nil {
		return err
	}
	return printJson( capacity )
}

func cmdAnalyze( c *cli.Context ) error {
	decoy, err := os.ReadFile( c.String("in") )
	if err != nil {
		return fmt.Errorf("%w: %v", stegano.ErrCarrierNotFound, err)
	}
	analysis, err := img.Analyze( decoy )
	if err != nil {
		return err
	}
	return printJson( analysis )
}

func cmdServe( c *cli.Context ) error {
	configFile := c.String("config")
	if configFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		folder := filepath.Join( home, PixelVaultFolder )
		if _, err = os.Stat( folder ); err != nil {
			if err = os.Mkdir( folder, 0700 ); err != nil {
				return err
			}
		}
		configFile = filepath.Join( folder, ConfigFilename )
	}

	conf, err := config.LoadConfig( configFile )
	if err != nil {
		// first run, write the defaults so the user has something
		// to edit
		conf = config.DefaultConfig()
		if err = config.SaveConfig( configFile, conf ); err != nil {
			return err
		}
	}

	logger := util.NewLogger( &conf.Logger )
	logger.LogInfo("starting api server at " + conf.Server.Address)
	return local.RunApiServer( conf, logger )
}
