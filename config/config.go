package config
import (
	"os"

	"gopkg.in/yaml.v3"

	"pixelvault/util"
)

/*
 * Server configuration - where the local API listens.
 */
type ServerConfiguration struct {
	Address		string		`yaml:"address"`
}

/*
 * Default behaviour of the engine when a request does not say
 * otherwise, plus where recovered files are written.
 */
type SteganoConfig struct {
	Compress	bool		`yaml:"compress"`
	Random		bool		`yaml:"random_addressing"`
	OutputDir	string		`yaml:"output_dir"`
}

type Config struct {
	Server		ServerConfiguration	`yaml:"server"`
	Logger		util.LoggerInfo		`yaml:"logger"`
	Stegano		SteganoConfig		`yaml:"stegano"`
}

func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfiguration{
			Address: "127.0.0.1:8140",
		},
		Logger: util.LoggerInfo{
			Filename: "pixelvault.log",
			IsColored: true,
			SaveTime: true,
			Mode: util.Error | util.Warning | util.Info,
		},
		Stegano: SteganoConfig{
			Compress: false,
			Random: false,
			OutputDir: ".",
		},
	}
}

func LoadConfig( filename string ) (*Config, error) {
	data, err := os.ReadFile( filename )
	if err != nil {
		return nil, err
	}
	conf := &Config{}
	if err = yaml.Unmarshal( data, conf ); err != nil {
		return nil, err
	}
	return conf, nil
}

func SaveConfig( filename string, conf *Config ) error {
	data, err := yaml.Marshal( conf )
	if err != nil {
		return err
	}
	return os.WriteFile( filename, data, 0600 )
}
