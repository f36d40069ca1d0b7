package cli

import "github.com/spf13/pflag"

// ProcessFlags are the dsp process options, parsed before the command tokens.
type ProcessFlags struct {
	ConfigPath string
	EnvFile    string
	NoColor    bool
	NoPager    bool
	Pager      string
}

// Register binds the process flags to fs.
func (f *ProcessFlags) Register(fs *pflag.FlagSet) {
	fs.StringVar(&f.ConfigPath, "config", "", "Path to config.toml")
	fs.StringVar(&f.EnvFile, "env-file", "", "Load DSP_* variables from a dotenv file")
	fs.BoolVar(&f.NoColor, "no-color", false, "Disable colored output")
	fs.BoolVar(&f.NoPager, "no-pager", false, "Do not use pager for output")
	fs.StringVar(&f.Pager, "pager", "", "Use specified pager for this command")
}
