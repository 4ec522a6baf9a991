////////////////////////////////////////////////////////////////////////////////////////////////////

package cmd

////////////////////////////////////////////////////////////////////////////////////////////////////

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/DanielRivasMD/domovoi"
	"github.com/DanielRivasMD/horus"
	"github.com/spf13/viper"
)

////////////////////////////////////////////////////////////////////////////////////////////////////

const (
	keyAuthor     = "author"
	keyTabSize    = "tab_size"
	keyTitleWidth = "title.width"
	keyTitleFill  = "title.fill"
	keyFont       = "font"
)

const (
	defaultTabSize    = 4
	defaultTitleWidth = 110
	defaultTitleFill  = "-"
)

// settings is the resolved configuration a command runs with
type settings struct {
	author     string
	tabSize    int
	titleWidth int
	titleFill  string
	font       string
}

////////////////////////////////////////////////////////////////////////////////////////////////////

func defaultConfigDir() string {
	home, err := domovoi.FindHome(false)
	horus.CheckErr(err, horus.WithCategory("init_error"), horus.WithMessage("getting home directory"))
	return filepath.Join(home, ".scribe")
}

func setConfigDefaults(v *viper.Viper) {
	v.SetDefault(keyAuthor, "")
	v.SetDefault(keyTabSize, defaultTabSize)
	v.SetDefault(keyTitleWidth, defaultTitleWidth)
	v.SetDefault(keyTitleFill, defaultTitleFill)
	v.SetDefault(keyFont, "")
}

// initConfig reads ~/.scribe/config.toml (or --config) and SCRIBE_* variables.
// a missing default file is not an error
func initConfig() {
	v := viper.GetViper()
	setConfigDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(defaultConfigDir())
		v.SetConfigName("config")
		v.SetConfigType("toml")
	}

	v.SetEnvPrefix("scribe")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			diagnose("no config file found, using defaults")
			return
		}
		horus.CheckErr(
			err,
			horus.WithOp("config.load"),
			horus.WithMessage("reading config"),
			horus.WithExitCode(2),
			horus.WithFormatter(func(he *horus.Herror) string { return onelineErr(he.Message) }),
		)
	}
	diagnose("config loaded from %s", v.ConfigFileUsed())
}

func loadSettings(v *viper.Viper) settings {
	s := settings{
		author:     v.GetString(keyAuthor),
		tabSize:    v.GetInt(keyTabSize),
		titleWidth: v.GetInt(keyTitleWidth),
		titleFill:  v.GetString(keyTitleFill),
		font:       v.GetString(keyFont),
	}
	if s.tabSize < 0 {
		s.tabSize = 0
	}
	if s.titleFill == "" {
		s.titleFill = defaultTitleFill
	}
	return s
}

func currentSettings() settings {
	return loadSettings(viper.GetViper())
}

////////////////////////////////////////////////////////////////////////////////////////////////////
