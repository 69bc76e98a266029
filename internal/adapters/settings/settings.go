// Package settings resolves tool settings from defaults, REBUILD_* environment
// variables and command-line flags.
package settings

import (
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.trai.ch/rebuild/internal/core/domain"
	"go.trai.ch/zerr"
)

// EnvPrefix is the prefix of environment variables read by Settings.
const EnvPrefix = "REBUILD"

// Setting keys. Environment variables are the upper-cased key with EnvPrefix,
// e.g. REBUILD_NO_WARNINGS.
const (
	KeyFile       = "file"
	KeyCompiler   = "compiler"
	KeyVerbose    = "verbose"
	KeyNoWarnings = "no_warnings"
	KeyProgress   = "progress"
	KeyJournal    = "journal"
)

// Default setting values.
const (
	DefaultFile     = "rebuild.yaml"
	DefaultCompiler = "g++"
	DefaultProgress = string(domain.ProgressRatio)
	DefaultJournal  = ".rebuild/journal.json"
)

// flagKeys maps command-line flag names to setting keys.
var flagKeys = map[string]string{ //nolint:gochecknoglobals // static lookup table
	"file":        KeyFile,
	"compiler":    KeyCompiler,
	"verbose":     KeyVerbose,
	"no-warnings": KeyNoWarnings,
	"progress":    KeyProgress,
}

// Settings exposes the resolved tool settings.
// Values are read on access, so flags bound after construction take effect.
type Settings struct {
	v *viper.Viper
}

// New creates Settings with defaults and environment lookup configured.
func New() *Settings {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	return &Settings{v: v}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyFile, DefaultFile)
	v.SetDefault(KeyCompiler, DefaultCompiler)
	v.SetDefault(KeyVerbose, false)
	v.SetDefault(KeyNoWarnings, false)
	v.SetDefault(KeyProgress, DefaultProgress)
	v.SetDefault(KeyJournal, DefaultJournal)
}

// BindFlags binds the known flags present in flags. Flags override the
// environment only when set on the command line.
func (s *Settings) BindFlags(flags *pflag.FlagSet) error {
	for name, key := range flagKeys {
		flag := flags.Lookup(name)
		if flag == nil {
			continue
		}
		if err := s.v.BindPFlag(key, flag); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to bind flag"), "flag", name)
		}
	}
	return nil
}

// Set overrides a setting.
func (s *Settings) Set(key string, value any) {
	s.v.Set(key, value)
}

// BuildFile returns the path of the build file.
func (s *Settings) BuildFile() string {
	return s.v.GetString(KeyFile)
}

// Compiler returns the default header-scan compiler.
func (s *Settings) Compiler() string {
	return s.v.GetString(KeyCompiler)
}

// Verbose reports whether auto-added dependencies are printed.
func (s *Settings) Verbose() bool {
	return s.v.GetBool(KeyVerbose)
}

// Warnings reports whether construction warnings are printed.
func (s *Settings) Warnings() bool {
	return !s.v.GetBool(KeyNoWarnings)
}

// ProgressMode returns the configured progress computation.
func (s *Settings) ProgressMode() (domain.ProgressMode, error) {
	raw := s.v.GetString(KeyProgress)
	mode, err := domain.ParseProgressMode(raw)
	if err != nil {
		return "", zerr.With(err, "progress", raw)
	}
	return mode, nil
}

// JournalPath returns the path of the build journal.
func (s *Settings) JournalPath() string {
	return s.v.GetString(KeyJournal)
}
