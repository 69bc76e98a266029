package config

// SupportedVersion is the only build file version understood by the loader.
const SupportedVersion = "1"

// Buildfile represents the structure of the rebuild.yaml build file.
type Buildfile struct {
	Version string `yaml:"version"`

	// Compiler and CompilerArgs are the header-scan defaults for every target.
	Compiler     string   `yaml:"compiler"`
	CompilerArgs []string `yaml:"compilerArgs"`

	// Targets is a sequence so that declaration order survives decoding.
	Targets []TargetDTO `yaml:"targets"`
}

// TargetDTO represents a target declaration in the build file.
type TargetDTO struct {
	Output       string   `yaml:"output"`
	Depends      []string `yaml:"depends"`
	Cmd          string   `yaml:"cmd"`
	Headers      bool     `yaml:"headers"`
	Compiler     string   `yaml:"compiler"`
	CompilerArgs []string `yaml:"compilerArgs"`
}
