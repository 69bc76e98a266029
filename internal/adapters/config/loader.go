// Package config provides the build file loader for rebuild.
package config

import (
	"fmt"
	"os"
	"strings"

	"go.trai.ch/rebuild/internal/core/domain"
	"go.trai.ch/rebuild/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads the build file at path and returns its target declarations in
// file order. Header-scan settings fall back to the file-level compiler and
// arguments; an empty compiler is left for the caller to default.
func (l *Loader) Load(path string) ([]domain.TargetSpec, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var buildfile Buildfile
	if err := yaml.Unmarshal(data, &buildfile); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	if buildfile.Version != "" && buildfile.Version != SupportedVersion {
		return nil, zerr.With(domain.ErrUnsupportedVersion, "version", buildfile.Version)
	}

	specs := make([]domain.TargetSpec, 0, len(buildfile.Targets))
	for i, dto := range buildfile.Targets {
		output := strings.TrimSpace(dto.Output)
		if output == "" {
			return nil, zerr.With(domain.ErrEmptyOutput, "index", i)
		}

		spec := domain.TargetSpec{
			Output:  output,
			Depends: dto.Depends,
			Command: dto.Cmd,
		}

		switch {
		case dto.Headers:
			spec.Headers = &domain.HeaderScan{
				Compiler: firstNonEmpty(dto.Compiler, buildfile.Compiler),
				Args:     dto.CompilerArgs,
			}
			if spec.Headers.Args == nil {
				spec.Headers.Args = buildfile.CompilerArgs
			}
		case dto.Compiler != "" || len(dto.CompilerArgs) > 0:
			l.logger.Warn(fmt.Sprintf("target %s: compiler settings are ignored without headers", output))
		}

		specs = append(specs, spec)
	}

	return specs, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
