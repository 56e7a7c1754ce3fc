package config

import (
	"bytes"
	stderrors "errors"
	"os"
	"strings"

	"github.com/arthur-debert/wsp/pkg/errors"
	toml "github.com/pelletier/go-toml/v2"
)

// GenerateConfigContent generates the configuration file content with commented values
func GenerateConfigContent() string {
	return commentOutConfigValues(GetDefaultsContent())
}

// commentOutConfigValues takes the TOML content and comments out all non-comment, non-blank lines
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	var result []string

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			result = append(result, line)
			continue
		}

		result = append(result, "# "+line)
	}

	return strings.Join(result, "\n")
}

// Render encodes the configuration as TOML.
func (c *Config) Render() (string, error) {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(c); err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to encode configuration")
	}
	return buf.String(), nil
}

// checkUserFile decodes a user file strictly so misspelled keys are reported
// instead of silently ignored.
func checkUserFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrConfigLoad, "failed to read config %s", path)
	}

	var probe Config
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&probe); err != nil {
		var strict *toml.StrictMissingError
		if stderrors.As(err, &strict) {
			return errors.Newf(errors.ErrConfigParse, "unknown keys in %s:\n%s", path, strict.String())
		}
		return errors.Wrapf(err, errors.ErrConfigParse, "invalid TOML in %s", path)
	}
	return nil
}
