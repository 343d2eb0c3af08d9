package seed

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/incidentdesk/incidentdesk/internal/shared/utils"
)

// User is one account listed in a seed file.
type User struct {
	DisplayName string `yaml:"display_name" validate:"required,max=100"`
	AccessCode  string `yaml:"access_code" validate:"required,accesscode"`
}

// File lists zones and users to create when they are missing.
type File struct {
	Zones []string `yaml:"zones" validate:"dive,required,max=100"`
	Users []User   `yaml:"users" validate:"dive"`
}

// Load reads and validates a seed file from disk.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	return Parse(bytes.NewReader(data))
}

// Parse decodes a seed document. Unknown keys are rejected.
func Parse(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return &f, nil
		}
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}

	if err := utils.ValidateStruct(&f); err != nil {
		return nil, err
	}
	return &f, nil
}
