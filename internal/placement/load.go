package placement

import (
	"encoding/json"
	"fmt"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// DateLayout is the layout used for arrival dates in dataset files.
const DateLayout = "2006-01-02"

// Load reads a dataset file (yaml, json or toml, picked by extension) and
// decodes it into a Dataset. The result is validated before it is returned.
func Load(path string) (*Dataset, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("dataset path is required")
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading dataset %q: %w", path, err)
	}

	ds, err := Decode(v.AllSettings())
	if err != nil {
		return nil, fmt.Errorf("decoding dataset %q: %w", path, err)
	}

	if err := ds.Validate(); err != nil {
		return nil, fmt.Errorf("invalid dataset %q: %w", path, err)
	}

	return ds, nil
}

// Decode converts a generic map (as produced by viper or a json decoder) into a Dataset.
func Decode(raw map[string]any) (*Dataset, error) {
	var ds Dataset

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			stringToDateHook,
			mapstructure.StringToSliceHookFunc(","),
		),
		WeaklyTypedInput: true,
		Result:           &ds,
	})
	if err != nil {
		return nil, err
	}

	if err := dec.Decode(raw); err != nil {
		return nil, err
	}

	return &ds, nil
}

// stringToDateHook accepts plain dates as well as RFC3339 timestamps.
func stringToDateHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to != reflect.TypeOf(time.Time{}) {
		return data, nil
	}

	s := strings.TrimSpace(data.(string))
	if s == "" {
		return time.Time{}, nil
	}

	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}

	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, fmt.Errorf("parsing date %q: expected %s or RFC3339", s, DateLayout)
	}
	return t, nil
}

// DumpToTmpFile writes the dataset as indented json into a temporary file and
// returns its name. The dump can be loaded back with Load. On failure the
// partial file is removed.
func (d *Dataset) DumpToTmpFile() (name string, err error) {
	file, err := os.CreateTemp("", "placement_*.json")
	if err != nil {
		return "", err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing dump file: %w", cerr)
		}
		if err != nil {
			os.Remove(file.Name())
			name = ""
		}
	}()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return "", fmt.Errorf("encoding dataset: %w", err)
	}
	return file.Name(), nil
}
