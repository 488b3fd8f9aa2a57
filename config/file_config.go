// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package config

import (
	"encoding/json"
	"github.com/pkg/errors"
	"io/ioutil"
	"os"
	"strings"
	"time"
)

func modifyFromJson(cfg mutableNodeConfig, source string) error {
	var data map[string]interface{}
	if err := json.Unmarshal([]byte(source), &data); err != nil {
		return errors.Wrap(err, "config is not valid json")
	}

	return populateConfig(cfg, data)
}

func convertKeyName(key string) string {
	return strings.ToUpper(strings.Replace(key, "-", "_", -1))
}

func populateConfig(cfg mutableNodeConfig, data map[string]interface{}) error {
	for key, value := range data {
		switch v := value.(type) {
		case bool:
			cfg.SetBool(convertKeyName(key), v)
		case float64:
			if v < 0 || v != float64(uint64(v)) {
				return errors.Errorf("could not decode value for config key %s: %v is not a non-negative integer", key, v)
			}
			cfg.SetUint64(convertKeyName(key), uint64(v))
		case string:
			if duration, decodeError := time.ParseDuration(v); decodeError != nil {
				cfg.SetString(convertKeyName(key), v)
			} else {
				cfg.SetDuration(convertKeyName(key), duration)
			}
		case []interface{}:
			items := make([]string, 0, len(v))
			for _, item := range v {
				s, ok := item.(string)
				if !ok {
					return errors.Errorf("could not decode value for config key %s: list items must be strings", key)
				}
				items = append(items, s)
			}
			cfg.SetString(convertKeyName(key), strings.Join(items, ","))
		default:
			return errors.Errorf("could not decode value for config key %s: unsupported type %T", key, value)
		}
	}

	return nil
}

// For main reading several files into one config

type FilesPaths []string

func (i *FilesPaths) String() string {
	return strings.Join(*i, ",")
}

func (i *FilesPaths) Set(value string) error {
	*i = append(*i, value)
	return nil
}

// GetNodeConfigFromFiles merges the files in order over the production defaults. A non-empty httpAddress wins over the files.
func GetNodeConfigFromFiles(configFiles FilesPaths, httpAddress string) (NodeConfig, error) {
	cfg := ForProduction("")

	for _, configFile := range configFiles {
		if _, err := os.Stat(configFile); os.IsNotExist(err) {
			return nil, errors.Errorf("could not open config file: %s", err)
		}

		contents, err := ioutil.ReadFile(configFile)
		if err != nil {
			return nil, errors.Wrapf(err, "could not read config file %s", configFile)
		}

		if err := modifyFromJson(cfg, string(contents)); err != nil {
			return nil, errors.Wrapf(err, "could not apply config file %s", configFile)
		}
	}

	if httpAddress != "" {
		cfg.SetString(HTTP_ADDRESS, httpAddress)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
