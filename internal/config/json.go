package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	Controller struct {
		Host           string   `json:"host"`
		Username       string   `json:"username"`
		Password       string   `json:"password"`
		Site           string   `json:"site"`
		RequestTimeout Duration `json:"request_timeout"`
		VerifyTLS      bool     `json:"verify_tls"`
	} `json:"controller,omitempty"`

	App struct {
		FilterFile string `json:"filter_file"`
	} `json:"app,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Controller: Controller{
			Host:           jsonCfg.Controller.Host,
			Username:       jsonCfg.Controller.Username,
			Password:       jsonCfg.Controller.Password,
			Site:           jsonCfg.Controller.Site,
			RequestTimeout: time.Duration(jsonCfg.Controller.RequestTimeout),
			VerifyTLS:      jsonCfg.Controller.VerifyTLS,
		},
		App: App{
			FilterFile: jsonCfg.App.FilterFile,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
