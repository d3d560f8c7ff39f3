package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Dashboard struct {
		SettingsPath string `json:"settings_path"`
	} `json:"dashboard,omitempty"`

	GoHighLevel struct {
		BaseURL        string   `json:"base_url"`
		APIKey         string   `json:"api_key"`
		LocationID     string   `json:"location_id"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"gohighlevel,omitempty"`
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
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Dashboard: Dashboard{
			SettingsPath: jsonCfg.Dashboard.SettingsPath,
		},
		GoHighLevel: GoHighLevel{
			BaseURL:        jsonCfg.GoHighLevel.BaseURL,
			APIKey:         jsonCfg.GoHighLevel.APIKey,
			LocationID:     jsonCfg.GoHighLevel.LocationID,
			RequestTimeout: time.Duration(jsonCfg.GoHighLevel.RequestTimeout),
		},
		JSONFilePath: "",
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
