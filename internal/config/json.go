package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// string-friendly durations for file-based configuration.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey            string `json:"signing_key"`
		CookieSignKey           string `json:"cookie_signing_key"`
		TokenAlgorithm          string `json:"token_algorithm"`
		TokenIssuer             string `json:"token_issuer"`
		AccessTokenTTLMinutes   int    `json:"access_token_ttl_minutes"`
		CookieTTLDays           int    `json:"cookie_ttl_days"`
		Environment             string `json:"environment"`
		AllowGeneratedCookieKey bool   `json:"allow_generated_cookie_key"`
	} `json:"app,omitempty"`

	Translation struct {
		UseOffline bool     `json:"use_offline"`
		APIURL     string   `json:"api_url"`
		APIKey     string   `json:"api_key"`
		APIHost    string   `json:"api_host"`
		Timeout    Duration `json:"timeout"`
	} `json:"translation,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`
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
		App: App{
			TokenSignKey:            jsonCfg.App.TokenSignKey,
			CookieSignKey:           jsonCfg.App.CookieSignKey,
			TokenAlgorithm:          jsonCfg.App.TokenAlgorithm,
			TokenIssuer:             jsonCfg.App.TokenIssuer,
			AccessTokenTTLMinutes:   jsonCfg.App.AccessTokenTTLMinutes,
			CookieTTLDays:           jsonCfg.App.CookieTTLDays,
			Environment:             jsonCfg.App.Environment,
			AllowGeneratedCookieKey: jsonCfg.App.AllowGeneratedCookieKey,
		},
		Translation: Translation{
			UseOffline: jsonCfg.Translation.UseOffline,
			APIURL:     jsonCfg.Translation.APIURL,
			APIKey:     jsonCfg.Translation.APIKey,
			APIHost:    jsonCfg.Translation.APIHost,
			Timeout:    time.Duration(jsonCfg.Translation.Timeout),
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s".
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
