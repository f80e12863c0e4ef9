package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk JSON layout of the configuration.
type StructuredJSONConfig struct {
	App struct {
		Origin           string `json:"origin"`
		APIPrefix        string `json:"api_prefix"`
		AppShellPath     string `json:"shell_path"`
		NotificationPath string `json:"notification_path"`
		LogLevel         string `json:"log_level"`
	} `json:"app,omitempty"`

	Cache struct {
		AssetPartition   string   `json:"asset_partition"`
		DataPartition    string   `json:"data_partition"`
		BackupPartition  string   `json:"backup_partition"`
		ShellManifest    []string `json:"shell_manifest"`
		StaticExtensions []string `json:"static_extensions"`
		BackupRetention  int      `json:"backup_retention"`
	} `json:"cache,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		RequestTimeout Duration `json:"request_timeout"`
		HealthPath     string   `json:"health_path"`
		Token          string   `json:"token"`
	} `json:"adapter,omitempty"`

	Workers struct {
		DisableBackgroundSync bool     `json:"disable_background_sync"`
		AutoSync              bool     `json:"auto_sync"`
		SyncRetryAttempts     int      `json:"sync_retry_attempts"`
		SyncRetryBase         Duration `json:"sync_retry_base"`
		BackupInterval        Duration `json:"backup_interval"`
		ProbeInterval         Duration `json:"probe_interval"`
	} `json:"workers,omitempty"`
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
			Origin:           jsonCfg.App.Origin,
			APIPrefix:        jsonCfg.App.APIPrefix,
			AppShellPath:     jsonCfg.App.AppShellPath,
			NotificationPath: jsonCfg.App.NotificationPath,
			LogLevel:         jsonCfg.App.LogLevel,
		},
		Cache: Cache{
			AssetPartition:   jsonCfg.Cache.AssetPartition,
			DataPartition:    jsonCfg.Cache.DataPartition,
			BackupPartition:  jsonCfg.Cache.BackupPartition,
			ShellManifest:    jsonCfg.Cache.ShellManifest,
			StaticExtensions: jsonCfg.Cache.StaticExtensions,
			BackupRetention:  jsonCfg.Cache.BackupRetention,
		},
		Storage: Storage{
			DB: DB{DSN: jsonCfg.Storage.DB.DSN},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Adapter: Adapter{
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
			HealthPath:     jsonCfg.Adapter.HealthPath,
			Token:          jsonCfg.Adapter.Token,
		},
		Workers: Workers{
			DisableBackgroundSync: jsonCfg.Workers.DisableBackgroundSync,
			AutoSync:              jsonCfg.Workers.AutoSync,
			SyncRetryAttempts:     jsonCfg.Workers.SyncRetryAttempts,
			SyncRetryBase:         time.Duration(jsonCfg.Workers.SyncRetryBase),
			BackupInterval:        time.Duration(jsonCfg.Workers.BackupInterval),
			ProbeInterval:         time.Duration(jsonCfg.Workers.ProbeInterval),
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
