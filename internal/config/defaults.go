package config

import "time"

// Default values used when no other source sets a field.
const (
	DefaultHTTPAddress      = "127.0.0.1:8686"
	DefaultOrigin           = "http://localhost:3000"
	DefaultAPIPrefix        = "/api/"
	DefaultAppShellPath     = "/"
	DefaultNotificationPath = "/dashboard"
	DefaultAssetPartition   = "fieldwise-static-v1"
	DefaultDataPartition    = "fieldwise-data-v1"
	DefaultBackupPartition  = "fieldwise-backups"
	DefaultBackupRetention  = 5
	DefaultDSN              = "sentinel.db"
	DefaultHealthPath       = "/"
)

// DefaultShellManifest is the list of URLs required for minimal offline
// operation of the dashboard.
var DefaultShellManifest = []string{
	"/",
	"/login",
	"/dashboard",
	"/manifest.json",
	"/icons/icon-192.png",
	"/icons/icon-512.png",
}

// DefaultStaticExtensions lists the file extensions served cache-first.
var DefaultStaticExtensions = []string{
	".css", ".js", ".mjs", ".png", ".jpg", ".jpeg", ".gif", ".svg", ".webp", ".ico", ".woff", ".woff2",
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Origin:           DefaultOrigin,
			APIPrefix:        DefaultAPIPrefix,
			AppShellPath:     DefaultAppShellPath,
			NotificationPath: DefaultNotificationPath,
			LogLevel:         "info",
		},
		Cache: Cache{
			AssetPartition:   DefaultAssetPartition,
			DataPartition:    DefaultDataPartition,
			BackupPartition:  DefaultBackupPartition,
			ShellManifest:    append([]string(nil), DefaultShellManifest...),
			StaticExtensions: append([]string(nil), DefaultStaticExtensions...),
			BackupRetention:  DefaultBackupRetention,
		},
		Storage: Storage{
			DB: DB{DSN: DefaultDSN},
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: 30 * time.Second,
		},
		Adapter: Adapter{
			RequestTimeout: 15 * time.Second,
			HealthPath:     DefaultHealthPath,
		},
		Workers: Workers{
			SyncRetryAttempts: 3,
			SyncRetryBase:     5 * time.Second,
			BackupInterval:    time.Hour,
			ProbeInterval:     10 * time.Second,
		},
	}
}
