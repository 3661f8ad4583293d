package config

import (
	"time"

	"github.com/urfave/cli/v3"
)

const (
	StatusSourceBackend   = "backend"
	StatusSourceFirestore = "firestore"

	StorageDriverPresigned = "presigned"
	StorageDriverGCS       = "gcs"
)

type Config struct {
	App
	Backend
	Storage
	Poll
	PostgreSQL
	HTTP
	Firestore
}

type App struct {
	ReportsDirectory string
	MaxFileSize      int64
	MaxPDFPages      int
}

type Backend struct {
	URL          string
	Token        string
	Timeout      time.Duration
	StatusSource string
}

type Storage struct {
	Driver          string
	Bucket          string
	CredentialsFile string
}

type Poll struct {
	MaxAttempts int
	Interval    time.Duration
}

type PostgreSQL struct {
	Enabled  bool
	Host     string
	Port     string
	Username string
	Password string
	DBName   string
	SSLMode  string
	MaxConns int32
}

type HTTP struct {
	Host         string
	Port         string
	IdleTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type Firestore struct {
	ProjectID       string
	Collection      string
	CredentialsFile string
}

func Load(cmd *cli.Command) *Config {
	return &Config{
		App: App{
			ReportsDirectory: cmd.String("reports-dir"),
			MaxFileSize:      cmd.Int64("max-file-size"),
			MaxPDFPages:      cmd.Int("max-pdf-pages"),
		},
		Backend: Backend{
			URL:          cmd.String("backend-url"),
			Token:        cmd.String("backend-token"),
			Timeout:      cmd.Duration("backend-timeout"),
			StatusSource: cmd.String("status-source"),
		},
		Storage: Storage{
			Driver:          cmd.String("storage-driver"),
			Bucket:          cmd.String("storage-bucket"),
			CredentialsFile: cmd.String("gcp-credentials"),
		},
		Poll: Poll{
			MaxAttempts: cmd.Int("poll-max-attempts"),
			Interval:    cmd.Duration("poll-interval"),
		},
		PostgreSQL: PostgreSQL{
			Enabled:  cmd.Bool("journal"),
			Host:     cmd.String("pg-host"),
			Port:     cmd.String("pg-port"),
			Username: cmd.String("pg-username"),
			Password: cmd.String("pg-password"),
			DBName:   cmd.String("pg-dbname"),
			SSLMode:  cmd.String("pg-sslmode"),
			MaxConns: cmd.Int32("pg-max-conns"),
		},
		HTTP: HTTP{
			Host:         cmd.String("http-host"),
			Port:         cmd.String("http-port"),
			IdleTimeout:  cmd.Duration("http-idle-timeout"),
			ReadTimeout:  cmd.Duration("http-read-timeout"),
			WriteTimeout: cmd.Duration("http-write-timeout"),
		},
		Firestore: Firestore{
			ProjectID:       cmd.String("firestore-project"),
			Collection:      cmd.String("firestore-collection"),
			CredentialsFile: cmd.String("gcp-credentials"),
		},
	}
}
