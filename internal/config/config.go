package config

import "time"

// Config is the root application configuration.
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Storage  StorageConfig  `yaml:"storage"`
	Realtime RealtimeConfig `yaml:"realtime"`
	Log      LogConfig      `yaml:"log"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// StorageConfig holds blob store settings.
type StorageConfig struct {
	UploadDir    string `yaml:"upload_dir"     env:"STORAGE_UPLOAD_DIR"     env-default:"./uploads"`
	MaxFileSize  int64  `yaml:"max_file_size"  env:"STORAGE_MAX_FILE_SIZE"  env-default:"104857600"`
	MaxGroupSize int64  `yaml:"max_group_size" env:"STORAGE_MAX_GROUP_SIZE" env-default:"0"`
}

// RealtimeConfig holds in-process realtime channel settings.
type RealtimeConfig struct {
	SubscriberBuffer int `yaml:"subscriber_buffer" env:"REALTIME_SUBSCRIBER_BUFFER" env-default:"64"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
