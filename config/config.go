package config

import (
	"os"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

// SysConfig holds process-wide settings
type SysConfig struct {
	Appid    string `yaml:"appid" json:"appid"`
	Location string `yaml:"location" json:"location"`
	Workdir  string `yaml:"workdir" json:"workdir"`
	Debug    bool   `yaml:"debug" json:"debug"`
}

type WebConfig struct {
	Host      string `yaml:"host" json:"host"`
	Port      int    `yaml:"port" json:"port"`
	UploadDir string `yaml:"upload_dir" json:"upload_dir"`
}

type DBConfig struct {
	Type   string `yaml:"type" json:"type"`
	Host   string `yaml:"host" json:"host"`
	Port   int    `yaml:"port" json:"port"`
	Name   string `yaml:"name" json:"name"`
	User   string `yaml:"user" json:"user"`
	Passwd string `yaml:"passwd" json:"passwd"`
	Debug  bool   `yaml:"debug" json:"debug"`
}

type LogConfig struct {
	Mode       string `yaml:"mode" json:"mode"`
	FileEnable bool   `yaml:"file_enable" json:"file_enable"`
	Filename   string `yaml:"filename" json:"filename"`
}

type AppConfig struct {
	System   SysConfig `yaml:"system" json:"system"`
	Web      WebConfig `yaml:"web" json:"web"`
	Database DBConfig  `yaml:"database" json:"database"`
	Logger   LogConfig `yaml:"logger" json:"logger"`
}

var DefaultAppConfig = AppConfig{
	System: SysConfig{
		Appid:    "Catalog",
		Location: "Asia/Jakarta",
		Workdir:  "/var/catalog",
		Debug:    true,
	},
	Web: WebConfig{
		Host:      "0.0.0.0",
		Port:      5000,
		UploadDir: "uploads",
	},
	Database: DBConfig{
		Type:   "postgres",
		Host:   "127.0.0.1",
		Port:   5432,
		Name:   "catalog",
		User:   "postgres",
		Passwd: "",
		Debug:  false,
	},
	Logger: LogConfig{
		Mode:       "development",
		FileEnable: false,
		Filename:   "/var/catalog/catalog.log",
	},
}

func setEnvValue(name string, f func(v string)) {
	if v, ok := os.LookupEnv(name); ok && v != "" {
		f(v)
	}
}

// LoadConfig reads the YAML config file when it exists and applies
// environment overrides on top of the defaults.
func LoadConfig(cfile string) *AppConfig {
	cfg := DefaultAppConfig
	if cfile != "" {
		if data, err := os.ReadFile(cfile); err == nil {
			_ = yaml.Unmarshal(data, &cfg)
		}
	}

	setEnvValue("CATALOG_SYSTEM_WORKDIR", func(v string) { cfg.System.Workdir = v })
	setEnvValue("CATALOG_SYSTEM_DEBUG", func(v string) { cfg.System.Debug = cast.ToBool(v) })
	setEnvValue("CATALOG_WEB_HOST", func(v string) { cfg.Web.Host = v })
	setEnvValue("CATALOG_WEB_PORT", func(v string) { cfg.Web.Port = cast.ToInt(v) })
	setEnvValue("CATALOG_WEB_UPLOAD_DIR", func(v string) { cfg.Web.UploadDir = v })
	setEnvValue("CATALOG_DB_TYPE", func(v string) { cfg.Database.Type = v })
	setEnvValue("CATALOG_DB_HOST", func(v string) { cfg.Database.Host = v })
	setEnvValue("CATALOG_DB_PORT", func(v string) { cfg.Database.Port = cast.ToInt(v) })
	setEnvValue("CATALOG_DB_NAME", func(v string) { cfg.Database.Name = v })
	setEnvValue("CATALOG_DB_USER", func(v string) { cfg.Database.User = v })
	setEnvValue("CATALOG_DB_PWD", func(v string) { cfg.Database.Passwd = v })
	setEnvValue("CATALOG_LOGGER_MODE", func(v string) { cfg.Logger.Mode = v })

	// PORT is honoured for platform compatibility and wins over the file value.
	setEnvValue("PORT", func(v string) { cfg.Web.Port = cast.ToInt(v) })

	return &cfg
}
