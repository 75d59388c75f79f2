// internal/config/config.go
package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Server struct {
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`
	WaniKani struct {
		APIKey   string `mapstructure:"api_key"`
		APIURL   string `mapstructure:"api_url"`
		FilesURL string `mapstructure:"files_url"`
	} `mapstructure:"wanikani"`
	Session struct {
		Secret    string `mapstructure:"secret"`
		MaxAgeSec int    `mapstructure:"max_age_sec"`
	} `mapstructure:"session"`
	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
	App struct {
		HTTPSOnly    bool     `mapstructure:"https_only"`
		TrustedHosts []string `mapstructure:"trusted_hosts"`
	} `mapstructure:"app"`
	CORS struct {
		AllowedOrigins   []string `mapstructure:"allowed_origins"`
		AllowedMethods   []string `mapstructure:"allowed_methods"`
		AllowedHeaders   []string `mapstructure:"allowed_headers"`
		ExposedHeaders   []string `mapstructure:"exposed_headers"`
		AllowCredentials bool     `mapstructure:"allow_credentials"`
		MaxAge           int      `mapstructure:"max_age"`
	} `mapstructure:"cors"`
}

var Cfg Config

func LoadConfig(path string) error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(path)
	viper.AddConfigPath(".")

	// 環境変数での上書き (例: APP_WANIKANI_API_KEY)
	viper.SetEnvPrefix("APP")
	viper.AutomaticEnv()
	viper.BindEnv("wanikani.api_key", "WANIKANI_API_KEY")
	viper.BindEnv("session.secret", "SESSION_KEY")
	viper.BindEnv("app.https_only", "HTTPS_ONLY")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Warning: Config file not found. Using default settings or environment variables if available.")
		} else {
			log.Printf("Error reading config file: %s\n", err)
			return err
		}
	}

	err := viper.Unmarshal(&Cfg)
	if err != nil {
		log.Printf("Error unmarshalling config: %s\n", err)
		return err
	}

	// --- デフォルト値の設定 ---
	if Cfg.Server.Port == "" {
		log.Println("Server port not set, using default '" + DefaultServerPort + "'")
		Cfg.Server.Port = DefaultServerPort
	}
	if Cfg.WaniKani.APIURL == "" {
		Cfg.WaniKani.APIURL = DefaultWaniKaniAPIURL
	}
	if Cfg.WaniKani.FilesURL == "" {
		Cfg.WaniKani.FilesURL = DefaultWaniKaniFilesURL
	}
	if Cfg.Session.MaxAgeSec <= 0 {
		Cfg.Session.MaxAgeSec = DefaultSessionMaxAgeSec
	}
	if Cfg.WaniKani.APIKey == "" {
		log.Println("Warning: WaniKani API key is not set in config. Startup cache population will fail.")
	}
	if Cfg.Session.Secret == "" {
		log.Println("Warning: Session secret is not set in config.")
	}

	// https_only のデフォルトは true (本番を安全側に倒す)
	if !viper.IsSet("app.https_only") {
		Cfg.App.HTTPSOnly = true
	}

	log.Println("Config loaded successfully")
	log.Printf("Server Port: %s", Cfg.Server.Port)
	log.Printf("WaniKani API URL: %s", Cfg.WaniKani.APIURL)
	log.Printf("HTTPS Only: %t", Cfg.App.HTTPSOnly)

	return nil
}
