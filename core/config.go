package core

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

type Config struct {
	Debug    bool
	TestMode bool
	Env      string
	AppName  string

	Server struct {
		Host            string
		Port            int
		ShutdownTimeout time.Duration
	}

	Database struct {
		URI            string
		URISet         bool
		Name           string
		ConnectTimeout time.Duration
	}

	Media struct {
		Root      string // local cache directory for avatar files
		AvatarURL string // external placeholder image service
	}

	RollbarToken string
}

func NewConfig() *Config {
	v := viper.New()

	// defaults
	v.SetTypeByDefaultValue(true)
	v.SetDefault("debug", true)
	v.SetDefault("appName", "Darasa")
	v.SetDefault("server.host", "")
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.shutdownTimeout", 5*time.Second)
	v.SetDefault("mongodb.dbName", "darasa")
	v.SetDefault("mongodb.connectTimeout", 10*time.Second)
	v.SetDefault("media.root", "data")
	v.SetDefault("media.avatarURL", "http://placekitten.com/200/200")
	v.SetDefault("rollbarToken", "")

	env := os.Getenv("ENV") // DEV (local; default), TEST, QA, PROD
	if env == "" {
		env = "DEV"
	}
	if strings.EqualFold(env, "TEST") {
		v.SetDefault("testMode", true)
	}
	v.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join("config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err = godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	conf := &Config{
		Debug:        v.GetBool("debug"),
		TestMode:     v.GetBool("testMode"),
		Env:          env,
		AppName:      v.GetString("appName"),
		RollbarToken: v.GetString("rollbarToken"),
	}
	conf.Server.Host = v.GetString("server.host")
	conf.Server.Port = v.GetInt("server.port")
	conf.Server.ShutdownTimeout = v.GetDuration("server.shutdownTimeout")
	conf.Database.URI = v.GetString("mongodb.uri")
	conf.Database.URISet = conf.Database.URI != ""
	conf.Database.Name = v.GetString("mongodb.dbName")
	conf.Database.ConnectTimeout = v.GetDuration("mongodb.connectTimeout")
	conf.Media.Root = v.GetString("media.root")
	conf.Media.AvatarURL = v.GetString("media.avatarURL")

	// the server still comes up without a URI; Check reports the fallback.
	if !conf.Database.URISet {
		conf.Database.URI = "mongodb://localhost:27017"
	}
	return conf
}

// Check reports configuration the app can start without but should complain about.
func (conf *Config) Check() error {
	if !conf.Database.URISet {
		return errors.Errorf("%s_MONGODB_URI is not set; falling back to %s", conf.Env, conf.Database.URI)
	}
	return nil
}

func (conf *Config) ServerAddress() string {
	return fmt.Sprintf("%s:%d", conf.Server.Host, conf.Server.Port)
}
