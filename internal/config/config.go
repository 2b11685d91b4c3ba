package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	log "github.com/sirupsen/logrus"
)

const envPrefix = "BOOKWELL_"

type Application struct {
	Host      string    `koanf:"host"`
	Server    Server    `koanf:"server"`
	Frontend  Frontend  `koanf:"frontend"`
	Cors      Cors      `koanf:"cors"`
	RateLimit RateLimit `koanf:"ratelimit"`
	Calendar  Calendar  `koanf:"calendar"`
	Shell     Shell     `koanf:"shell"`
}

type Server struct {
	Addr         string        `koanf:"addr"`
	ReadTimeout  time.Duration `koanf:"readtimeout"`
	WriteTimeout time.Duration `koanf:"writetimeout"`
	IdleTimeout  time.Duration `koanf:"idletimeout"`
}

type Frontend struct {
	Enabled bool   `koanf:"enabled"`
	Dir     string `koanf:"dir"`
	Index   string `koanf:"index"`
}

type Cors struct {
	AllowedOrigins []string `koanf:"allowedorigins"`
}

type RateLimit struct {
	Enabled bool    `koanf:"enabled"`
	RPS     float64 `koanf:"rps"`
	Burst   int     `koanf:"burst"`
}

type Calendar struct {
	// Timezone is an IANA name; "today" and month boundaries are computed in it.
	Timezone string `koanf:"timezone"`
	// Today pins the current date (YYYY-MM-DD). Empty means the wall clock.
	Today string `koanf:"today"`
	// SelectedDate is the date a new session has selected in the calendar.
	SelectedDate string `koanf:"selecteddate"`
}

// Shell is packaging metadata for the mobile wrapper. It is passed through untouched.
type Shell struct {
	AppId     string `koanf:"appid"`
	AppName   string `koanf:"appname"`
	WebDir    string `koanf:"webdir"`
	ServerUrl string `koanf:"serverurl"`
	Cleartext bool   `koanf:"cleartext"`
	Splash    Splash `koanf:"splash"`
}

type Splash struct {
	LaunchShowDuration time.Duration `koanf:"launchshowduration"`
	BackgroundColor    string        `koanf:"backgroundcolor"`
	ShowSpinner        bool          `koanf:"showspinner"`
}

func Defaults() Application {
	return Application{
		Host: "http://localhost:8181",
		Server: Server{
			Addr:         ":8181",
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		Frontend: Frontend{
			Enabled: false,
			Dir:     "dist",
			Index:   "index.html",
		},
		RateLimit: RateLimit{
			Enabled: true,
			RPS:     20,
			Burst:   40,
		},
		Calendar: Calendar{
			Timezone:     "UTC",
			Today:        "",
			SelectedDate: "2025-01-17",
		},
		Shell: Shell{
			AppId:   "app.bookwell.mobile",
			AppName: "Bookwell",
			WebDir:  "dist",
			Splash: Splash{
				LaunchShowDuration: 2 * time.Second,
				BackgroundColor:    "#3b82f6",
				ShowSpinner:        false,
			},
		},
	}
}

// Load layers defaults, the YAML file at path and BOOKWELL_* environment variables, in
// that order. A .env file in the working directory is read into the environment first.
func Load(path string) (Application, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warnf("failed to read .env file: %v", err)
	}

	var k = koanf.New(".")

	if err := k.Load(structs.Provider(Defaults(), "koanf"), nil); err != nil {
		log.Errorf("error loading config from structs: %v", err)
		return Application{}, err
	}

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		if os.IsNotExist(err) {
			log.Infof("Config file not found at %s, using defaults and environment variables", path)
		} else {
			log.Errorf("error loading config from YAML: %v", err)
			return Application{}, err
		}
	} else {
		log.Infof("Loaded configuration from file: %s", path)
	}

	err := k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(k, v string) (string, any) {
			k = strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(k, envPrefix)), "_", ".")
			if k == "cors.allowedorigins" {
				return k, strings.Split(v, ",")
			}
			return k, v
		},
	}), nil)
	if err != nil {
		log.Errorf("error loading config from envs: %v", err)
		return Application{}, err
	}

	var app Application
	if err := k.Unmarshal("", &app); err != nil {
		return Application{}, err
	}

	return app, nil
}

// Location resolves the configured calendar timezone.
func (c Calendar) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(c.Timezone)
}
