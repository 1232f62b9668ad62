package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel   string `yaml:"log-level" env-default:"info"`
	HTTPPort   string `yaml:"http-port" env-default:"8080"`
	SocketPort string `yaml:"socket-port" env-default:"8081"`

	Redis  Redis  `yaml:"redis"`
	SMTP   SMTP   `yaml:"smtp"`
	Gemini Gemini `yaml:"gemini"`
	Site   Site   `yaml:"site"`
}

type Redis struct {
	Host string `yaml:"host" env-default:"localhost"`
	Port string `yaml:"port" env-default:"6379"`
}

type SMTP struct {
	Host      string `yaml:"host" env-default:"smtp.gmail.com"`
	Port      int    `yaml:"port" env-default:"587"`
	Username  string `yaml:"username" env-default:""`
	Password  string `yaml:"password" env-default:""`
	From      string `yaml:"from" env-default:""`
	Recipient string `yaml:"recipient" env-default:""`
}

type Gemini struct {
	APIKey string `yaml:"api-key" env-default:""`
	Model  string `yaml:"model" env-default:"gemini-2.5-flash"`
}

// Site holds timing knobs for the interactive surfaces. The defaults match
// the intervals the frontend animations are built around.
type Site struct {
	ScrollThrottle  time.Duration `yaml:"scroll-throttle" env-default:"100ms"`
	OpponentDelay   time.Duration `yaml:"opponent-delay" env-default:"500ms"`
	ModalCloseDelay time.Duration `yaml:"modal-close-delay" env-default:"400ms"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
