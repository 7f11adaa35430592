package config

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"syscall"
	"time"

	"github.com/davarch/hw-watcher/internal/domain"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultEndpoint = "https://practicum.yandex.ru/api/user_api/homework_statuses/"
	DefaultInterval = 600 * time.Second
)

type Config struct {
	Practicum struct {
		Endpoint string        `yaml:"endpoint"`
		Token    string        `yaml:"token"`
		Timeout  time.Duration `yaml:"timeout"`
	} `yaml:"practicum"`

	Telegram struct {
		Token  string `yaml:"token"`
		ChatID string `yaml:"chat_id"`
		APIURL string `yaml:"api_url,omitempty"`
	} `yaml:"telegram"`

	Poll struct {
		Interval  time.Duration `yaml:"interval"`
		Lookback  time.Duration `yaml:"lookback"`
		PauseFile string        `yaml:"pause_file,omitempty"`
	} `yaml:"poll"`
}

func Default() Config {
	var c Config
	c.Practicum.Endpoint = DefaultEndpoint
	c.Poll.Interval = DefaultInterval
	return c
}

// Load merges defaults, the YAML file at path, the dotenv file at envPath and
// the process environment, in that order. Missing credentials yield a
// *domain.ConfigError.
func Load(path, envPath string) (Config, error) {
	c := Default()

	if path != "" {
		if b, err := os.ReadFile(path); err == nil {
			if err := yaml.Unmarshal(b, &c); err != nil {
				return c, err
			}
		}
	}

	if envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return c, err
			}
		}
	}

	if v := os.Getenv("PRACTICUM_ENDPOINT"); v != "" {
		c.Practicum.Endpoint = v
	}

	if v := os.Getenv("PRACTICUM_TOKEN"); v != "" {
		c.Practicum.Token = v
	}

	if v := os.Getenv("PRACTICUM_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.Practicum.Timeout = d
		}
	}

	if v := os.Getenv("TELEGRAM_TOKEN"); v != "" {
		c.Telegram.Token = v
	}

	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		c.Telegram.ChatID = v
	}

	if v := os.Getenv("TELEGRAM_API_URL"); v != "" {
		c.Telegram.APIURL = v
	}

	if v := os.Getenv("RETRY_PERIOD"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.Poll.Interval = d
		}
	}

	if v := os.Getenv("LOOKBACK"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.Poll.Lookback = d
		}
	}

	if v := os.Getenv("PAUSE_FILE"); v != "" {
		c.Poll.PauseFile = v
	}

	if c.Practicum.Endpoint == "" {
		c.Practicum.Endpoint = DefaultEndpoint
	}

	if c.Poll.Interval <= 0 {
		c.Poll.Interval = DefaultInterval
	}

	if c.Poll.Lookback < 0 {
		c.Poll.Lookback = 0
	}

	if c.Practicum.Timeout < 0 {
		c.Practicum.Timeout = 0
	}

	c.Poll.PauseFile = expandHome(c.Poll.PauseFile)

	if err := c.Validate(); err != nil {
		return c, err
	}

	return c, nil
}

func (c Config) Validate() error {
	var missing []string
	if strings.TrimSpace(c.Practicum.Token) == "" {
		missing = append(missing, "PRACTICUM_TOKEN")
	}
	if strings.TrimSpace(c.Telegram.Token) == "" {
		missing = append(missing, "TELEGRAM_TOKEN")
	}
	if strings.TrimSpace(c.Telegram.ChatID) == "" {
		missing = append(missing, "TELEGRAM_CHAT_ID")
	}

	if len(missing) > 0 {
		return &domain.ConfigError{Missing: missing}
	}
	return nil
}

// MarshalYAML writes durations as "10m0s" strings; yaml.v3 refuses to decode
// plain integers into time.Duration.
func (c Config) MarshalYAML() (any, error) {
	type practicum struct {
		Endpoint string `yaml:"endpoint"`
		Token    string `yaml:"token"`
		Timeout  string `yaml:"timeout"`
	}
	type telegram struct {
		Token  string `yaml:"token"`
		ChatID string `yaml:"chat_id"`
		APIURL string `yaml:"api_url,omitempty"`
	}
	type poll struct {
		Interval  string `yaml:"interval"`
		Lookback  string `yaml:"lookback"`
		PauseFile string `yaml:"pause_file,omitempty"`
	}

	return struct {
		Practicum practicum `yaml:"practicum"`
		Telegram  telegram  `yaml:"telegram"`
		Poll      poll      `yaml:"poll"`
	}{
		Practicum: practicum{c.Practicum.Endpoint, c.Practicum.Token, c.Practicum.Timeout.String()},
		Telegram:  telegram{c.Telegram.Token, c.Telegram.ChatID, c.Telegram.APIURL},
		Poll:      poll{c.Poll.Interval.String(), c.Poll.Lookback.String(), c.Poll.PauseFile},
	}, nil
}

func Save(path string, c Config) error {
	if path == "" {
		return errors.New("empty config path")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	lockFile := path + ".lock"
	lf, err := os.OpenFile(lockFile, os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return err
	}
	defer func() { _ = lf.Close() }()

	if runtime.GOOS != "windows" {
		if err := syscall.Flock(int(lf.Fd()), syscall.LOCK_EX); err != nil {
			return err
		}
		defer func() { _ = syscall.Flock(int(lf.Fd()), syscall.LOCK_UN) }()
	}

	b, err := yaml.Marshal(&c)
	if err != nil {
		return err
	}

	// the file holds tokens
	tmp := path + ".tmp"
	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}

	defer func() { _ = f.Close() }()

	if _, err := f.Write(b); err != nil {
		return err
	}

	if err := f.Sync(); err != nil {
		return err
	}

	return os.Rename(tmp, path)
}

func expandHome(p string) string {
	if strings.HasPrefix(p, "~/") {
		if h, _ := os.UserHomeDir(); h != "" {
			return h + p[1:]
		}
	}
	return p
}
