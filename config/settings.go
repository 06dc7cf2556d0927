package config

import (
	"errors"
	"io/fs"
	"net"
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

// WebSettings controls where the portal listens and how it is reached from
// the outside. ExternalURL is the public origin used in reset links.
type WebSettings struct {
	Listen      string `toml:"listen"`
	Port        int    `toml:"port"`
	Domain      string `toml:"domain"`
	ExternalURL string `toml:"externalUrl"`
}

// MailSettings holds the SMTP collaborator credentials for outbound
// transactional mail.
type MailSettings struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	Username string `toml:"username"`
	Password string `toml:"password"`
	From     string `toml:"from"`
}

// Settings is the immutable process configuration, built once at startup and
// passed to the components that need it.
type Settings struct {
	Web  WebSettings  `toml:"web"`
	Mail MailSettings `toml:"mail"`
}

func defaultSettings() *Settings {
	return &Settings{
		Web: WebSettings{
			Listen:      "",
			Port:        8080,
			ExternalURL: "http://localhost:8080",
		},
		Mail: MailSettings{
			Port: 587,
			From: "noreply@student.local",
		},
	}
}

// LoadSettings builds the process settings from defaults, then the optional
// TOML file, then environment overrides.
func LoadSettings() (*Settings, error) {
	settings := defaultSettings()

	data, err := os.ReadFile(GetConfigFilePath())
	if err == nil {
		if err := toml.Unmarshal(data, settings); err != nil {
			return nil, err
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	applyEnv(settings)
	return settings, nil
}

func applyEnv(settings *Settings) {
	if v := os.Getenv("STUDENT_LISTEN"); v != "" {
		settings.Web.Listen = v
	}
	if v := os.Getenv("STUDENT_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			settings.Web.Port = port
		}
	}
	if v := os.Getenv("STUDENT_DOMAIN"); v != "" {
		settings.Web.Domain = v
	}
	if v := os.Getenv("STUDENT_EXTERNAL_URL"); v != "" {
		settings.Web.ExternalURL = v
	}
	if v := os.Getenv("SMTP_HOST"); v != "" {
		settings.Mail.Host = v
	}
	if v := os.Getenv("SMTP_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			settings.Mail.Port = port
		}
	}
	if v := os.Getenv("SMTP_USER"); v != "" {
		settings.Mail.Username = v
	}
	if v := os.Getenv("SMTP_PASS"); v != "" {
		settings.Mail.Password = v
	}
	if v := os.Getenv("SMTP_FROM"); v != "" {
		settings.Mail.From = v
	}
}

// ListenAddr joins the configured listen host and port.
func (s *Settings) ListenAddr() string {
	return net.JoinHostPort(s.Web.Listen, strconv.Itoa(s.Web.Port))
}
