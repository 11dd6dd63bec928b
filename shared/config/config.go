package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"

	"github.com/itchan-dev/confluence-bridge/shared/utils"
)

const (
	DeploymentCloud  = "cloud"
	DeploymentServer = "server"
)

type Config struct {
	Public  Public
	private Private
}

type Public struct {
	Confluence Confluence    `yaml:"confluence"`
	Server     Server        `yaml:"server"`
	Log        Log           `yaml:"log"`
	JwtTTL     time.Duration `yaml:"jwt_ttl"`
}

type Confluence struct {
	URL string `yaml:"url" validate:"required,url"`
	// "cloud" or "server"; detected from URL when empty
	Deployment string        `yaml:"deployment" validate:"omitempty,oneof=cloud server"`
	Timeout    time.Duration `yaml:"timeout" validate:"gte=0"`
}

type Server struct {
	Port              string   `yaml:"port" validate:"required,numeric"`
	AllowedOrigins    []string `yaml:"allowed_origins"`
	RequestsPerMinute int      `yaml:"requests_per_minute" validate:"gte=0"` // per client IP, 0 disables
	SecureCookies     bool     `yaml:"secure_cookies"`                       // served over https, enables HSTS
}

type Log struct {
	Level string `yaml:"level" validate:"omitempty,oneof=debug info warn warning error"`
	JSON  bool   `yaml:"json"`
}

type Private struct {
	JwtKey        string `yaml:"jwt_key"`        // empty disables gateway auth
	Username      string `yaml:"username"`       // cloud: account email
	APIToken      string `yaml:"api_token"`      // cloud API token or server password
	PersonalToken string `yaml:"personal_token"` // server/data center PAT
}

// New assembles a config without files, for tools and tests.
func New(public Public, private Private) *Config {
	return &Config{public, private}
}

func (s *Config) JwtKey() string {
	return s.private.JwtKey
}

func (s *Config) JwtTTL() time.Duration {
	return s.Public.JwtTTL
}

func (s *Config) Credentials() Private {
	return s.private
}

// IsCloud reports whether the configured site is Atlassian cloud.
func (c Confluence) IsCloud() bool {
	switch c.Deployment {
	case DeploymentCloud:
		return true
	case DeploymentServer:
		return false
	}
	u, err := url.Parse(c.URL)
	if err != nil {
		return false
	}
	host := strings.ToLower(u.Hostname())
	return strings.HasSuffix(host, ".atlassian.net") || strings.HasSuffix(host, ".jira.com")
}

func loadPath(configPath string, output any) error {
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("can't read config file %s: %w", configPath, err)
	}
	if err := yaml.Unmarshal(configFile, output); err != nil {
		return fmt.Errorf("can't unmarshal config file %s: %w", configPath, err)
	}
	return nil
}

// Load reads public.yaml (required) and private.yaml (optional) from
// configFolder. Secrets from the environment or configFolder/.env win over
// private.yaml.
func Load(configFolder string) (*Config, error) {
	public := defaultPublic()
	if err := loadPath(path.Join(configFolder, "public.yaml"), &public); err != nil {
		return nil, err
	}

	var private Private
	privatePath := path.Join(configFolder, "private.yaml")
	if _, err := os.Stat(privatePath); err == nil {
		if err := loadPath(privatePath, &private); err != nil {
			return nil, err
		}
	}

	if err := godotenv.Load(path.Join(configFolder, ".env")); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("can't load .env: %w", err)
	}
	applyEnv(&public, &private)

	cfg := &Config{public, private}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func MustLoad(configFolder string) *Config {
	cfg, err := Load(configFolder)
	if err != nil {
		panic(err.Error())
	}
	return cfg
}

// Validate checks field constraints and that the credentials match the deployment.
func (s *Config) Validate() error {
	if err := utils.Validate(s.Public); err != nil {
		return fmt.Errorf("public config: %w", err)
	}

	p := s.private
	hasBasic := p.Username != "" && p.APIToken != ""
	if s.Public.Confluence.IsCloud() {
		if !hasBasic {
			return errors.New("cloud deployment needs username and api_token")
		}
		return nil
	}
	if p.PersonalToken == "" && !hasBasic {
		return errors.New("server deployment needs personal_token or username and api_token")
	}
	return nil
}

func defaultPublic() Public {
	return Public{
		Confluence: Confluence{Timeout: 30 * time.Second},
		Server:     Server{Port: "8080", RequestsPerMinute: 600},
		Log:        Log{Level: "info"},
		JwtTTL:     30 * 24 * time.Hour,
	}
}

func applyEnv(public *Public, private *Private) {
	setFromEnv(&public.Confluence.URL, "CONFLUENCE_URL")
	setFromEnv(&public.Server.Port, "PORT")
	setFromEnv(&private.Username, "CONFLUENCE_USERNAME")
	setFromEnv(&private.APIToken, "CONFLUENCE_API_TOKEN")
	setFromEnv(&private.PersonalToken, "CONFLUENCE_PERSONAL_TOKEN")
	setFromEnv(&private.JwtKey, "JWT_SECRET")
}

func setFromEnv(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}
