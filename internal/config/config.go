package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Zacy-Sokach/Sentix/internal/api"
	"github.com/Zacy-Sokach/Sentix/internal/utils"
	"github.com/subosito/gotenv"
	"gopkg.in/yaml.v3"
)

const (
	defaultTimeoutSeconds = 60
	defaultLogLevel       = "info"
	logFileName           = "sentix.log"
)

type Config struct {
	Endpoint              string `yaml:"endpoint"`
	RequestTimeoutSeconds int    `yaml:"request_timeout_seconds"`
	LogLevel              string `yaml:"log_level"`
	LogFile               string `yaml:"log_file"`
}

// RequestTimeout 传输层超时
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}

// DefaultConfig 返回默认配置
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Endpoint == "" {
		c.Endpoint = api.DefaultEndpoint
	}
	if c.RequestTimeoutSeconds <= 0 {
		c.RequestTimeoutSeconds = defaultTimeoutSeconds
	}
	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}
	if c.LogFile == "" {
		if dir, err := utils.GetConfigDir(); err == nil {
			c.LogFile = filepath.Join(dir, logFileName)
		}
	}
}

// LoadConfig 读取配置文件，再用 .env 和环境变量覆盖
func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return nil, err
	}

	config := &Config{}
	if _, err := os.Stat(configPath); err == nil {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("读取配置文件失败: %w", err)
		}
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("解析配置文件失败: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}

	applyEnv(config)
	config.applyDefaults()
	return config, nil
}

// applyEnv 加载当前目录的 .env（不存在则忽略），环境变量优先于配置文件
func applyEnv(config *Config) {
	_ = gotenv.Load()

	if v := os.Getenv("SENTIX_ENDPOINT"); v != "" {
		config.Endpoint = v
	}
	if v := os.Getenv("SENTIX_LOG_LEVEL"); v != "" {
		config.LogLevel = v
	}
}

// ConfigExists 配置文件是否已经存在
func ConfigExists() (bool, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return false, err
	}
	if _, err := os.Stat(configPath); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("读取配置文件失败: %w", err)
	}
	return true, nil
}

// SaveConfig 写入 config.yaml，目录不存在时创建
func SaveConfig(config *Config) error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("创建配置目录失败: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("序列化配置失败: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("写入配置文件失败: %w", err)
	}

	return nil
}

func getConfigPath() (string, error) {
	configDir, err := utils.GetConfigDir()
	if err != nil {
		return "", fmt.Errorf("获取配置目录失败: %w", err)
	}
	return filepath.Join(configDir, "config.yaml"), nil
}
