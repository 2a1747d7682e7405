package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cherho0/Fast-DDS/config"
)

// 环境变量（均使用 SPDP_ 前缀）
const (
	envPrefix        = "SPDP_"
	envLeaseDuration = "LEASE_DURATION"
	envMaxUnicast    = "MAX_UNICAST_LOCATORS"
)

// ============================================================================
//                              配置加载（CLI 专用）
// ============================================================================

// loadConfig 加载配置文件并应用环境变量覆盖，path 为空时使用默认配置
func loadConfig(path string) (*config.Config, error) {
	cfg := config.NewConfig()
	if path != "" {
		data, err := os.ReadFile(path) //nolint:gosec // G304: 用户指定的配置文件路径是预期行为
		if err != nil {
			return nil, err
		}
		if cfg, err = config.FromJSON(data); err != nil {
			return nil, err
		}
	}
	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides 应用环境变量覆盖配置
//
// 环境变量优先级高于配置文件。
func applyEnvOverrides(cfg *config.Config) error {
	if v := os.Getenv(envPrefix + envLeaseDuration); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s%s: %w", envPrefix, envLeaseDuration, err)
		}
		cfg.Discovery.LeaseDuration = config.Duration(d)
	}

	if v := os.Getenv(envPrefix + envMaxUnicast); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s%s: %w", envPrefix, envMaxUnicast, err)
		}
		cfg.Allocation.MaxUnicastLocators = n
	}
	return nil
}

// ============================================================================
//                              辅助函数
// ============================================================================

// splitAndTrim 分割字符串并去除空白
func splitAndTrim(s, sep string) []string {
	parts := strings.Split(s, sep)
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}
