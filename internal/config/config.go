// Package config 提供应用配置管理。
//
// 配置加载优先级 (从低到高)：
//  1. 默认值 - DefaultConfig() 函数中定义
//  2. 配置文件 - --config 指定，或按 DefaultPaths 搜索
//  3. 环境变量 - BRACES_ 前缀
//  4. CLI flags - 仅用户显式设置的 flag
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
)

// 支持的输出格式。
const (
	FormatLines = "lines"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// Formats 返回全部输出格式。
func Formats() []string {
	return []string{FormatLines, FormatJSON, FormatYAML}
}

// Config 应用配置。
type Config struct {
	Expand ExpandConfig `json:"expand" desc:"展开配置"`
	Output OutputConfig `json:"output" desc:"输出配置"`
	Log    LogConfig    `json:"log" desc:"日志配置"`
}

// ExpandConfig 展开配置。
type ExpandConfig struct {
	MaxDepth   int  `json:"max-depth" desc:"最大嵌套深度"`
	MaxResults int  `json:"max-results" desc:"单个模式的结果上限, 0 表示不限制"`
	Jobs       int  `json:"jobs" desc:"并发展开的模式数"`
	Strict     bool `json:"strict" desc:"遇到错误立即停止"`
}

// OutputConfig 输出配置。
type OutputConfig struct {
	Format string `json:"format" desc:"输出格式: lines, json, yaml"`
	Sort   bool   `json:"sort" desc:"按字典序排序结果"`
	Unique bool   `json:"unique" desc:"去除重复结果"`
}

// LogConfig 日志配置。
type LogConfig struct {
	Level string `json:"level" desc:"日志级别: debug, info, warn, error"`
}

// DefaultConfig 返回默认配置。
// 注意：internal/command/command.go 中的 Defaults 变量引用此函数以实现单一配置来源。
func DefaultConfig() Config {
	return Config{
		Expand: ExpandConfig{
			MaxDepth:   256,
			MaxResults: 100000,
			Jobs:       4,
		},
		Output: OutputConfig{
			Format: FormatLines,
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// Validate 校验配置取值。
func (c *Config) Validate() error {
	var errs []error
	if c.Expand.MaxDepth < 0 {
		errs = append(errs, fmt.Errorf("expand.max-depth must not be negative: %d", c.Expand.MaxDepth))
	}
	if c.Expand.MaxResults < 0 {
		errs = append(errs, fmt.Errorf("expand.max-results must not be negative: %d", c.Expand.MaxResults))
	}
	if c.Expand.Jobs < 1 {
		errs = append(errs, fmt.Errorf("expand.jobs must be at least 1: %d", c.Expand.Jobs))
	}
	if !slices.Contains(Formats(), c.Output.Format) {
		errs = append(errs, fmt.Errorf("output.format %q not in %v", c.Output.Format, Formats()))
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// SlogLevel 将 Level 解析为 slog.Level。
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("log.level %q: %w", l.Level, err)
	}

	return level, nil
}
