package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/urfave/cli/v3"
	yamlv3 "go.yaml.in/yaml/v3"
)

// FlagConfig 指定配置文件的 CLI flag 名称。
const FlagConfig = "config"

// loadOptions 配置加载选项。
type loadOptions struct {
	configPaths         []string
	required            bool // configPaths 中的文件必须存在（由 --config 指定时）
	envPrefix           string
	noTemplateExpansion bool
}

// Option 配置加载选项函数。
type Option func(*loadOptions)

// WithConfigPaths 设置配置文件搜索路径，命中首个文件即停止。
func WithConfigPaths(paths ...string) Option {
	return func(o *loadOptions) {
		o.configPaths = paths
	}
}

// WithEnvPrefix 设置环境变量前缀，空字符串表示不读取环境变量。
func WithEnvPrefix(prefix string) Option {
	return func(o *loadOptions) {
		o.envPrefix = prefix
	}
}

// WithoutTemplateExpansion 禁用配置文件中 ${...} 的展开。
func WithoutTemplateExpansion() Option {
	return func(o *loadOptions) {
		o.noTemplateExpansion = true
	}
}

// DefaultPaths 返回默认配置文件的搜索顺序，先命中的文件生效。
//
//  1. ./.appname.yaml - 当前目录应用配置
//  2. ~/.appname.yaml - 用户主目录配置
//  3. /etc/appname/config.yaml - 系统级配置
//  4. config.yaml - 当前目录通用配置
func DefaultPaths(appName string) []string {
	paths := []string{"." + appName + ".yaml"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, "."+appName+".yaml"))
	}

	return append(paths, "/etc/"+appName+"/config.yaml", "config.yaml")
}

// EnvPrefix 根据应用名生成环境变量前缀，如 braces → BRACES_。
func EnvPrefix(appName string) string {
	return strings.ToUpper(appName) + "_"
}

// Load 读取配置并按优先级合并，最后执行 [Config.Validate]。
//
// cmd 可为 nil，此时跳过 CLI flags。cmd 上设置了 --config 时只读取该文件，且文件必须存在。
func Load(cmd *cli.Command, appName string, opts ...Option) (*Config, error) {
	o := &loadOptions{
		configPaths: DefaultPaths(appName),
		envPrefix:   EnvPrefix(appName),
	}
	for _, opt := range opts {
		opt(o)
	}
	if cmd != nil && cmd.IsSet(FlagConfig) {
		o.configPaths = []string{cmd.String(FlagConfig)}
		o.required = true
	}

	defaults := DefaultConfig()
	configMap, err := toMap(defaults)
	if err != nil {
		return nil, err
	}

	// 配置文件
	if err := loadFile(configMap, o); err != nil {
		return nil, err
	}

	// 环境变量
	fields := collectFields(reflect.TypeOf(defaults), "")
	if o.envPrefix != "" {
		for _, f := range fields {
			envKey := o.envPrefix + strings.ToUpper(strings.NewReplacer(".", "_", "-", "_").Replace(f.key))
			if val, ok := os.LookupEnv(envKey); ok && val != "" {
				setByPath(configMap, f.key, val)
				slog.Debug("Loaded env binding", "env", envKey, "path", f.key)
			}
		}
	}

	// CLI flags (仅显式设置的)
	if cmd != nil {
		for _, f := range fields {
			name := strings.ReplaceAll(f.key, ".", "-")
			if !cmd.IsSet(name) {
				continue
			}
			switch f.kind {
			case reflect.String:
				setByPath(configMap, f.key, cmd.String(name))
			case reflect.Bool:
				setByPath(configMap, f.key, cmd.Bool(name))
			case reflect.Int:
				setByPath(configMap, f.key, cmd.Int(name))
			default:
				// 不支持的类型，忽略
			}
		}
	}

	var cfg Config
	if err := decodeConfigMap(configMap, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func loadFile(configMap map[string]any, o *loadOptions) error {
	for _, path := range o.configPaths {
		content, err := os.ReadFile(path) //nolint:gosec // path is from trusted config
		if err != nil {
			if o.required || (!errors.Is(err, fs.ErrNotExist) && !errors.Is(err, fs.ErrPermission)) {
				return fmt.Errorf("read config file %s: %w", path, err)
			}
			continue
		}

		if !o.noTemplateExpansion {
			expanded, err := expandTemplate(string(content))
			if err != nil {
				return fmt.Errorf("expand template in %s: %w", path, err)
			}
			content = []byte(expanded)
		}

		fileMap, err := parseConfigBytes(path, content)
		if err != nil {
			return fmt.Errorf("parse config file %s: %w", path, err)
		}
		mergeMaps(configMap, fileMap)
		slog.Debug("Loaded config from file", "path", path, "templateExpansion", !o.noTemplateExpansion)

		return nil
	}
	slog.Debug("No config file found, using defaults")

	return nil
}

// ═══════════════════════════════════════════════════════════════════════════
// map 辅助
// ═══════════════════════════════════════════════════════════════════════════

type field struct {
	key  string
	kind reflect.Kind
}

// collectFields 以 json tag 为 key 收集叶子字段，如 expand.max-depth。
func collectFields(typ reflect.Type, prefix string) []field {
	var out []field
	for i := range typ.NumField() {
		sf := typ.Field(i)
		name, _, _ := strings.Cut(sf.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			continue
		}
		if prefix != "" {
			name = prefix + "." + name
		}
		if sf.Type.Kind() == reflect.Struct {
			out = append(out, collectFields(sf.Type, name)...)
			continue
		}
		out = append(out, field{key: name, kind: sf.Type.Kind()})
	}

	return out
}

func toMap(cfg Config) (map[string]any, error) {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("marshal defaults: %w", err)
	}
	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("unmarshal defaults: %w", err)
	}

	return out, nil
}

func parseConfigBytes(path string, content []byte) (map[string]any, error) {
	var raw any
	var err error
	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = json.Unmarshal(content, &raw)
	} else {
		err = yamlv3.Unmarshal(content, &raw)
	}
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return map[string]any{}, nil
	}
	configMap, ok := normalizeMapKeys(raw).(map[string]any)
	if !ok {
		return nil, errors.New("config root must be object")
	}

	return configMap, nil
}

func normalizeMapKeys(val any) any {
	switch typed := val.(type) {
	case map[string]any:
		for key, value := range typed {
			typed[key] = normalizeMapKeys(value)
		}
		return typed
	case map[any]any:
		out := make(map[string]any, len(typed))
		for key, value := range typed {
			out[fmt.Sprintf("%v", key)] = normalizeMapKeys(value)
		}
		return out
	case []any:
		for i := range typed {
			typed[i] = normalizeMapKeys(typed[i])
		}
		return typed
	default:
		return val
	}
}

func mergeMaps(dst, src map[string]any) {
	for key, value := range src {
		if valueMap, ok := value.(map[string]any); ok {
			if dstMap, ok := dst[key].(map[string]any); ok {
				mergeMaps(dstMap, valueMap)
				continue
			}
		}
		dst[key] = value
	}
}

func setByPath(dst map[string]any, path string, value any) {
	parts := strings.Split(path, ".")
	current := dst
	for _, part := range parts[:len(parts)-1] {
		next, ok := current[part].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[part] = next
		}
		current = next
	}
	current[parts[len(parts)-1]] = value
}

func decodeConfigMap(data map[string]any, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		TagName:          "json",
	})
	if err != nil {
		return err
	}

	return decoder.Decode(data)
}
