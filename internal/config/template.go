package config

import (
	"fmt"
	"os"
	"strings"
)

// expandTemplate 展开配置文件中的 Shell 参数引用。
//
// 支持语法：
//   - ${VAR} - 变量替换，未设置时为空
//   - ${VAR:-default} / ${VAR-default} - fallback，default 可继续嵌套 ${...}
//   - ${VAR:?msg} / ${VAR?msg} - 必填校验
//   - $$ - 字面量 $
//
// 无法识别的表达式保持原样。
func expandTemplate(text string) (string, error) {
	if !strings.Contains(text, "$") {
		return text, nil
	}

	var buf strings.Builder
	buf.Grow(len(text))
	for i := 0; i < len(text); {
		switch {
		case strings.HasPrefix(text[i:], "$$"):
			buf.WriteByte('$')
			i += 2
		case strings.HasPrefix(text[i:], "${"):
			end := matchingBrace(text, i+2)
			if end == -1 {
				buf.WriteString(text[i:])
				return buf.String(), nil
			}
			val, ok, err := expandParameter(text[i+2 : end])
			if err != nil {
				return "", err
			}
			if ok {
				buf.WriteString(val)
			} else {
				buf.WriteString(text[i : end+1])
			}
			i = end + 1
		default:
			buf.WriteByte(text[i])
			i++
		}
	}

	return buf.String(), nil
}

// matchingBrace 返回与 start 之前的 "${" 配对的 '}' 位置，未找到返回 -1。
func matchingBrace(text string, start int) int {
	depth := 0
	for i := start; i < len(text); i++ {
		switch {
		case text[i] == '$' && i+1 < len(text) && text[i+1] == '{':
			depth++
			i++
		case text[i] == '}':
			if depth == 0 {
				return i
			}
			depth--
		}
	}

	return -1
}

func expandParameter(expr string) (string, bool, error) {
	n := 0
	for n < len(expr) && isVarNameChar(expr[n], n == 0) {
		n++
	}
	if n == 0 {
		return "", false, nil
	}

	name, rest := expr[:n], expr[n:]
	val, isSet := os.LookupEnv(name)
	missing := !isSet
	if strings.HasPrefix(rest, ":") {
		missing = !isSet || val == ""
		rest = rest[1:]
	} else if rest == "" {
		return val, true, nil
	}
	if rest == "" {
		return "", false, nil
	}

	op, word := rest[0], rest[1:]
	switch op {
	case '-':
		if missing {
			expanded, err := expandTemplate(word)
			return expanded, err == nil, err
		}
		return val, true, nil
	case '?':
		if missing {
			if word == "" {
				word = "parameter null or not set"
			}
			return "", false, fmt.Errorf("%s: %s", name, word)
		}
		return val, true, nil
	}

	return "", false, nil
}

func isVarNameChar(ch byte, first bool) bool {
	if ch == '_' || (ch >= 'A' && ch <= 'Z') || (ch >= 'a' && ch <= 'z') {
		return true
	}

	return !first && ch >= '0' && ch <= '9'
}
