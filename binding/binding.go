// Package binding 提供 ${path.to.value} 形式的占位符替换，
// 用于把外部 JSON 数据填入消息文本。
package binding

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var exprPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// Interpolate 将文本中的 ${path} 替换为 data 中对应的值。
// data 为空或路径无法解析时保留原占位符，文本本身永远不会因绑定失败而丢失。
func Interpolate(text string, data any) string {
	if data == nil {
		return text
	}
	return exprPattern.ReplaceAllStringFunc(text, func(match string) string {
		path := strings.TrimSpace(match[2 : len(match)-1])
		if path == "" {
			return match
		}
		if val, ok := lookup(data, path); ok {
			return fmt.Sprint(val)
		}
		return match
	})
}

// lookup 沿 "a.b[0].c" 形式的路径逐级下钻，支持 map 键与数组下标。
func lookup(data any, path string) (any, bool) {
	current := data
	for _, segment := range strings.Split(path, ".") {
		name := segment
		var indexes []int
		if i := strings.IndexByte(segment, '['); i != -1 {
			name = segment[:i]
			rest := segment[i:]
			for strings.HasPrefix(rest, "[") {
				end := strings.IndexByte(rest, ']')
				if end == -1 {
					return nil, false
				}
				idx, err := strconv.Atoi(rest[1:end])
				if err != nil {
					return nil, false
				}
				indexes = append(indexes, idx)
				rest = rest[end+1:]
			}
		}

		if name != "" {
			m, ok := current.(map[string]any)
			if !ok {
				return nil, false
			}
			if current, ok = m[name]; !ok {
				return nil, false
			}
		}
		for _, idx := range indexes {
			arr, ok := current.([]any)
			if !ok || idx < 0 || idx >= len(arr) {
				return nil, false
			}
			current = arr[idx]
		}
	}
	return current, true
}
