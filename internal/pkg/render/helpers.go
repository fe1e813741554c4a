package render

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/aymerick/raymond"
)

const defaultDateLayout = "2006-01-02 15:04"

// helper 的返回值都是 SafeString，raymond 不会再做 HTML 转义

// formatDate {{formatDate CreatedAt "2006-01-02"}}
// 支持 time.Time、RFC3339 字符串和秒级时间戳
func formatDate(value any, layout any) raymond.SafeString {
	l := str(layout)
	if l == "" {
		l = defaultDateLayout
	}
	t, ok := toTime(value)
	if !ok {
		return raymond.SafeString(str(value))
	}
	return raymond.SafeString(t.Format(l))
}

func toTime(value any) (time.Time, bool) {
	switch v := value.(type) {
	case time.Time:
		return v, !v.IsZero()
	case *time.Time:
		if v == nil {
			return time.Time{}, false
		}
		return *v, !v.IsZero()
	case int64:
		return time.Unix(v, 0).UTC(), true
	case int:
		return time.Unix(int64(v), 0).UTC(), true
	case float64:
		return time.Unix(int64(v), 0).UTC(), true
	case string, raymond.SafeString:
		s := str(v)
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			return t, true
		}
		if sec, err := strconv.ParseInt(s, 10, 64); err == nil {
			return time.Unix(sec, 0).UTC(), true
		}
		return time.Time{}, false
	default:
		return time.Time{}, false
	}
}

func upper(value any) raymond.SafeString {
	return raymond.SafeString(strings.ToUpper(str(value)))
}

func lower(value any) raymond.SafeString {
	return raymond.SafeString(strings.ToLower(str(value)))
}

// defaultValue {{default Nickname "朋友"}}
func defaultValue(value any, fallback any) raymond.SafeString {
	if s := str(value); strings.TrimSpace(s) != "" {
		return raymond.SafeString(s)
	}
	return raymond.SafeString(str(fallback))
}

func str(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case raymond.SafeString:
		return string(v)
	case fmt.Stringer:
		return v.String()
	default:
		return raymond.Str(v)
	}
}
