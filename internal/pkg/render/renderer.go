package render

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/aymerick/raymond"
	"notification-dispatch/internal/errs"
)

// Renderer 把模板文本和数据渲染成最终文本，相同的输入总是得到相同的输出
type Renderer interface {
	Render(text string, data any) (string, error)
}

var _ Renderer = (*HandlebarsRenderer)(nil)

// HandlebarsRenderer 使用 {{Name}} 语法的渲染器
type HandlebarsRenderer struct {
	helpers map[string]any
}

func (r *HandlebarsRenderer) Render(text string, data any) (out string, err error) {
	if strings.TrimSpace(text) == "" {
		return "", nil
	}

	defer func() {
		if p := recover(); p != nil {
			out, err = "", fmt.Errorf("%w: %v", errs.ErrTemplateRender, p)
		}
	}()

	tpl, err := raymond.Parse(text)
	if err != nil {
		return "", fmt.Errorf("%w: %w", errs.ErrTemplateRender, err)
	}
	// 每次解析出来的模板都是新的，helper 注册在模板上而不是全局
	for name, helper := range r.helpers {
		tpl.RegisterHelper(name, helper)
	}

	out, err = tpl.Exec(plain(data))
	if err != nil {
		return "", fmt.Errorf("%w: %w", errs.ErrTemplateRender, err)
	}
	return out, nil
}

// plain 复制一份数据，字符串标记为 SafeString，避免短信、推送正文被 HTML 转义
// 结构体按导出字段展开成 map，原始数据不会被修改
func plain(data any) any {
	switch v := data.(type) {
	case nil:
		return nil
	case string:
		return raymond.SafeString(v)
	case raymond.SafeString, time.Time, *time.Time:
		return v
	case map[string]any:
		res := make(map[string]any, len(v))
		for key, val := range v {
			res[key] = plain(val)
		}
		return res
	case map[string]string:
		res := make(map[string]any, len(v))
		for key, val := range v {
			res[key] = raymond.SafeString(val)
		}
		return res
	case []any:
		res := make([]any, len(v))
		for i := range v {
			res[i] = plain(v[i])
		}
		return res
	case []string:
		res := make([]any, len(v))
		for i := range v {
			res[i] = raymond.SafeString(v[i])
		}
		return res
	}
	return plainValue(reflect.ValueOf(data))
}

func plainValue(rv reflect.Value) any {
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return nil
		}
		return plain(rv.Elem().Interface())
	case reflect.String:
		return raymond.SafeString(rv.String())
	case reflect.Struct:
		res := make(map[string]any, rv.NumField())
		plainStruct(rv, res)
		return res
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return rv.Interface()
		}
		res := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			res[iter.Key().String()] = plain(iter.Value().Interface())
		}
		return res
	case reflect.Slice, reflect.Array:
		res := make([]any, rv.Len())
		for i := range res {
			res[i] = plain(rv.Index(i).Interface())
		}
		return res
	default:
		if s, ok := rv.Interface().(fmt.Stringer); ok {
			return raymond.SafeString(s.String())
		}
		return rv.Interface()
	}
}

var timeType = reflect.TypeOf(time.Time{})

// plainStruct 展开导出字段，匿名嵌入的结构体字段提升到外层
// 和 raymond 的查找规则保持一致：字段名、首字母小写的字段名、handlebars tag 都可以访问
func plainStruct(rv reflect.Value, res map[string]any) {
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		fv := rv.Field(i)
		if f.Anonymous && fv.Kind() == reflect.Struct && fv.Type() != timeType {
			plainStruct(fv, res)
			continue
		}
		if !f.IsExported() {
			continue
		}
		val := plain(fv.Interface())
		res[f.Name] = val
		if alias := lowerFirst(f.Name); alias != f.Name {
			if _, ok := res[alias]; !ok {
				res[alias] = val
			}
		}
		if tag := f.Tag.Get("handlebars"); tag != "" {
			res[tag] = val
		}
	}
}

func lowerFirst(name string) string {
	if name == "" {
		return name
	}
	return strings.ToLower(name[:1]) + name[1:]
}

// NewHandlebarsRenderer 创建渲染器，内置 formatDate、upper、lower、default
func NewHandlebarsRenderer() *HandlebarsRenderer {
	return &HandlebarsRenderer{
		helpers: map[string]any{
			"formatDate": formatDate,
			"upper":      upper,
			"lower":      lower,
			"default":    defaultValue,
		},
	}
}

// Validate 只检查语法，保存模板前使用
func Validate(text string) error {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	if _, err := raymond.Parse(text); err != nil {
		return fmt.Errorf("%w: %w", errs.ErrTemplateRender, err)
	}
	return nil
}
