package fonts

import lmroman "github.com/go-fonts/latin-modern/lmroman10regular"

// FallbackName 是内置回退字体注册时使用的 Family 名称。
const FallbackName = "chatshot-fallback"

// Fallback 返回内置回退字体的字节数据。候选字体文件全部加载失败时，
// 渲染器使用它保证出图，绝不因字体缺失而失败。
func Fallback() []byte { return lmroman.TTF }
