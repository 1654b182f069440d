package renderer

import "github.com/ByLCY/chatshot/layout"

// Renderer 将布局结果输出为最终图像的编码字节（例如 PNG）。
type Renderer interface {
	Render(result *layout.Result) ([]byte, error)
}
