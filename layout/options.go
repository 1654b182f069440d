package layout

import "math/rand"

// BuildOptions 配置布局阶段所需的依赖：文本度量后端与时间戳随机源。
type BuildOptions struct {
	Measurer Measurer
	// Rand 为空时使用进程级随机源；测试应注入固定种子以保证可重复。
	Rand *rand.Rand
}

// Measurer 负责返回给定字号下文本的渲染尺寸（单位：px）。
// 实现必须是确定性的纯函数，布局引擎会对同一文本重复调用。
type Measurer interface {
	Measure(text string, fontSize float64) (width, height float64, err error)
}
