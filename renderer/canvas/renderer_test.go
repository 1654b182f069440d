package canvasrenderer

import (
	"bytes"
	"image/png"
	"math/rand"
	"testing"

	"github.com/ByLCY/chatshot/layout"
)

func TestMeasureWithFallbackFont(t *testing.T) {
	// 不提供任何候选字体，强制走内置回退链
	r := NewRenderer(nil)

	w1, h1, err := r.Measure("hi", 36)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	w2, _, err := r.Measure("hello world", 36)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w1 <= 0 || h1 <= 0 {
		t.Fatalf("度量结果必须为正: w=%g h=%g", w1, h1)
	}
	if w2 <= w1 {
		t.Fatalf("更长的文本应更宽: %g vs %g", w2, w1)
	}
	if !r.UsingFallback() {
		t.Fatalf("候选字体缺失时应标记为回退字体")
	}
}

func TestMeasureMissingCandidatesNeverFatal(t *testing.T) {
	r := NewRenderer([]string{"no/such/font.ttf", "also/missing.ttf"})
	if _, _, err := r.Measure("Test", 28); err != nil {
		t.Fatalf("字体缺失不应是致命错误: %v", err)
	}
	if !r.UsingFallback() {
		t.Fatalf("应退回内置字体")
	}
}

func TestRenderNilResult(t *testing.T) {
	r := NewRenderer(nil)
	if _, err := r.Render(nil); err == nil {
		t.Fatalf("空结果必须报错")
	}
}

// TestRenderProducesPNG 端到端：布局一轮对话并渲染，校验 PNG 尺寸。
func TestRenderProducesPNG(t *testing.T) {
	r := NewRenderer(nil)
	cfg := layout.DefaultConfig()

	convo := layout.Conversation{
		{Speaker: layout.SpeakerA, Text: "Hello!"},
		{Speaker: layout.SpeakerB, Text: "Just letting you know the codes are working fine."},
	}
	result, err := layout.Build(convo, cfg, layout.BuildOptions{
		Measurer: r,
		Rand:     rand.New(rand.NewSource(3)),
	})
	if err != nil {
		t.Fatalf("布局计算失败: %v", err)
	}

	data, err := r.Render(result)
	if err != nil {
		t.Fatalf("渲染失败: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("输出不是合法 PNG: %v", err)
	}
	if img.Bounds().Dx() != int(cfg.CanvasWidth) || img.Bounds().Dy() != int(cfg.CanvasHeight) {
		t.Fatalf("图像尺寸不符: %dx%d", img.Bounds().Dx(), img.Bounds().Dy())
	}
}

// TestRenderEmptyMessageBubble 空文本气泡也要能渲染（退化为一行高的小气泡）。
func TestRenderEmptyMessageBubble(t *testing.T) {
	r := NewRenderer(nil)
	cfg := layout.DefaultConfig()

	result, err := layout.Build(layout.Conversation{{Speaker: layout.SpeakerB, Text: ""}}, cfg, layout.BuildOptions{
		Measurer: r,
		Rand:     rand.New(rand.NewSource(3)),
	})
	if err != nil {
		t.Fatalf("布局计算失败: %v", err)
	}
	if _, err := r.Render(result); err != nil {
		t.Fatalf("空消息渲染失败: %v", err)
	}
}
