package canvasrenderer

import (
	"bytes"
	"fmt"
	"image/color"
	"image/png"
	"log"
	"os"
	"sync"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/rasterizer"

	"github.com/ByLCY/chatshot/fonts"
	"github.com/ByLCY/chatshot/layout"
	"github.com/ByLCY/chatshot/renderer"
)

// Renderer draws layout results via github.com/tdewolff/canvas and encodes
// them as PNG. 布局与绘制统一使用 px：画布单位即像素，栅格化分辨率为
// 1 px/unit，因此无需单位换算。
type Renderer struct {
	fontPaths []string

	fontMu       sync.Mutex
	family       *canvas.FontFamily
	usedFallback bool
	faces        map[faceKey]*canvas.FontFace
}

var (
	_ renderer.Renderer = (*Renderer)(nil)
	_ layout.Measurer   = (*Renderer)(nil)
)

type faceKey struct {
	size  float64
	color layout.Color
}

// NewRenderer 创建渲染器。fontPaths 为按顺序尝试的字体文件；
// 全部失败时退回内置字体并打印一条警告，字体问题永远不是致命错误。
func NewRenderer(fontPaths []string) *Renderer {
	return &Renderer{
		fontPaths: fontPaths,
		faces:     map[faceKey]*canvas.FontFace{},
	}
}

// UsingFallback 报告是否退回了内置字体（字体族已加载后才有意义）。
func (r *Renderer) UsingFallback() bool {
	r.fontMu.Lock()
	defer r.fontMu.Unlock()
	return r.usedFallback
}

// Render renders the result into a PNG byte slice.
func (r *Renderer) Render(result *layout.Result) ([]byte, error) {
	if result == nil {
		return nil, fmt.Errorf("渲染结果为空")
	}
	if result.Width <= 0 || result.Height <= 0 {
		return nil, fmt.Errorf("画布尺寸非法: %gx%g", result.Width, result.Height)
	}

	c := canvas.New(result.Width, result.Height)
	ctx := canvas.NewContext(c)
	ctx.SetCoordSystem(canvas.CartesianIV) // 使坐标与布局保持左上角为原点

	// 背景
	ctx.SetFillColor(colorFromLayout(result.Background))
	ctx.SetStrokeColor(color.RGBA{})
	ctx.DrawPath(0, 0, canvas.Rectangle(result.Width, result.Height))

	for _, bubble := range result.Bubbles {
		if err := r.drawBubble(ctx, bubble, result.LineSpacing); err != nil {
			return nil, err
		}
	}
	if err := r.drawLabel(ctx, result.Timestamp); err != nil {
		return nil, err
	}
	if result.Seen != nil {
		if err := r.drawLabel(ctx, *result.Seen); err != nil {
			return nil, err
		}
	}

	img := rasterizer.Draw(c, canvas.DPMM(1.0), canvas.DefaultColorSpace)
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("编码 PNG 失败: %w", err)
	}
	return buf.Bytes(), nil
}

// Measure 实现 layout.Measurer，返回文本在给定字号下的宽高（px）。
// 高度取字体的 Ascent+Descent，对同一字号是常量，与具体文本无关。
func (r *Renderer) Measure(text string, fontSize float64) (float64, float64, error) {
	face, err := r.face(fontSize, layout.ColorText)
	if err != nil {
		return 0, 0, err
	}
	metrics := face.Metrics()
	return face.TextWidth(text), metrics.Ascent + metrics.Descent, nil
}

func (r *Renderer) drawBubble(ctx *canvas.Context, b layout.Bubble, lineSpacing float64) error {
	w, h := b.Box.Width(), b.Box.Height()
	if w <= 0 || h <= 0 {
		return fmt.Errorf("气泡矩形非法: %+v", b.Box)
	}
	// 圆角不超过短边的一半
	radius := b.CornerRadius
	if radius > w/2 {
		radius = w / 2
	}
	if radius > h/2 {
		radius = h / 2
	}

	ctx.SetFillColor(colorFromLayout(b.Fill))
	ctx.SetStrokeColor(colorFromLayout(b.Outline))
	ctx.SetStrokeWidth(b.OutlineWidth)
	ctx.DrawPath(b.Box.Left, b.Box.Top, canvas.RoundedRectangle(w, h, radius))

	if len(b.Lines) == 0 {
		return nil
	}
	face, err := r.face(b.FontSize, b.TextColor)
	if err != nil {
		return err
	}
	metrics := face.Metrics()
	cursorY := b.TextY
	for _, line := range b.Lines {
		// 基线位置：行顶部加上字体上升部
		ctx.DrawText(b.TextX, cursorY+metrics.Ascent, canvas.NewTextLine(face, line.Content, canvas.Left))
		cursorY += line.Height + lineSpacing
	}
	return nil
}

func (r *Renderer) drawLabel(ctx *canvas.Context, l layout.Label) error {
	if l.Text == "" {
		return nil
	}
	face, err := r.face(l.FontSize, l.Color)
	if err != nil {
		return err
	}
	metrics := face.Metrics()
	ctx.DrawText(l.X, l.Y+metrics.Ascent, canvas.NewTextLine(face, l.Text, canvas.Left))
	return nil
}

func (r *Renderer) face(size float64, col layout.Color) (*canvas.FontFace, error) {
	if size <= 0 {
		return nil, fmt.Errorf("字号必须为正: %g", size)
	}
	r.fontMu.Lock()
	defer r.fontMu.Unlock()

	key := faceKey{size: size, color: col}
	if face, ok := r.faces[key]; ok {
		return face, nil
	}
	family, err := r.ensureFamilyLocked()
	if err != nil {
		return nil, err
	}
	face := family.Face(size, colorFromLayout(col), canvas.FontRegular, canvas.FontNormal)
	r.faces[key] = face
	return face, nil
}

// ensureFamilyLocked 按顺序尝试候选字体文件，首个可加载者生效；
// 全部失败时加载内置回退字体。调用方必须持有 fontMu。
func (r *Renderer) ensureFamilyLocked() (*canvas.FontFamily, error) {
	if r.family != nil {
		return r.family, nil
	}

	for _, path := range r.fontPaths {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		family := canvas.NewFontFamily("ChatBubble")
		if err := family.LoadFont(data, 0, canvas.FontRegular); err != nil {
			continue
		}
		r.family = family
		return family, nil
	}

	log.Printf("警告: 未找到可用字体文件，退回内置字体")
	family := canvas.NewFontFamily(fonts.FallbackName)
	if err := family.LoadFont(fonts.Fallback(), 0, canvas.FontRegular); err != nil {
		return nil, fmt.Errorf("加载内置回退字体失败: %w", err)
	}
	r.family = family
	r.usedFallback = true
	return family, nil
}

func colorFromLayout(c layout.Color) color.Color {
	return canvas.RGBA(float64(c.R)/255.0, float64(c.G)/255.0, float64(c.B)/255.0, 1.0)
}
