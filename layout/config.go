package layout

import "fmt"

// Config 汇总布局所需的全部数值参数（单位均为 px），可由 YAML 配置覆盖。
// 默认值沿用视觉调参结果，不附带更多语义。
type Config struct {
	CanvasWidth  float64 `yaml:"canvas_width"`
	CanvasHeight float64 `yaml:"canvas_height"`

	BubbleFontSize float64 `yaml:"bubble_font_size"`
	TimeFontSize   float64 `yaml:"time_font_size"`

	BottomPadding float64 `yaml:"bottom_padding"`
	LeftMargin    float64 `yaml:"left_margin"`
	RightMargin   float64 `yaml:"right_margin"`

	// 不同发送方相邻气泡的间距与同一发送方连续气泡的间距。
	BubbleGap     float64 `yaml:"bubble_gap"`
	SamePersonGap float64 `yaml:"same_person_gap"`

	CornerRadius  float64 `yaml:"corner_radius"`
	BubblePadding float64 `yaml:"bubble_padding"`
	LineSpacing   float64 `yaml:"line_spacing"`

	// 气泡最大宽度占画布宽度的比例。
	MaxBubbleFraction float64 `yaml:"max_bubble_fraction"`

	// 时间戳到最旧气泡顶边、已读提示到最新气泡底边的距离。
	TimeGap float64 `yaml:"time_gap"`
	SeenGap float64 `yaml:"seen_gap"`

	// 按顺序尝试的字体文件，全部失败时渲染器退回内置字体。
	FontPaths []string `yaml:"fonts"`
}

// DefaultConfig 返回默认参数。
func DefaultConfig() Config {
	return Config{
		CanvasWidth:       1290,
		CanvasHeight:      1290,
		BubbleFontSize:    36,
		TimeFontSize:      28,
		BottomPadding:     65,
		LeftMargin:        108,
		RightMargin:       108,
		BubbleGap:         22,
		SamePersonGap:     2,
		CornerRadius:      50,
		BubblePadding:     32,
		LineSpacing:       8,
		MaxBubbleFraction: 0.65,
		TimeGap:           50,
		SeenGap:           10,
		FontPaths: []string{
			"fonts/sf-pro-text-regular.ttf",
			"fonts/SFUIText-Regular.ttf",
			"fonts/SanFrancisco.ttf",
			"fonts/Helvetica.ttf",
			"fonts/HelveticaNeue.ttf",
		},
	}
}

// Validate 检查参数之间的基本约束，布局引擎假定这些约束成立且不做夹取。
func (c Config) Validate() error {
	if c.CanvasWidth <= 0 || c.CanvasHeight <= 0 {
		return fmt.Errorf("画布尺寸必须为正: %gx%g", c.CanvasWidth, c.CanvasHeight)
	}
	if c.MaxBubbleFraction <= 0 || c.MaxBubbleFraction > 1 {
		return fmt.Errorf("max_bubble_fraction 必须在 (0,1] 内: %g", c.MaxBubbleFraction)
	}
	if c.MaxTextWidth() <= 0 {
		return fmt.Errorf("气泡内边距过大，文本宽度预算为非正值")
	}
	if c.LeftMargin+c.MaxBubbleWidth() > c.CanvasWidth || c.RightMargin+c.MaxBubbleWidth() > c.CanvasWidth {
		return fmt.Errorf("边距与气泡最大宽度之和超出画布宽度")
	}
	return nil
}

// MaxTextWidth 返回折行用的文本宽度预算。
func (c Config) MaxTextWidth() float64 {
	return float64(int(c.CanvasWidth*c.MaxBubbleFraction)) - 2*c.BubblePadding
}

// MaxBubbleWidth 返回单个气泡可能达到的最大宽度。
func (c Config) MaxBubbleWidth() float64 {
	return c.MaxTextWidth() + 2*c.BubblePadding
}
