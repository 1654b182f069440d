package layout

import (
	"fmt"
	"math/rand"
	"time"
)

const (
	bubbleOutlineWidth = 3.0
	seenText           = "Seen just now"
	// 空消息探测行高时使用的占位文本。
	heightProbe = "Test"
)

// Build 对单个对话做几何布局：自底向上放置气泡，并附加时间戳与已读标注。
// 游标从画布底部减去 BottomPadding 开始，逐条消息向上推进；同一发送方的
// 连续气泡使用 SamePersonGap，发送方切换时使用 BubbleGap。
// 对话必须非空，空对话视为调用方违反约定。
func Build(convo Conversation, cfg Config, opts BuildOptions) (*Result, error) {
	if len(convo) == 0 {
		return nil, fmt.Errorf("layout: 对话不能为空")
	}
	if opts.Measurer == nil {
		return nil, fmt.Errorf("layout: 缺少文本度量后端 Measurer")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	res := &Result{
		Width:       cfg.CanvasWidth,
		Height:      cfg.CanvasHeight,
		Background:  ColorBackground,
		LineSpacing: cfg.LineSpacing,
		Bubbles:     make([]Bubble, 0, len(convo)),
	}

	maxTextWidth := cfg.MaxTextWidth()
	cursorY := cfg.CanvasHeight - cfg.BottomPadding

	var newest, oldest Box
	// 从最新一条开始向上布局。
	for i := len(convo) - 1; i >= 0; i-- {
		turn := convo[i]
		bubble, err := placeBubble(turn, cursorY, maxTextWidth, cfg, opts.Measurer)
		if err != nil {
			return nil, err
		}
		res.Bubbles = append(res.Bubbles, bubble)

		if i == len(convo)-1 {
			newest = bubble.Box
		}
		if i == 0 {
			oldest = bubble.Box
		}

		// 下一条（时间上更早）与当前同人时收紧间距，以体现连续消息成组。
		gap := cfg.BubbleGap
		if i > 0 && convo[i-1].Speaker == turn.Speaker {
			gap = cfg.SamePersonGap
		}
		cursorY = bubble.Box.Top - gap
	}

	ts, err := placeTimestamp(randomClock(rng), oldest, cfg, opts.Measurer)
	if err != nil {
		return nil, err
	}
	res.Timestamp = ts

	if convo[len(convo)-1].Speaker == SpeakerB {
		seen, err := placeSeen(newest, cfg, opts.Measurer)
		if err != nil {
			return nil, err
		}
		res.Seen = &seen
	}

	return res, nil
}

// placeBubble 折行并计算单个气泡的几何与配色，bottom 固定为当前游标。
func placeBubble(turn Turn, bottom, maxTextWidth float64, cfg Config, m Measurer) (Bubble, error) {
	lines, err := Wrap(turn.Text, maxTextWidth, func(s string) (float64, float64, error) {
		return m.Measure(s, cfg.BubbleFontSize)
	})
	if err != nil {
		return Bubble{}, err
	}

	var textWidth, textHeight float64
	if len(lines) == 0 {
		// 空消息：探测占位字形的高度，得到一行高的退化气泡。
		_, probeH, err := m.Measure(heightProbe, cfg.BubbleFontSize)
		if err != nil {
			return Bubble{}, err
		}
		textHeight = probeH
	} else {
		for _, ln := range lines {
			if ln.Width > textWidth {
				textWidth = ln.Width
			}
			textHeight += ln.Height
		}
		textHeight += cfg.LineSpacing * float64(len(lines)-1)
	}

	width := textWidth + 2*cfg.BubblePadding
	height := textHeight + 2*cfg.BubblePadding
	box := Box{Top: bottom - height, Bottom: bottom}

	b := Bubble{
		Speaker:      turn.Speaker,
		OutlineWidth: bubbleOutlineWidth,
		CornerRadius: cfg.CornerRadius,
		Lines:        lines,
		FontSize:     cfg.BubbleFontSize,
		TextColor:    ColorText,
	}
	switch turn.Speaker {
	case SpeakerA:
		box.Left = cfg.LeftMargin
		box.Right = box.Left + width
		b.Fill, b.Outline = bubbleFillA, bubbleOutlineA
	default:
		box.Right = cfg.CanvasWidth - cfg.RightMargin
		box.Left = box.Right - width
		b.Fill, b.Outline = bubbleFillB, bubbleOutlineB
	}
	b.Box = box
	b.TextX = box.Left + cfg.BubblePadding
	b.TextY = box.Top + cfg.BubblePadding/2
	return b, nil
}

// placeTimestamp 把时间标注水平居中放在最旧气泡上方 TimeGap + 标注高度处。
func placeTimestamp(clock string, oldest Box, cfg Config, m Measurer) (Label, error) {
	w, h, err := m.Measure(clock, cfg.TimeFontSize)
	if err != nil {
		return Label{}, err
	}
	return Label{
		Text:     clock,
		X:        cfg.CanvasWidth/2 - w/2,
		Y:        oldest.Top - h - cfg.TimeGap,
		Width:    w,
		Height:   h,
		FontSize: cfg.TimeFontSize,
		Color:    ColorLabel,
	}, nil
}

// placeSeen 把已读提示右对齐放在最新气泡下方 SeenGap 处。
func placeSeen(newest Box, cfg Config, m Measurer) (Label, error) {
	w, h, err := m.Measure(seenText, cfg.TimeFontSize)
	if err != nil {
		return Label{}, err
	}
	return Label{
		Text:     seenText,
		X:        newest.Right - w,
		Y:        newest.Bottom + cfg.SeenGap,
		Width:    w,
		Height:   h,
		FontSize: cfg.TimeFontSize,
		Color:    ColorLabel,
	}, nil
}

// randomClock 生成 HH:MM（24 小时制）装饰性时间，两个字段各自均匀分布。
func randomClock(rng *rand.Rand) string {
	return fmt.Sprintf("%02d:%02d", rng.Intn(24), rng.Intn(60))
}
