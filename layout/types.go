package layout

// 该文件定义对话数据模型与布局结果，供布局计算、渲染与调试 JSON 共用。

// Speaker 标识一条消息的发送方。对话只有 A、B 两方。
type Speaker int

const (
	SpeakerA Speaker = iota // 左侧气泡
	SpeakerB                // 右侧气泡
)

// String 返回转写文本中使用的前缀字母。
func (s Speaker) String() string {
	if s == SpeakerB {
		return "B"
	}
	return "A"
}

// MarshalText 使调试 JSON 中的 speaker 字段可读。
func (s Speaker) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// Turn 表示对话中的一条消息，解析后不再修改。
type Turn struct {
	Speaker Speaker `json:"speaker"`
	Text    string  `json:"text"`
}

// Conversation 是按时间顺序排列的消息序列（最早在前），由分段器保证非空。
type Conversation []Turn

// Color 采用 0-255 的 RGB 数值。
type Color struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// 气泡与标注使用的固定配色，取自 iOS 风格的对话界面。
var (
	ColorBackground = Color{255, 255, 255}
	ColorText       = Color{0, 0, 0}
	ColorLabel      = Color{128, 128, 128}

	bubbleFillA    = Color{255, 255, 255}
	bubbleOutlineA = Color{230, 230, 230}
	bubbleFillB    = Color{240, 240, 240}
	bubbleOutlineB = Color{255, 255, 255}
)

// TextLine 表示折行后的一行文本及其度量（单位：px）。
type TextLine struct {
	Content string  `json:"content"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
}

// Box 是画布坐标系（原点左上）中的矩形，Right > Left 且 Bottom > Top。
type Box struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
}

// Width 返回矩形宽度。
func (b Box) Width() float64 { return b.Right - b.Left }

// Height 返回矩形高度。
func (b Box) Height() float64 { return b.Bottom - b.Top }

// Bubble 是一条消息最终的绘制描述：几何、配色与折行文本。
type Bubble struct {
	Box          Box        `json:"box"`
	Speaker      Speaker    `json:"speaker"`
	Fill         Color      `json:"fill"`
	Outline      Color      `json:"outline"`
	OutlineWidth float64    `json:"outlineWidth"`
	CornerRadius float64    `json:"cornerRadius"`
	Lines        []TextLine `json:"lines"`
	// 文本块左上角（气泡内边距已计入）。
	TextX     float64 `json:"textX"`
	TextY     float64 `json:"textY"`
	FontSize  float64 `json:"fontSize"`
	TextColor Color   `json:"textColor"`
}

// Label 是气泡之外的标注文本（时间戳、已读提示），坐标为文本左上角。
type Label struct {
	Text     string  `json:"text"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	FontSize float64 `json:"fontSize"`
	Color    Color   `json:"color"`
}

// Result 保存一轮对话布局后的全部绘制信息。
// Bubbles 按处理顺序排列：最新的消息在前（画布最底部）。
type Result struct {
	Width       float64  `json:"width"`
	Height      float64  `json:"height"`
	Background  Color    `json:"background"`
	LineSpacing float64  `json:"lineSpacing"`
	Bubbles     []Bubble `json:"bubbles"`
	Timestamp   Label    `json:"timestamp"`
	Seen        *Label   `json:"seen,omitempty"`
}
