package layout

import "strings"

// Wrap 采用贪心算法把文本按空白拆成不超过 maxWidth 的行。
// 规则：候选行超宽且累积器中已有词时提交当前行；单个超宽的词独占一行，
// 不做词内拆分。空文本返回零行，由调用方按一行高的退化气泡处理。
// measure 返回文本在目标字号下的宽高；Wrap 自身无状态，可跨对话复用。
func Wrap(text string, maxWidth float64, measure func(string) (float64, float64, error)) ([]TextLine, error) {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil, nil
	}

	var lines []TextLine
	current := ""
	commit := func() error {
		w, h, err := measure(current)
		if err != nil {
			return err
		}
		lines = append(lines, TextLine{Content: current, Width: w, Height: h})
		return nil
	}

	for _, word := range words {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		w, _, err := measure(candidate)
		if err != nil {
			return nil, err
		}
		if w <= maxWidth || current == "" {
			current = candidate
			continue
		}
		if err := commit(); err != nil {
			return nil, err
		}
		current = word
	}
	if err := commit(); err != nil {
		return nil, err
	}
	return lines, nil
}
