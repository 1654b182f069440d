package transcript

import (
	"testing"

	"github.com/ByLCY/chatshot/layout"
)

func segment(t *testing.T, input string) []layout.Conversation {
	t.Helper()
	tr, err := ParseString(input)
	if err != nil {
		t.Fatalf("解析转写文本失败: %v", err)
	}
	return Segment(tr)
}

func TestSegmentationRoundTrip(t *testing.T) {
	convos := segment(t, "A: hi\nB: yo\n\nA: bye\n")
	if len(convos) != 2 {
		t.Fatalf("期望 2 个对话，实际 %d", len(convos))
	}
	want := []layout.Conversation{
		{{Speaker: layout.SpeakerA, Text: "hi"}, {Speaker: layout.SpeakerB, Text: "yo"}},
		{{Speaker: layout.SpeakerA, Text: "bye"}},
	}
	for i, convo := range want {
		if len(convos[i]) != len(convo) {
			t.Fatalf("对话 %d 消息数不符: got=%d want=%d", i, len(convos[i]), len(convo))
		}
		for j, turn := range convo {
			if convos[i][j] != turn {
				t.Fatalf("对话 %d 消息 %d 不符: got=%+v want=%+v", i, j, convos[i][j], turn)
			}
		}
	}
}

func TestDelimiterLineClosesConversation(t *testing.T) {
	convos := segment(t, "A: one\n-- break --\nB: two\n")
	if len(convos) != 2 {
		t.Fatalf("分隔行应切分对话，实际 %d 个", len(convos))
	}
	if convos[0][0].Text != "one" || convos[1][0].Text != "two" {
		t.Fatalf("切分内容不符: %+v", convos)
	}
}

func TestPrefixWithoutSpaceIsDelimiter(t *testing.T) {
	// "B:x" 缺少前缀后的空格，按分隔行处理
	convos := segment(t, "A: one\nB:x\nA: two\n")
	if len(convos) != 2 {
		t.Fatalf("期望 2 个对话，实际 %d", len(convos))
	}
}

func TestTrailingConversationEmitted(t *testing.T) {
	convos := segment(t, "A: last")
	if len(convos) != 1 || convos[0][0].Text != "last" {
		t.Fatalf("文件末尾的对话应被输出: %+v", convos)
	}
}

func TestLeadingWhitespaceBeforePrefix(t *testing.T) {
	convos := segment(t, "  A: hi\n")
	if len(convos) != 1 || convos[0][0].Speaker != layout.SpeakerA || convos[0][0].Text != "hi" {
		t.Fatalf("前导空白不应影响前缀识别: %+v", convos)
	}
}

func TestSpeakerPrefixInsideText(t *testing.T) {
	convos := segment(t, "A: B: hello\n")
	if len(convos) != 1 || len(convos[0]) != 1 {
		t.Fatalf("期望 1 个对话 1 条消息: %+v", convos)
	}
	turn := convos[0][0]
	if turn.Speaker != layout.SpeakerA || turn.Text != "B: hello" {
		t.Fatalf("文本中的前缀应保留: %+v", turn)
	}
}

func TestEmptyTextTurnKept(t *testing.T) {
	convos := segment(t, "A: \nB: yo\n")
	if len(convos) != 1 || len(convos[0]) != 2 {
		t.Fatalf("空文本消息应保留在对话中: %+v", convos)
	}
	if convos[0][0].Text != "" {
		t.Fatalf("空文本消息的内容应为空: %q", convos[0][0].Text)
	}
}

func TestNoTurnsNoConversations(t *testing.T) {
	for _, input := range []string{"", "\n\n\n", "noise\nmore noise\n"} {
		if convos := segment(t, input); len(convos) != 0 {
			t.Fatalf("输入 %q 不应产生对话: %+v", input, convos)
		}
	}
}

func TestTurnTextTrimmed(t *testing.T) {
	convos := segment(t, "B: padded text   \n")
	if len(convos) != 1 {
		t.Fatalf("期望 1 个对话，实际 %d", len(convos))
	}
	if got := convos[0][0].Text; got != "padded text" {
		t.Fatalf("消息文本应去除首尾空白: %q", got)
	}
}
