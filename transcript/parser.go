// Package transcript parses plain-text chat transcripts and segments them
// into conversations. Lines starting with "A: " or "B: " are turns; every
// other line (blank lines included) is a delimiter that closes the current
// conversation.
package transcript

import (
	"io"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/ByLCY/chatshot/layout"
)

var (
	transcriptLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Speaker", Pattern: `[AB]: `},
		{Name: "Space", Pattern: `[ \t\r]+`},
		{Name: "Text", Pattern: `[^\r\n]+`},
		{Name: "Newline", Pattern: `\n`},
	})

	transcriptParser = participle.MustBuild[Transcript](
		participle.Lexer(transcriptLexer),
		participle.Elide("Space"),
	)
)

// Transcript is the root AST node for a transcript file.
type Transcript struct {
	Pos   lexer.Position `parser:"" json:"-"`
	Lines []*Line        `parser:"@@*"`
}

// Line is either a turn ("A: "/"B: " prefixed) or a delimiter line.
type Line struct {
	Turn  *TurnLine  `parser:"  @@"`
	Noise *NoiseLine `parser:"| @@"`
}

// TurnLine captures the speaker prefix and the remainder of the line.
// Chunks may contain further Speaker tokens: "A: B: hi" is a turn by A
// whose text starts with "B: ".
type TurnLine struct {
	Speaker string   `parser:"@Speaker"`
	Chunks  []string `parser:"( @Speaker | @Text )* Newline?"`
}

// NoiseLine is any non-turn line, kept only for its delimiter role.
type NoiseLine struct {
	Text string `parser:"( @Text Newline? | Newline )"`
}

// Parse parses transcript content from an io.Reader.
func Parse(r io.Reader) (*Transcript, error) {
	return transcriptParser.Parse("", r)
}

// ParseString parses transcript content from a string.
func ParseString(input string) (*Transcript, error) {
	return transcriptParser.ParseString("", input)
}

// turn converts a parsed turn line into the layout data model.
func (t *TurnLine) turn() layout.Turn {
	speaker := layout.SpeakerA
	if strings.HasPrefix(t.Speaker, "B") {
		speaker = layout.SpeakerB
	}
	return layout.Turn{
		Speaker: speaker,
		Text:    strings.TrimSpace(strings.Join(t.Chunks, "")),
	}
}

// Segment groups consecutive turn lines into conversations. Delimiter lines
// close the conversation in progress; a trailing conversation at end of
// input is still emitted. Zero-turn conversations are never emitted.
func Segment(t *Transcript) []layout.Conversation {
	var convos []layout.Conversation
	var current layout.Conversation
	flush := func() {
		if len(current) > 0 {
			convos = append(convos, current)
			current = nil
		}
	}

	for _, line := range t.Lines {
		if line.Turn != nil {
			current = append(current, line.Turn.turn())
			continue
		}
		flush()
	}
	flush()
	return convos
}

// Conversations parses and segments in one step.
func Conversations(r io.Reader) ([]layout.Conversation, error) {
	t, err := Parse(r)
	if err != nil {
		return nil, err
	}
	return Segment(t), nil
}
