package binding

import (
	"encoding/json"
	"testing"
)

func TestInterpolate(t *testing.T) {
	var data any
	if err := json.Unmarshal([]byte(`{"name":"Lin","items":[{"id":7},{"id":9}]}`), &data); err != nil {
		t.Fatalf("测试数据解析失败: %v", err)
	}

	cases := []struct {
		in   string
		want string
	}{
		{"hi ${name}", "hi Lin"},
		{"id=${items[1].id}", "id=9"},
		{"missing ${nope.deep}", "missing ${nope.deep}"},
		{"bad index ${items[5].id}", "bad index ${items[5].id}"},
		{"no placeholder", "no placeholder"},
	}
	for _, c := range cases {
		if got := Interpolate(c.in, data); got != c.want {
			t.Fatalf("Interpolate(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestInterpolateNilData(t *testing.T) {
	if got := Interpolate("keep ${name}", nil); got != "keep ${name}" {
		t.Fatalf("data 为空时应原样返回: %q", got)
	}
}
