package display

import "testing"

func TestIsQuitKey(t *testing.T) {
	tests := []struct {
		name string
		key  int
		want bool
	}{
		{name: "q", key: 'q', want: true},
		{name: "escape", key: 27, want: true},
		{name: "q with modifier bits", key: 0x100000 | 'q', want: true},
		{name: "uppercase Q", key: 'Q', want: false},
		{name: "space", key: ' ', want: false},
		{name: "no key", key: NoKey, want: false},
		{name: "zero", key: 0, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsQuitKey(tt.key); got != tt.want {
				t.Errorf("IsQuitKey(%d) = %v, want %v", tt.key, got, tt.want)
			}
		})
	}
}

func TestHeadless(t *testing.T) {
	var d Display = Headless{}

	d.Show(nil)
	for i := 0; i < 3; i++ {
		if key := d.PollKey(); key != NoKey {
			t.Errorf("PollKey() = %d, want NoKey", key)
		}
	}
	if err := d.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestMockDisplay_Script(t *testing.T) {
	m := NewMockDisplay(QuitAfter(3)...)

	want := []int{NoKey, NoKey, KeyQ, NoKey}
	for i, w := range want {
		if got := m.PollKey(); got != w {
			t.Errorf("poll %d = %d, want %d", i, got, w)
		}
	}
	if m.Polls() != len(want) {
		t.Errorf("Polls() = %d, want %d", m.Polls(), len(want))
	}
}
