package sysinfo

import "testing"

func TestRoundGB(t *testing.T) {
	tests := []struct {
		bytes int64
		want  float64
	}{
		{16 * 1024 * 1024 * 1024, 16.0},
		{17179869184, 16.0},
		{8254390272, 7.7},
		{0, 0},
	}

	for _, tt := range tests {
		if got := RoundGB(tt.bytes); got != tt.want {
			t.Errorf("RoundGB(%d) = %v, want %v", tt.bytes, got, tt.want)
		}
	}
}

func TestParseMeminfo(t *testing.T) {
	content := "MemTotal:       16384000 kB\nMemFree:         1024000 kB\n"
	want := int64(16384000) * 1024
	if got := ParseMeminfo(content); got != want {
		t.Errorf("ParseMeminfo = %d, want %d", got, want)
	}
}

func TestParseMeminfoMalformed(t *testing.T) {
	for _, content := range []string{"", "MemTotal:", "MemTotal: abc kB"} {
		if got := ParseMeminfo(content); got != 0 {
			t.Errorf("ParseMeminfo(%q) = %d, want 0", content, got)
		}
	}
}

func TestProfileString(t *testing.T) {
	p := Profile{TotalRAMGB: 15.6}
	if got := p.String(); got != "15.6 GB RAM" {
		t.Errorf("String() = %q", got)
	}
}
