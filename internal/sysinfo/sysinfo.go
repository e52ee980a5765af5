package sysinfo

import (
	"fmt"
	"math"
	"os"
	"os/exec"
	"runtime"
	"strconv"
	"strings"
)

// Profile holds the measured host resources used for compatibility checks.
// It is computed once per invocation and read-only afterwards.
type Profile struct {
	TotalRAMGB float64 // rounded to one decimal
}

// Detect measures the host. A detection failure yields a zero profile rather
// than an error; every model then reports as incompatible, which is the safe
// direction.
func Detect() Profile {
	bytes := totalMemBytes()
	return Profile{TotalRAMGB: RoundGB(bytes)}
}

// RoundGB converts bytes to gigabytes rounded to one decimal.
func RoundGB(bytes int64) float64 {
	gb := float64(bytes) / (1024 * 1024 * 1024)
	return math.Round(gb*10) / 10
}

func totalMemBytes() int64 {
	switch runtime.GOOS {
	case "linux":
		return linuxMemBytes()
	case "darwin":
		if out, err := exec.Command("sysctl", "-n", "hw.memsize").Output(); err == nil {
			if v, err := strconv.ParseInt(strings.TrimSpace(string(out)), 10, 64); err == nil {
				return v
			}
		}
	}
	return 0
}

func linuxMemBytes() int64 {
	data, err := os.ReadFile("/proc/meminfo")
	if err != nil {
		return 0
	}
	return ParseMeminfo(string(data))
}

// ParseMeminfo extracts MemTotal from /proc/meminfo content.
func ParseMeminfo(content string) int64 {
	for _, line := range strings.Split(content, "\n") {
		if !strings.HasPrefix(line, "MemTotal:") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return 0
		}
		kb, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			return 0
		}
		return kb * 1024
	}
	return 0
}

// String renders the profile for status output.
func (p Profile) String() string {
	return fmt.Sprintf("%.1f GB RAM", p.TotalRAMGB)
}
