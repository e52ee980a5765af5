package sysinfo

import (
	"os/exec"
	"runtime"
	"strings"
)

// GPU holds detected accelerator information, shown by `gaiat doctor`.
type GPU struct {
	Vendor string
	Model  string
	VRAM   string
}

// DetectGPUs returns accelerators visible on the current system.
func DetectGPUs() []GPU {
	switch runtime.GOOS {
	case "linux":
		return detectLinuxGPUs()
	case "darwin":
		return detectDarwinGPUs()
	}
	return nil
}

func detectLinuxGPUs() []GPU {
	if out, err := exec.Command("nvidia-smi", "--query-gpu=name,memory.total", "--format=csv,noheader,nounits").Output(); err == nil {
		var gpus []GPU
		for _, line := range strings.Split(strings.TrimSpace(string(out)), "\n") {
			parts := strings.Split(line, ", ")
			if len(parts) >= 2 {
				gpus = append(gpus, GPU{
					Vendor: "NVIDIA",
					Model:  strings.TrimSpace(parts[0]),
					VRAM:   strings.TrimSpace(parts[1]) + " MiB",
				})
			}
		}
		return gpus
	}

	var gpus []GPU
	if out, err := exec.Command("lspci").Output(); err == nil {
		for _, line := range strings.Split(string(out), "\n") {
			lower := strings.ToLower(line)
			if strings.Contains(lower, "vga") || strings.Contains(lower, "3d") {
				gpus = append(gpus, GPU{Model: strings.TrimSpace(line)})
			}
		}
	}
	return gpus
}

func detectDarwinGPUs() []GPU {
	out, err := exec.Command("system_profiler", "SPDisplaysDataType").Output()
	if err != nil {
		return nil
	}

	var gpus []GPU
	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "Chipset Model:") || strings.HasPrefix(line, "Chip:") {
			model := strings.TrimSpace(line[strings.Index(line, ":")+1:])
			gpu := GPU{Model: model}
			if strings.Contains(strings.ToLower(model), "apple") {
				gpu.Vendor = "Apple"
				gpu.VRAM = "unified"
			}
			gpus = append(gpus, gpu)
		}
	}
	return gpus
}
