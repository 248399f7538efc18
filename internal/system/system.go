// Package system reports host facts for the dashboard: distribution,
// kernel, shell, uptime, disk usage and which package managers exist.
package system

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/DanZai233/LPH/api/types"
	"github.com/DanZai233/LPH/internal/packages"
)

var (
	prettyNameRE = regexp.MustCompile(`PRETTY_NAME="(.+)"`)
	versionRE    = regexp.MustCompile(`(?i)version\s+([\d.]+)`)
)

// managerBinary maps each manager to the binary probed for availability.
var managerBinary = map[types.PackageManager]string{
	types.APT:     "apt",
	types.YUM:     "yum",
	types.PACMAN:  "pacman",
	types.SNAP:    "snap",
	types.FLATPAK: "flatpak",
	types.BREW:    "brew",
}

// Prober answers system queries, shelling out with the given runner.
type Prober struct {
	run packages.Runner
}

// NewProber returns a prober using the given runner, or the default one
// if nil.
func NewProber(run packages.Runner) *Prober {
	if run == nil {
		run = packages.Run
	}
	return &Prober{run: run}
}

// Info gathers the SystemInfo payload. Every probe degrades to a
// placeholder on failure; Info itself never fails.
func (p *Prober) Info() types.SystemInfo {
	info := types.SystemInfo{
		OS:     "Linux",
		Kernel: "Unknown",
		Shell:  "/bin/bash",
		Uptime: "Unknown",
	}

	if data, err := os.ReadFile("/etc/os-release"); err == nil {
		if match := prettyNameRE.FindSubmatch(data); match != nil {
			info.OS = string(match[1])
		}
	}

	if out, err := p.run("uname", "-r"); err == nil {
		info.Kernel = strings.TrimSpace(out)
	}

	if shell := os.Getenv("SHELL"); shell != "" {
		info.Shell = shell
	}

	if data, err := os.ReadFile("/proc/uptime"); err == nil {
		info.Uptime = formatUptime(string(data))
	}

	for _, manager := range types.PackageManagers {
		if _, err := p.run(managerBinary[manager], "--version"); err == nil {
			info.Managers = append(info.Managers, manager)
		}
	}

	return info
}

// Status probes every manager binary and reports availability plus the
// version parsed from its --version banner.
func (p *Prober) Status() []types.PackageManagerStatus {
	var statuses []types.PackageManagerStatus
	for _, manager := range types.PackageManagers {
		out, err := p.run(managerBinary[manager], "--version")
		if err != nil {
			statuses = append(statuses, types.PackageManagerStatus{Name: manager})
			continue
		}
		status := types.PackageManagerStatus{Name: manager, Available: true}
		if match := versionRE.FindStringSubmatch(out); match != nil {
			status.Version = match[1]
		}
		statuses = append(statuses, status)
	}
	return statuses
}

// DiskUsage returns the root filesystem usage percentage from df.
func (p *Prober) DiskUsage() string {
	out, err := p.run("df", "-h", "/")
	if err != nil {
		return "Unknown"
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) < 2 {
		return "Unknown"
	}
	fields := strings.Fields(lines[len(lines)-1])
	if len(fields) < 5 {
		return "Unknown"
	}
	return fields[4]
}

// formatUptime turns the first /proc/uptime column into "N days, M hours".
func formatUptime(raw string) string {
	first, _, _ := strings.Cut(strings.TrimSpace(raw), " ")
	seconds, err := strconv.ParseFloat(first, 64)
	if err != nil {
		return "Unknown"
	}
	days := int(seconds) / 86400
	hours := (int(seconds) % 86400) / 3600
	return fmt.Sprintf("%d days, %d hours", days, hours)
}
