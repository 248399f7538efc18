package system

import (
	"fmt"
	"testing"

	"github.com/DanZai233/LPH/api/types"
)

func TestStatus(t *testing.T) {
	banners := map[string]string{
		"apt":     "apt 2.7.14 (amd64)\n",
		"flatpak": "Flatpak version 1.14.4\n",
		"snap":    "snap    2.63\nsnapd   2.63\n",
		"brew":    "Homebrew 4.3.9\n",
	}
	p := NewProber(func(name string, args ...string) (string, error) {
		if out, ok := banners[name]; ok {
			return out, nil
		}
		return "", fmt.Errorf("%s: not found", name)
	})

	statuses := p.Status()
	if len(statuses) != len(types.PackageManagers) {
		t.Fatalf("Status() returned %d entries, want %d", len(statuses), len(types.PackageManagers))
	}

	byName := map[types.PackageManager]types.PackageManagerStatus{}
	for _, s := range statuses {
		byName[s.Name] = s
	}

	// "apt 2.7.14 (amd64)" has no "version" token so only availability
	// is reported
	if s := byName[types.APT]; !s.Available || s.Version != "" {
		t.Errorf("APT status = %+v", s)
	}
	if s := byName[types.YUM]; s.Available {
		t.Errorf("YUM should be unavailable: %+v", s)
	}
	if s := byName[types.SNAP]; !s.Available {
		t.Errorf("SNAP status = %+v", s)
	}
	if s := byName[types.FLATPAK]; !s.Available || s.Version != "1.14.4" {
		t.Errorf("FLATPAK status = %+v", s)
	}
	if s := byName[types.BREW]; !s.Available || s.Version != "" {
		t.Errorf("BREW status = %+v", s)
	}
}

func TestInfoDetectedManagers(t *testing.T) {
	p := NewProber(func(name string, args ...string) (string, error) {
		switch name {
		case "apt", "flatpak":
			return "ok", nil
		case "uname":
			return "6.8.0-45-generic\n", nil
		}
		return "", fmt.Errorf("%s: not found", name)
	})

	info := p.Info()
	if info.Kernel != "6.8.0-45-generic" {
		t.Errorf("Kernel = %q", info.Kernel)
	}
	want := []types.PackageManager{types.APT, types.FLATPAK}
	if len(info.Managers) != 2 || info.Managers[0] != want[0] || info.Managers[1] != want[1] {
		t.Errorf("Managers = %v, want %v", info.Managers, want)
	}
}

func TestDiskUsage(t *testing.T) {
	tests := []struct {
		name string
		out  string
		err  error
		want string
	}{
		{
			name: "normal df output",
			out:  "Filesystem      Size  Used Avail Use% Mounted on\n/dev/sda2       457G  198G  236G  46% /\n",
			want: "46%",
		},
		{
			name: "df fails",
			err:  fmt.Errorf("df: not found"),
			want: "Unknown",
		},
		{
			name: "truncated output",
			out:  "Filesystem\n",
			want: "Unknown",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewProber(func(name string, args ...string) (string, error) {
				return tt.out, tt.err
			})
			if got := p.DiskUsage(); got != tt.want {
				t.Errorf("DiskUsage() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatUptime(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"272986.33 1042923.21\n", "3 days, 3 hours"},
		{"3700.00 7000.00", "0 days, 1 hours"},
		{"garbage", "Unknown"},
	}
	for _, tt := range tests {
		if got := formatUptime(tt.raw); got != tt.want {
			t.Errorf("formatUptime(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}
