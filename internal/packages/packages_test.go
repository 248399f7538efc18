package packages

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/DanZai233/LPH/api/types"
)

// fakeRunner serves canned output per command name and fails everything else.
func fakeRunner(outputs map[string]string) Runner {
	return func(name string, args ...string) (string, error) {
		if out, ok := outputs[name]; ok {
			return out, nil
		}
		return "", fmt.Errorf("%s: executable file not found in $PATH", name)
	}
}

func TestCollectIsolatesFailures(t *testing.T) {
	c := NewCollector(fakeRunner(map[string]string{
		"dpkg-query": "curl|8.5.0|command line tool for transferring data\nvim|9.1|Vi IMproved\n",
		"snap":       "Name  Version  Rev  Tracking  Publisher  Notes\nfirefox  128.0  4173  latest/stable  mozilla  -\n",
	}))

	got := c.Collect()
	if len(got) != 3 {
		t.Fatalf("Collect() returned %d packages, want 3: %+v", len(got), got)
	}

	want := []types.Package{
		{ID: "apt-curl-0", Name: "curl", Version: "8.5.0", Description: "command line tool for transferring data", Manager: types.APT},
		{ID: "apt-vim-1", Name: "vim", Version: "9.1", Description: "Vi IMproved", Manager: types.APT},
		{ID: "snap-firefox-0", Name: "firefox", Version: "128.0", Description: "-", Manager: types.SNAP},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Collect() = %+v, want %+v", got, want)
	}
}

func TestCollectAllFailing(t *testing.T) {
	c := NewCollector(func(name string, args ...string) (string, error) {
		return "", errors.New("not found")
	})
	if got := c.Collect(); len(got) != 0 {
		t.Errorf("Collect() = %+v, want empty", got)
	}
}

func TestYumFallsBackToRPM(t *testing.T) {
	c := NewCollector(fakeRunner(map[string]string{
		"rpm": "bash|5.2.26|The GNU Bourne Again shell\n",
	}))

	got, err := c.yum()
	if err != nil {
		t.Fatalf("yum() error = %v", err)
	}
	if len(got) != 1 || got[0].Name != "bash" || got[0].Manager != types.YUM {
		t.Errorf("yum() = %+v", got)
	}
}

func TestPacman(t *testing.T) {
	c := NewCollector(fakeRunner(map[string]string{
		"pacman": "linux 6.9.arch1-1\npacman 6.1.0-3\n",
	}))

	got, err := c.pacman()
	if err != nil {
		t.Fatalf("pacman() error = %v", err)
	}
	want := []types.Package{
		{ID: "pacman-linux-0", Name: "linux", Version: "6.9.arch1-1", Description: "Arch Linux package", Manager: types.PACMAN},
		{ID: "pacman-pacman-1", Name: "pacman", Version: "6.1.0-3", Description: "Arch Linux package", Manager: types.PACMAN},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("pacman() = %+v, want %+v", got, want)
	}
}

func TestFlatpakMissingVersion(t *testing.T) {
	c := NewCollector(fakeRunner(map[string]string{
		"flatpak": "org.gimp.GIMP\norg.mozilla.firefox 128.0\n",
	}))

	got, err := c.flatpak()
	if err != nil {
		t.Fatalf("flatpak() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("flatpak() = %+v", got)
	}
	if got[0].Version != "Unknown" {
		t.Errorf("version without column = %q, want Unknown", got[0].Version)
	}
	if got[1].Version != "128.0" {
		t.Errorf("version = %q, want 128.0", got[1].Version)
	}
}

func TestParseDelimited(t *testing.T) {
	tests := []struct {
		name string
		out  string
		want []types.Package
	}{
		{
			name: "missing version and description defaulted",
			out:  "mystery||\n",
			want: []types.Package{
				{ID: "apt-mystery-0", Name: "mystery", Version: "Unknown", Description: "No description", Manager: types.APT},
			},
		},
		{
			name: "pipes inside description survive",
			out:  "tool|1.0|does a|b|c\n",
			want: []types.Package{
				{ID: "apt-tool-0", Name: "tool", Version: "1.0", Description: "does a|b|c", Manager: types.APT},
			},
		},
		{
			name: "garbage lines skipped",
			out:  "no-delimiter-here\n\n",
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseDelimited(tt.out, types.APT, "apt")
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseDelimited() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSearch(t *testing.T) {
	pkgs := []types.Package{
		{Name: "curl", Description: "command line tool for transferring data"},
		{Name: "vim", Description: "Vi IMproved"},
		{Name: "httpie", Description: "modern HTTP client"},
	}

	tests := []struct {
		query string
		want  []string
	}{
		{"curl", []string{"curl"}},
		{"HTTP", []string{"httpie"}},
		{"transferring", []string{"curl"}},
		{"zzz", nil},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			var names []string
			for _, pkg := range Search(pkgs, tt.query) {
				names = append(names, pkg.Name)
			}
			if !reflect.DeepEqual(names, tt.want) {
				t.Errorf("Search(%q) = %v, want %v", tt.query, names, tt.want)
			}
		})
	}
}

func TestFilterByManager(t *testing.T) {
	pkgs := []types.Package{
		{Name: "curl", Manager: types.APT},
		{Name: "firefox", Manager: types.SNAP},
	}

	if got := FilterByManager(pkgs, "ALL"); len(got) != 2 {
		t.Errorf("FilterByManager(ALL) = %+v", got)
	}
	if got := FilterByManager(pkgs, ""); len(got) != 2 {
		t.Errorf("FilterByManager(\"\") = %+v", got)
	}
	if got := FilterByManager(pkgs, "SNAP"); len(got) != 1 || got[0].Name != "firefox" {
		t.Errorf("FilterByManager(SNAP) = %+v", got)
	}
	if got := FilterByManager(pkgs, "BREW"); len(got) != 0 {
		t.Errorf("FilterByManager(BREW) = %+v", got)
	}
}
