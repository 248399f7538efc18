// Package packages collects installed-package inventories from the
// package managers present on the host. Nothing here is persisted; every
// collection pass shells out to the manager binaries and re-parses their
// output.
package packages

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/DanZai233/LPH/api/types"
	"github.com/apex/log"
)

// Runner executes a manager binary and returns its stdout. Collectors go
// through it so tests can substitute canned output per manager.
type Runner func(name string, args ...string) (string, error)

// Run is the default Runner.
func Run(name string, args ...string) (string, error) {
	out, err := exec.Command(name, args...).Output()
	if err != nil {
		return "", fmt.Errorf("%s: %w", name, err)
	}
	return string(out), nil
}

// Collector gathers packages from every manager it knows about.
type Collector struct {
	run Runner
}

// NewCollector returns a collector shelling out with the given runner,
// or the default one if nil.
func NewCollector(run Runner) *Collector {
	if run == nil {
		run = Run
	}
	return &Collector{run: run}
}

type managerCollector struct {
	manager types.PackageManager
	collect func(c *Collector) ([]types.Package, error)
}

var collectors = []managerCollector{
	{types.APT, (*Collector).apt},
	{types.YUM, (*Collector).yum},
	{types.PACMAN, (*Collector).pacman},
	{types.SNAP, (*Collector).snap},
	{types.FLATPAK, (*Collector).flatpak},
	{types.BREW, (*Collector).brew},
}

// Collect queries every manager and concatenates whatever succeeded. A
// missing or failing manager contributes nothing and never aborts the
// pass.
func (c *Collector) Collect() []types.Package {
	var all []types.Package
	for _, mc := range collectors {
		pkgs, err := mc.collect(c)
		if err != nil {
			log.WithField("manager", string(mc.manager)).Debugf("skipping manager: %v", err)
			continue
		}
		all = append(all, pkgs...)
	}
	return all
}

func (c *Collector) apt() ([]types.Package, error) {
	out, err := c.run("dpkg-query", "-W", "-f", "${Package}|${Version}|${Description}\n")
	if err != nil {
		return nil, err
	}
	return parseDelimited(out, types.APT, "apt"), nil
}

func (c *Collector) yum() ([]types.Package, error) {
	out, err := c.run("dnf", "repoquery", "--installed", "--qf", "%{name}|%{version}|%{summary}\n")
	if err != nil {
		// older hosts have rpm but no dnf
		out, err = c.run("rpm", "-qa", "--queryformat", "%{NAME}|%{VERSION}|%{SUMMARY}\n")
		if err != nil {
			return nil, err
		}
	}
	return parseDelimited(out, types.YUM, "yum"), nil
}

func (c *Collector) pacman() ([]types.Package, error) {
	out, err := c.run("pacman", "-Q")
	if err != nil {
		return nil, err
	}
	var pkgs []types.Package
	for i, line := range lines(out) {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		pkgs = append(pkgs, types.Package{
			ID:          packageID("pacman", fields[0], i),
			Name:        fields[0],
			Version:     fields[1],
			Description: "Arch Linux package",
			Manager:     types.PACMAN,
		})
	}
	return pkgs, nil
}

func (c *Collector) snap() ([]types.Package, error) {
	out, err := c.run("snap", "list")
	if err != nil {
		return nil, err
	}
	var pkgs []types.Package
	for i, line := range skipHeader(lines(out)) {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		description := "Snap package"
		if len(fields) > 5 {
			description = strings.Join(fields[5:], " ")
		}
		pkgs = append(pkgs, types.Package{
			ID:          packageID("snap", fields[0], i),
			Name:        fields[0],
			Version:     fields[1],
			Description: description,
			Manager:     types.SNAP,
		})
	}
	return pkgs, nil
}

func (c *Collector) flatpak() ([]types.Package, error) {
	out, err := c.run("flatpak", "list", "--columns=application,version")
	if err != nil {
		return nil, err
	}
	var pkgs []types.Package
	for i, line := range lines(out) {
		fields := strings.Fields(line)
		if len(fields) < 1 {
			continue
		}
		version := "Unknown"
		if len(fields) > 1 {
			version = fields[1]
		}
		pkgs = append(pkgs, types.Package{
			ID:          packageID("flatpak", fields[0], i),
			Name:        fields[0],
			Version:     version,
			Description: "Flatpak package",
			Manager:     types.FLATPAK,
		})
	}
	return pkgs, nil
}

func (c *Collector) brew() ([]types.Package, error) {
	out, err := c.run("brew", "list", "--versions")
	if err != nil {
		return nil, err
	}
	var pkgs []types.Package
	for i, line := range lines(out) {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		pkgs = append(pkgs, types.Package{
			ID:          packageID("brew", fields[0], i),
			Name:        fields[0],
			Version:     fields[1],
			Description: "Homebrew package",
			Manager:     types.BREW,
		})
	}
	return pkgs, nil
}

// Search matches the query case-insensitively against name or description.
func Search(pkgs []types.Package, query string) []types.Package {
	query = strings.ToLower(query)
	var out []types.Package
	for _, pkg := range pkgs {
		if strings.Contains(strings.ToLower(pkg.Name), query) ||
			strings.Contains(strings.ToLower(pkg.Description), query) {
			out = append(out, pkg)
		}
	}
	return out
}

// FilterByManager keeps packages from one manager; "ALL" keeps everything.
func FilterByManager(pkgs []types.Package, manager string) []types.Package {
	if manager == "" || manager == "ALL" {
		return pkgs
	}
	var out []types.Package
	for _, pkg := range pkgs {
		if string(pkg.Manager) == manager {
			out = append(out, pkg)
		}
	}
	return out
}

func parseDelimited(out string, manager types.PackageManager, prefix string) []types.Package {
	var pkgs []types.Package
	for i, line := range lines(out) {
		parts := strings.Split(line, "|")
		if len(parts) < 2 {
			continue
		}
		version := parts[1]
		if version == "" {
			version = "Unknown"
		}
		description := strings.Join(parts[2:], "|")
		if description == "" {
			description = "No description"
		}
		pkgs = append(pkgs, types.Package{
			ID:          packageID(prefix, parts[0], i),
			Name:        parts[0],
			Version:     version,
			Description: description,
			Manager:     manager,
		})
	}
	return pkgs
}

// packageID is stable within one collection pass only.
func packageID(prefix, name string, index int) string {
	return fmt.Sprintf("%s-%s-%d", prefix, name, index)
}

func lines(out string) []string {
	var kept []string
	for _, line := range strings.Split(out, "\n") {
		if strings.TrimSpace(line) != "" {
			kept = append(kept, line)
		}
	}
	return kept
}

func skipHeader(lines []string) []string {
	if len(lines) > 0 {
		return lines[1:]
	}
	return lines
}
