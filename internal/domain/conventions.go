package domain

import (
	"maps"
	"slices"
	"strings"

	m "svcdeps.dev/pkg/svcdeps/internal/model"
)

// ServicePlaceholder is replaced by the service name in control-script templates.
const ServicePlaceholder = "{service}"

// ControlScripts maps a service manager to the template of the control
// script it implies for each of its services.
type ControlScripts map[string]string

// DefaultControlScripts returns the sysvinit and upstart conventions.
func DefaultControlScripts() ControlScripts {
	return ControlScripts{
		m.ManagerSysvinit: "/etc/init.d/" + ServicePlaceholder,
		m.ManagerUpstart:  "/etc/init/" + ServicePlaceholder + ".conf",
	}
}

// With returns a copy extended with extra templates. Entries without the
// service placeholder are ignored.
func (c ControlScripts) With(extra map[string]string) ControlScripts {
	merged := maps.Clone(c)
	if merged == nil {
		merged = ControlScripts{}
	}

	for manager, template := range extra {
		if !strings.Contains(template, ServicePlaceholder) {
			continue
		}

		merged[manager] = template
	}

	return merged
}

// Path returns the control script implied for service under manager.
func (c ControlScripts) Path(manager, service string) (m.Path, bool) {
	template, ok := c[manager]
	if !ok {
		return "", false
	}

	return m.Path(strings.ReplaceAll(template, ServicePlaceholder, service)), true
}

// PackageCommands maps a package manager to the argv prefix that lists the
// files owned by a package; the package name is appended as the last argument.
type PackageCommands map[string][]string

// DefaultPackageCommands returns the apt and yum listing commands.
func DefaultPackageCommands() PackageCommands {
	return PackageCommands{
		m.PackageManagerApt: {"dpkg-query", "-L"},
		m.PackageManagerYum: {"rpm", "-ql"},
	}
}

// With returns a copy extended with extra commands. Empty commands are ignored.
func (c PackageCommands) With(extra map[string][]string) PackageCommands {
	merged := maps.Clone(c)
	if merged == nil {
		merged = PackageCommands{}
	}

	for packageManager, argv := range extra {
		if len(argv) == 0 {
			continue
		}

		merged[packageManager] = slices.Clone(argv)
	}

	return merged
}

// Lookup returns the listing command for packageManager.
func (c PackageCommands) Lookup(packageManager string) ([]string, bool) {
	argv, ok := c[packageManager]
	if !ok || len(argv) == 0 {
		return nil, false
	}

	return argv, true
}
