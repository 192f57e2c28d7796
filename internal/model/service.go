// Package model defines the data structures for service dependency scanning.
package model

// Path represents a file system path.
type Path string

// Service managers with a known control-script convention.
const (
	// ManagerSysvinit governs services through /etc/init.d scripts.
	ManagerSysvinit = "sysvinit"
	// ManagerUpstart governs services through /etc/init job files.
	ManagerUpstart = "upstart"
)

// Package managers with a built-in file-listing command.
const (
	// PackageManagerApt lists package contents with dpkg-query.
	PackageManagerApt = "apt"
	// PackageManagerYum lists package contents with rpm.
	PackageManagerYum = "yum"
)

// ServiceKey identifies a service by the manager that controls it and its name.
type ServiceKey struct {
	Manager string
	Name    string
}

// String returns the key formatted as manager/name.
func (k ServiceKey) String() string {
	return k.Manager + "/" + k.Name
}

// EdgeKind tells whether a dependency edge targets a tracked file or a source directory.
type EdgeKind string

const (
	// EdgeFile points at a tracked file.
	EdgeFile EdgeKind = "file"
	// EdgeSource points at a tracked source directory.
	EdgeSource EdgeKind = "source"
)

// Edge is a single dependency of a service.
type Edge struct {
	Service ServiceKey
	Kind    EdgeKind
	Target  Path
}

// ServiceSummary describes a service and what it currently depends on.
type ServiceSummary struct {
	Key           ServiceKey
	ControlScript Path
	Packages      int
	Files         []Path
	Sources       []Path
}
