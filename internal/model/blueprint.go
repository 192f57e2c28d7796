package model

// FileEntry is the tracked state of a single file in a blueprint. Keys other
// than the typed ones (templates, remote sources, ...) are kept in Extra.
type FileEntry struct {
	Content  string         `json:"content,omitempty" yaml:"content,omitempty"`
	Encoding string         `json:"encoding,omitempty" yaml:"encoding,omitempty"`
	Group    string         `json:"group,omitempty" yaml:"group,omitempty"`
	Mode     string         `json:"mode,omitempty" yaml:"mode,omitempty"`
	Owner    string         `json:"owner,omitempty" yaml:"owner,omitempty"`
	Extra    map[string]any `json:"-" yaml:",inline"`
}

// MarshalJSON writes the typed fields alongside the preserved extra keys.
func (f FileEntry) MarshalJSON() ([]byte, error) {
	known := map[string]any{}
	for key, value := range map[string]string{
		"content":  f.Content,
		"encoding": f.Encoding,
		"group":    f.Group,
		"mode":     f.Mode,
		"owner":    f.Owner,
	} {
		if value != "" {
			known[key] = value
		}
	}

	return marshalWithExtra(known, f.Extra)
}

// UnmarshalJSON reads the typed fields and keeps every other key in Extra.
func (f *FileEntry) UnmarshalJSON(data []byte) error {
	return unmarshalWithExtra(data, map[string]any{
		"content":  &f.Content,
		"encoding": &f.Encoding,
		"group":    &f.Group,
		"mode":     &f.Mode,
		"owner":    &f.Owner,
	}, &f.Extra)
}

// ServiceDeps holds what a service depends on. Files and Sources grow as
// dependencies are discovered; Packages is only ever declared upstream.
// Other service settings are kept in Extra.
type ServiceDeps struct {
	Files    []Path              `json:"files,omitempty" yaml:"files,omitempty"`
	Packages map[string][]string `json:"packages,omitempty" yaml:"packages,omitempty"`
	Sources  []Path              `json:"sources,omitempty" yaml:"sources,omitempty"`
	Extra    map[string]any      `json:"-" yaml:",inline"`
}

// MarshalJSON writes the dependency lists alongside the preserved extra keys.
func (s ServiceDeps) MarshalJSON() ([]byte, error) {
	known := map[string]any{}
	if len(s.Files) > 0 {
		known["files"] = s.Files
	}

	if len(s.Packages) > 0 {
		known["packages"] = s.Packages
	}

	if len(s.Sources) > 0 {
		known["sources"] = s.Sources
	}

	return marshalWithExtra(known, s.Extra)
}

// UnmarshalJSON reads the dependency lists and keeps every other key in Extra.
func (s *ServiceDeps) UnmarshalJSON(data []byte) error {
	return unmarshalWithExtra(data, map[string]any{
		"files":    &s.Files,
		"packages": &s.Packages,
		"sources":  &s.Sources,
	}, &s.Extra)
}

// Document is the persisted form of a blueprint.
//
// Services are keyed by service manager, then by service name. Keys this
// module does not interpret, at the top level and inside file and service
// entries, are kept in Extra so a load/save round trip does not lose them.
type Document struct {
	Files    map[Path]FileEntry                 `json:"files,omitempty" yaml:"files,omitempty"`
	Sources  map[Path]string                    `json:"sources,omitempty" yaml:"sources,omitempty"`
	Packages map[string]map[string][]string     `json:"packages,omitempty" yaml:"packages,omitempty"`
	Services map[string]map[string]*ServiceDeps `json:"services,omitempty" yaml:"services,omitempty"`
	Extra    map[string]any                     `json:"-" yaml:",inline"`
}

// MarshalJSON writes the known sections alongside the preserved extra keys.
func (d Document) MarshalJSON() ([]byte, error) {
	known := map[string]any{}
	if len(d.Files) > 0 {
		known["files"] = d.Files
	}

	if len(d.Sources) > 0 {
		known["sources"] = d.Sources
	}

	if len(d.Packages) > 0 {
		known["packages"] = d.Packages
	}

	if len(d.Services) > 0 {
		known["services"] = d.Services
	}

	return marshalWithExtra(known, d.Extra)
}

// UnmarshalJSON reads the known sections and keeps every other key in Extra.
func (d *Document) UnmarshalJSON(data []byte) error {
	return unmarshalWithExtra(data, map[string]any{
		"files":    &d.Files,
		"sources":  &d.Sources,
		"packages": &d.Packages,
		"services": &d.Services,
	}, &d.Extra)
}
