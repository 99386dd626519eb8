package descriptor

// Descriptor is the root of a SCORE deployment descriptor. Sections are kept
// loosely typed; extraction decides what each field means.
type Descriptor struct {
	Metadata  map[string]any
	Workloads []Workload // document order
	Resources map[string]any

	// Issues lists sections that were present but had the wrong shape and
	// were ignored.
	Issues []string
}

// Workload is one named entry under "workloads".
type Workload struct {
	Name string
	// Properties is nil when the entry is not a mapping.
	Properties map[string]any
}

// Type returns the workload's "type" discriminator, or "" if unset.
func (w *Workload) Type() string {
	return GetStr(w.Properties, "type")
}

// Networking returns resources.networking.
func (d *Descriptor) Networking() map[string]any { return GetMap(d.Resources, "networking") }

// LoadBalancer returns resources.loadbalancer.
func (d *Descriptor) LoadBalancer() map[string]any { return GetMap(d.Resources, "loadbalancer") }

// DNS returns resources.dns.
func (d *Descriptor) DNS() map[string]any { return GetMap(d.Resources, "dns") }
