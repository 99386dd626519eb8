package config

// Defaults is the table of fallback values for every optional descriptor
// field. Extraction and projection read defaults only from here.
type Defaults struct {
	AppName     string
	Environment string
	Provider    string
	Region      string

	Image    string
	CPU      int
	Memory   int
	Replicas int

	Engine        string
	EngineVersion string

	VPCCIDR        string
	PublicSubnets  int
	PrivateSubnets int
	LBEnabled      bool
	LBCertificate  string
	Domain         string
	HostedZoneID   string

	InstanceClass    string
	AllocatedStorage int
	BackupRetention  int
	Username         string
	Password         string

	ContainerPort           int
	Protocol                string
	HealthCheckPath         string
	HealthCheckInitialDelay int
	HealthCheckInterval     int
	RouteHost               string
	RoutePath               string
}

// Default holds the values applied when a descriptor omits a field.
var Default = Defaults{
	AppName:     "app",
	Environment: "dev",
	Provider:    "aws",
	Region:      "us-east-1",

	Image:    "",
	CPU:      256,
	Memory:   512,
	Replicas: 1,

	Engine:        "postgres",
	EngineVersion: "13.4",

	VPCCIDR:        "10.0.0.0/16",
	PublicSubnets:  2,
	PrivateSubnets: 2,
	LBEnabled:      false,
	LBCertificate:  "",
	Domain:         "",
	HostedZoneID:   "",

	InstanceClass:    "db.t3.small",
	AllocatedStorage: 20,
	BackupRetention:  7,
	Username:         "admin",
	// Placeholder credential kept for compatibility with existing pipelines.
	// Projection raises a default_credential warning whenever it is used.
	Password: "Password123!",

	ContainerPort:           80,
	Protocol:                "http",
	HealthCheckPath:         "/",
	HealthCheckInitialDelay: 30,
	HealthCheckInterval:     10,
	RouteHost:               "",
	RoutePath:               "/",
}

// Or returns *p, or def when p is nil.
func Or[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}

// MapOr returns m, or an empty map when m is nil.
func MapOr(m map[string]any) map[string]any {
	if m == nil {
		return map[string]any{}
	}
	return m
}

// ListOr returns l, or an empty list when l is nil.
func ListOr(l []any) []any {
	if l == nil {
		return []any{}
	}
	return l
}
