package tfvars

// Variables is the flat variable set written to terraform.tfvars.json.
// Field order is the order keys appear in the file.
type Variables struct {
	AppName     string         `json:"app_name"`
	Environment string         `json:"environment"`
	AWSRegion   string         `json:"aws_region"`
	Tags        map[string]any `json:"tags"`

	VPCCIDR            string `json:"vpc_cidr"`
	PublicSubnetCount  int    `json:"public_subnet_count"`
	PrivateSubnetCount int    `json:"private_subnet_count"`

	PublicLBEnabled   bool   `json:"public_lb_enabled"`
	PublicLBCertARN   string `json:"public_lb_cert_arn"`
	InternalLBEnabled bool   `json:"internal_lb_enabled"`
	InternalLBCertARN string `json:"internal_lb_cert_arn"`

	DomainName   string `json:"domain_name"`
	HostedZoneID string `json:"hosted_zone_id"`

	Databases []Database `json:"databases"`
	Services  []Service  `json:"services"`
}

// Database is the projection of one database workload.
type Database struct {
	Name                  string `json:"name"`
	Engine                string `json:"engine"`
	Version               string `json:"version"`
	InstanceClass         string `json:"instance_class"`
	AllocatedStorage      int    `json:"allocated_storage"`
	BackupRetentionPeriod int    `json:"backup_retention_period"`
	Username              string `json:"username"`
	Password              string `json:"password"`
}

// Service is the projection of one container workload.
type Service struct {
	Name                    string         `json:"name"`
	Image                   string         `json:"image"`
	CPU                     int            `json:"cpu"`
	Memory                  int            `json:"memory"`
	ContainerPort           int            `json:"container_port"`
	Protocol                string         `json:"protocol"`
	DesiredCount            int            `json:"desired_count"`
	HealthCheckPath         string         `json:"health_check_path"`
	HealthCheckInitialDelay int            `json:"health_check_initial_delay"`
	HealthCheckInterval     int            `json:"health_check_interval"`
	EnvironmentVariables    map[string]any `json:"environment_variables"`
	PublicRoutes            []Route        `json:"public_routes"`
	InternalRoutes          []Route        `json:"internal_routes"`
	DependsOn               []any          `json:"depends_on"`
}

// Route is a host/path/port binding of a service.
type Route struct {
	Host string `json:"host"`
	Path string `json:"path"`
	Port int    `json:"port"`
}
