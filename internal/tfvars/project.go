package tfvars

import (
	"fmt"

	"github.com/score-to-terraform/score2tf/internal/config"
	"github.com/score-to-terraform/score2tf/internal/descriptor"
	"github.com/score-to-terraform/score2tf/internal/result"
)

// Route types; routes of any other type are dropped.
const (
	RoutePublic   = "public"
	RouteInternal = "internal"
)

type networkingSpec struct {
	CIDR    *string `mapstructure:"cidr"`
	Subnets struct {
		Public  *int `mapstructure:"public"`
		Private *int `mapstructure:"private"`
	} `mapstructure:"subnets"`
}

type lbEndpointSpec struct {
	Enabled        *bool   `mapstructure:"enabled"`
	TLSCertificate *string `mapstructure:"tlsCertificate"`
}

type loadBalancerSpec struct {
	Public   lbEndpointSpec `mapstructure:"public"`
	Internal lbEndpointSpec `mapstructure:"internal"`
}

type dnsSpec struct {
	Domain       *string `mapstructure:"domain"`
	HostedZoneID *string `mapstructure:"hostedZoneId"`
}

type databaseResourcesSpec struct {
	Instance *string `mapstructure:"instance"`
	Storage  *int    `mapstructure:"storage"`
}

type backupSpec struct {
	Retention *int `mapstructure:"retention"`
}

type credentialsSpec struct {
	Username *string `mapstructure:"username"`
	Password *string `mapstructure:"password"`
}

type portSpec struct {
	Port     *int    `mapstructure:"port"`
	Protocol *string `mapstructure:"protocol"`
}

type healthCheckSpec struct {
	Path                *string `mapstructure:"path"`
	InitialDelaySeconds *int    `mapstructure:"initialDelaySeconds"`
	PeriodSeconds       *int    `mapstructure:"periodSeconds"`
}

type routeSpec struct {
	Type *string `mapstructure:"type"`
	Host *string `mapstructure:"host"`
	Path *string `mapstructure:"path"`
	Port *int    `mapstructure:"port"`
}

// projector accumulates warnings while projecting one Config.
type projector struct {
	warns []result.Warning
}

func (p *projector) decode(workload, field string, raw any, spec any) {
	for _, msg := range descriptor.Decode(raw, spec) {
		p.warns = append(p.warns, config.CoercedWarning(workload, field+": "+msg))
	}
}

// Project maps a Config onto the flat Terraform variable set. Every field is
// filled, from the Config or from config.Default.
func Project(cfg *config.Config) (*Variables, []result.Warning) {
	p := &projector{}
	def := config.Default

	var net networkingSpec
	p.decode("", "resources.networking", cfg.Networking, &net)
	var lb loadBalancerSpec
	p.decode("", "resources.loadbalancer", cfg.LoadBalancer, &lb)
	var dns dnsSpec
	p.decode("", "resources.dns", cfg.DNS, &dns)

	v := &Variables{
		AppName:     cfg.AppName,
		Environment: cfg.Environment,
		AWSRegion:   cfg.Region,
		Tags:        config.MapOr(cfg.Tags),

		VPCCIDR:            config.Or(net.CIDR, def.VPCCIDR),
		PublicSubnetCount:  config.Or(net.Subnets.Public, def.PublicSubnets),
		PrivateSubnetCount: config.Or(net.Subnets.Private, def.PrivateSubnets),

		PublicLBEnabled:   config.Or(lb.Public.Enabled, def.LBEnabled),
		PublicLBCertARN:   config.Or(lb.Public.TLSCertificate, def.LBCertificate),
		InternalLBEnabled: config.Or(lb.Internal.Enabled, def.LBEnabled),
		InternalLBCertARN: config.Or(lb.Internal.TLSCertificate, def.LBCertificate),

		DomainName:   config.Or(dns.Domain, def.Domain),
		HostedZoneID: config.Or(dns.HostedZoneID, def.HostedZoneID),

		Databases: make([]Database, 0, cfg.DatabaseWorkloads.Len()),
		Services:  make([]Service, 0, cfg.ContainerWorkloads.Len()),
	}

	cfg.DatabaseWorkloads.Each(func(name string, db config.DatabaseWorkload) {
		v.Databases = append(v.Databases, p.database(name, db))
	})
	cfg.ContainerWorkloads.Each(func(name string, svc config.ContainerWorkload) {
		v.Services = append(v.Services, p.service(name, svc))
	})
	return v, p.warns
}

func (p *projector) database(name string, db config.DatabaseWorkload) Database {
	def := config.Default

	var res databaseResourcesSpec
	p.decode(name, "resources", db.Resources, &res)
	var backup backupSpec
	p.decode(name, "backup", db.Backup, &backup)
	var creds credentialsSpec
	p.decode(name, "credentials", db.Credentials, &creds)

	if creds.Password == nil {
		p.warns = append(p.warns, result.Warn(result.WarnDefaultCredential, name,
			"credentials.password not set; using the built-in placeholder password",
			"Set credentials.password, ideally from a secret store"))
	}

	return Database{
		Name:                  name,
		Engine:                db.Engine,
		Version:               db.Version,
		InstanceClass:         config.Or(res.Instance, def.InstanceClass),
		AllocatedStorage:      config.Or(res.Storage, def.AllocatedStorage),
		BackupRetentionPeriod: config.Or(backup.Retention, def.BackupRetention),
		Username:              config.Or(creds.Username, def.Username),
		Password:              config.Or(creds.Password, def.Password),
	}
}

func (p *projector) service(name string, svc config.ContainerWorkload) Service {
	def := config.Default

	// Only the first port is projected.
	var port portSpec
	if len(svc.Ports) > 0 {
		p.decode(name, "ports[0]", svc.Ports[0], &port)
	}
	if n := len(svc.Ports); n > 1 {
		p.warns = append(p.warns, result.Warn(result.WarnDroppedPort, name,
			fmt.Sprintf("%d additional ports dropped; only the first port is projected", n-1),
			"Split extra ports into separate workloads"))
	}
	containerPort := config.Or(port.Port, def.ContainerPort)

	var hc healthCheckSpec
	p.decode(name, "healthCheck", svc.HealthCheck, &hc)

	s := Service{
		Name:                    name,
		Image:                   svc.Image,
		CPU:                     svc.CPU,
		Memory:                  svc.Memory,
		ContainerPort:           containerPort,
		Protocol:                config.Or(port.Protocol, def.Protocol),
		DesiredCount:            svc.Replicas,
		HealthCheckPath:         config.Or(hc.Path, def.HealthCheckPath),
		HealthCheckInitialDelay: config.Or(hc.InitialDelaySeconds, def.HealthCheckInitialDelay),
		HealthCheckInterval:     config.Or(hc.PeriodSeconds, def.HealthCheckInterval),
		EnvironmentVariables:    config.MapOr(svc.Environment),
		PublicRoutes:            []Route{},
		InternalRoutes:          []Route{},
		DependsOn:               config.ListOr(svc.DependsOn),
	}

	for i, raw := range svc.Routes {
		var rs routeSpec
		p.decode(name, fmt.Sprintf("routes[%d]", i), raw, &rs)
		r := Route{
			Host: config.Or(rs.Host, def.RouteHost),
			Path: config.Or(rs.Path, def.RoutePath),
			Port: config.Or(rs.Port, containerPort),
		}
		switch typ := config.Or(rs.Type, ""); typ {
		case RoutePublic:
			s.PublicRoutes = append(s.PublicRoutes, r)
		case RouteInternal:
			s.InternalRoutes = append(s.InternalRoutes, r)
		default:
			p.warns = append(p.warns, result.Warn(result.WarnDroppedRoute, name,
				fmt.Sprintf("routes[%d] has unsupported type %q", i, typ),
				"Use type public or internal"))
		}
	}
	return s
}
