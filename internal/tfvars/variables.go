package tfvars

import (
	"github.com/hashicorp/hcl/v2/ext/typeexpr"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
)

// Declaration describes one Terraform input variable of the variable set.
type Declaration struct {
	Name        string
	Description string
	Type        cty.Type
}

var routeType = cty.Object(map[string]cty.Type{
	"host": cty.String,
	"path": cty.String,
	"port": cty.Number,
})

var databaseType = cty.Object(map[string]cty.Type{
	"name":                    cty.String,
	"engine":                  cty.String,
	"version":                 cty.String,
	"instance_class":          cty.String,
	"allocated_storage":       cty.Number,
	"backup_retention_period": cty.Number,
	"username":                cty.String,
	"password":                cty.String,
})

var serviceType = cty.Object(map[string]cty.Type{
	"name":                       cty.String,
	"image":                      cty.String,
	"cpu":                        cty.Number,
	"memory":                     cty.Number,
	"container_port":             cty.Number,
	"protocol":                   cty.String,
	"desired_count":              cty.Number,
	"health_check_path":          cty.String,
	"health_check_initial_delay": cty.Number,
	"health_check_interval":      cty.Number,
	"environment_variables":      cty.Map(cty.String),
	"public_routes":              cty.List(routeType),
	"internal_routes":            cty.List(routeType),
	"depends_on":                 cty.List(cty.String),
})

// Declarations lists every variable in the order it is written.
var Declarations = []Declaration{
	{"app_name", "Application name", cty.String},
	{"environment", "Deployment environment", cty.String},
	{"aws_region", "AWS region", cty.String},
	{"tags", "Tags applied to every resource", cty.Map(cty.String)},
	{"vpc_cidr", "CIDR block of the VPC", cty.String},
	{"public_subnet_count", "Number of public subnets", cty.Number},
	{"private_subnet_count", "Number of private subnets", cty.Number},
	{"public_lb_enabled", "Create the public load balancer", cty.Bool},
	{"public_lb_cert_arn", "TLS certificate ARN of the public load balancer", cty.String},
	{"internal_lb_enabled", "Create the internal load balancer", cty.Bool},
	{"internal_lb_cert_arn", "TLS certificate ARN of the internal load balancer", cty.String},
	{"domain_name", "DNS domain", cty.String},
	{"hosted_zone_id", "Route 53 hosted zone ID", cty.String},
	{"databases", "Database instances", cty.List(databaseType)},
	{"services", "Container services", cty.List(serviceType)},
}

// VariablesTF returns content for variables.tf declaring every variable of
// the set with its type constraint.
func VariablesTF() []byte {
	f := hclwrite.NewEmptyFile()
	body := f.Body()

	for i, decl := range Declarations {
		if i > 0 {
			body.AppendNewline()
		}
		block := body.AppendNewBlock("variable", []string{decl.Name})
		block.Body().SetAttributeValue("description", cty.StringVal(decl.Description))
		block.Body().SetAttributeRaw("type", typeTokens(decl.Type))
		if decl.Name == "databases" {
			block.Body().SetAttributeValue("sensitive", cty.True)
		}
	}
	return f.Bytes()
}

// typeTokens renders a type constraint expression such as list(string).
func typeTokens(ty cty.Type) hclwrite.Tokens {
	return hclwrite.Tokens{
		{Type: hclsyntax.TokenIdent, Bytes: []byte(typeexpr.TypeString(ty))},
	}
}
