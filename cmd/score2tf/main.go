// Command score2tf translates a SCORE deployment descriptor into Terraform
// variables (terraform.tfvars.json) and an intermediate config
// (score_config.json) for the rest of the pipeline.
//
// Usage:
//
//	score2tf [flags] <score_file_path>
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
