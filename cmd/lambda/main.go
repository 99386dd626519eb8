package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/score-to-terraform/score2tf/internal/descriptor"
	_ "github.com/score-to-terraform/score2tf/internal/handler" // register handlers
	"github.com/score-to-terraform/score2tf/internal/logger"
	"github.com/score-to-terraform/score2tf/internal/parser"
	"github.com/score-to-terraform/score2tf/internal/result"
)

// LambdaEvent is the invocation payload (e.g. from API Gateway).
type LambdaEvent struct {
	Body          string `json:"body"` // descriptor YAML (raw or base64 if isBase64)
	IsBase64      bool   `json:"isBase64,omitempty"`
	Format        string `json:"format,omitempty"` // json (default) or hcl
	EmitVariables bool   `json:"emitVariables,omitempty"`
}

// LambdaResponse is returned to the client (API Gateway).
type LambdaResponse struct {
	StatusCode int               `json:"statusCode"`
	Success    bool              `json:"success"`
	Errors     []result.Error    `json:"errors,omitempty"`
	Warnings   []result.Warning  `json:"warnings,omitempty"`
	Files      map[string]string `json:"files,omitempty"` // filename -> content (base64)
}

// APIGatewayResponse is the shape expected by API Gateway proxy integration (body = JSON string).
type APIGatewayResponse struct {
	StatusCode int               `json:"statusCode"`
	Headers    map[string]string `json:"headers,omitempty"`
	Body       string            `json:"body"`
}

var log = logger.New(os.Stderr, slog.LevelInfo, true)

func handler(ctx context.Context, event LambdaEvent) (APIGatewayResponse, error) {
	out := LambdaResponse{StatusCode: 200}

	body := event.Body
	if event.IsBase64 {
		dec, err := base64.StdEncoding.DecodeString(body)
		if err != nil {
			return wrap(fail(400, "invalid_input", "invalid base64 body: "+err.Error())), nil
		}
		body = string(dec)
	}

	d, err := descriptor.Parse([]byte(body))
	if err != nil {
		return wrap(fail(400, "invalid_descriptor", err.Error())), nil
	}

	opts := parser.DefaultOptions()
	opts.Logger = log
	if event.Format != "" {
		opts.Format = event.Format
	}
	opts.EmitVariables = event.EmitVariables
	res, err := parser.New(opts).Parse(d)
	if err != nil {
		return wrap(fail(422, "projection_error", err.Error())), nil
	}

	out.Success = true
	out.Warnings = res.Warnings
	out.Files = make(map[string]string, len(res.Files))
	for _, f := range res.Files {
		out.Files[filepath.Base(f.Name)] = base64.StdEncoding.EncodeToString(f.Content)
	}
	log.Info("descriptor transformed", "files", len(out.Files), "warnings", len(out.Warnings))
	return wrap(out), nil
}

func fail(status int, typ, msg string) LambdaResponse {
	return LambdaResponse{
		StatusCode: status,
		Errors:     []result.Error{{Type: typ, Severity: "error", Message: msg}},
	}
}

func wrap(out LambdaResponse) APIGatewayResponse {
	bodyBytes, _ := json.Marshal(out)
	return APIGatewayResponse{
		StatusCode: out.StatusCode,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(bodyBytes),
	}
}

func main() {
	lambda.Start(handler)
}
