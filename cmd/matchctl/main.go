// SkillBridge - Mentor-Learner Matching Engine
// Copyright 2026 TheACJ
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/TheACJ/SkillBridge

package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/TheACJ/SkillBridge-sub000/internal/config"
	"github.com/TheACJ/SkillBridge-sub000/internal/logging"
	"github.com/TheACJ/SkillBridge-sub000/internal/matchclient"
	"github.com/TheACJ/SkillBridge-sub000/internal/matching"
	"github.com/TheACJ/SkillBridge-sub000/internal/validation"
)

// exitUsage is returned for flag and input errors.
const exitUsage = 2

type options struct {
	file     string
	remote   string
	limit    int
	timeout  time.Duration
	compact  bool
	logLevel string
}

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes one match and returns the process exit code.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return exitUsage
	}

	logCfg := logging.DefaultConfig()
	logCfg.Level = opts.logLevel
	logCfg.Format = "console"
	logCfg.Output = stderr
	logging.Init(logCfg)

	req, err := readRequest(opts.file, stdin)
	if err != nil {
		fmt.Fprintf(stderr, "matchctl: %v\n", err)
		return exitUsage
	}
	if opts.limit > 0 {
		req.Limit = &opts.limit
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "matchctl: %v\n", err)
		return 1
	}
	if opts.remote != "" {
		cfg.Client.ServiceURL = opts.remote
	}

	matcher, err := newMatcher(cfg)
	if err != nil {
		fmt.Fprintf(stderr, "matchctl: %v\n", err)
		return 1
	}

	ctx, cancel := context.WithTimeout(ctx, opts.timeout)
	defer cancel()

	resp, source, err := matcher.Match(ctx, req)
	if err != nil {
		fmt.Fprintf(stderr, "matchctl: match failed (%s): %v\n", source, err)
		var ve *matching.ValidationError
		if errors.As(err, &ve) {
			return exitUsage
		}
		return 1
	}

	if err := writeResponse(stdout, resp, opts.compact); err != nil {
		fmt.Fprintf(stderr, "matchctl: %v\n", err)
		return 1
	}
	fmt.Fprintf(stderr, "served by: %s\n", source)
	return 0
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	opts := &options{}
	fs := flag.NewFlagSet("matchctl", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.file, "f", "-", "request file (.yaml, .yml or .json); - reads stdin")
	fs.StringVar(&opts.remote, "remote", "", "base URL of a matching service; falls back to the local engine on failure")
	fs.IntVar(&opts.limit, "limit", 0, "override the request limit")
	fs.DurationVar(&opts.timeout, "timeout", 30*time.Second, "overall deadline")
	fs.BoolVar(&opts.compact, "compact", false, "print compact JSON")
	fs.StringVar(&opts.logLevel, "log-level", "warn", "log level")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: matchctl [flags] [-f request.yaml]")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "matchctl: unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
		return nil, errors.New("unexpected arguments")
	}
	if opts.timeout <= 0 {
		fmt.Fprintln(stderr, "matchctl: -timeout must be positive")
		return nil, errors.New("invalid timeout")
	}
	return opts, nil
}

// newMatcher builds the in-process engine and, when a service URL is
// configured, a remote client in front of it.
func newMatcher(cfg *config.Config) (*matchclient.FallbackMatcher, error) {
	engine, err := matching.NewEngine(cfg.EngineConfig(), logging.Logger())
	if err != nil {
		return nil, fmt.Errorf("create engine: %w", err)
	}
	engine.SetRequestValidator(validation.ValidateMatchRequest)

	if cfg.Client.ServiceURL == "" {
		return matchclient.NewFallbackMatcher(nil, engine), nil
	}
	client, err := matchclient.NewClient(&cfg.Client)
	if err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}
	return matchclient.NewFallbackMatcher(client, engine), nil
}

// readRequest loads a request from path, or stdin for "-". JSON is
// detected by extension or by a leading '{'; everything else is YAML.
func readRequest(path string, stdin io.Reader) (*matching.MatchRequest, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path) //nolint:gosec // path is an operator-supplied flag
	}
	if err != nil {
		return nil, fmt.Errorf("read request: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.New("read request: empty input")
	}

	if !isJSON(path, data) {
		data, err = yamlToJSON(data)
		if err != nil {
			return nil, err
		}
	}

	var req matching.MatchRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("decode request: %w", err)
	}
	return &req, nil
}

func isJSON(path string, data []byte) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return true
	case ".yaml", ".yml":
		return false
	}
	return bytes.HasPrefix(bytes.TrimSpace(data), []byte("{"))
}

// yamlToJSON re-encodes a YAML document so the JSON field tags on the
// request types apply to both formats.
func yamlToJSON(data []byte) ([]byte, error) {
	var doc interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if _, ok := doc.(map[string]interface{}); !ok {
		return nil, errors.New("parse yaml: request must be a mapping")
	}
	out, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return out, nil
}

func writeResponse(w io.Writer, resp *matching.MatchResponse, compact bool) error {
	var (
		out []byte
		err error
	)
	if compact {
		out, err = json.Marshal(resp)
	} else {
		out, err = json.MarshalIndent(resp, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("encode response: %w", err)
	}
	out = append(out, '\n')
	_, err = w.Write(out)
	return err
}
