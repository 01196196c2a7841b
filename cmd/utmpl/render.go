package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/spf13/cobra"

	"github.com/vango-dev/utemplates"
	"github.com/vango-dev/utemplates/internal/treefile"
	"github.com/vango-dev/utemplates/pkg/node"
	"github.com/vango-dev/utemplates/pkg/output"
	"github.com/vango-dev/utemplates/pkg/render"
)

type renderOptions struct {
	configPath string
	outPath    string
	pageTitle  string
	lang       string
	s3Bucket   string
	s3Prefix   string
	s3Region   string
	s3Endpoint string
}

func renderCmd() *cobra.Command {
	var opts renderOptions

	cmd := &cobra.Command{
		Use:   "render <document.json|->",
		Short: "Render a tree document",
		Long: `Render a JSON tree document to HTML.

The result goes to stdout unless --out or --s3-bucket is given.
Use - to read the document from stdin.

Examples:
  utmpl render page.json
  utmpl render page.json --page "Home" -o public/index.html
  utmpl render page.json --s3-bucket my-site --s3-prefix pages/`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Configuration file (default from "+utemplates.EnvConfigPath+")")
	cmd.Flags().StringVarP(&opts.outPath, "out", "o", "", "Write to this file, creating parent directories")
	cmd.Flags().StringVar(&opts.pageTitle, "page", "", "Wrap the document in an HTML5 page with this title")
	cmd.Flags().StringVar(&opts.lang, "lang", "", "lang attribute of the page's html element (with --page)")
	cmd.Flags().StringVar(&opts.s3Bucket, "s3-bucket", "", "Upload to this S3 bucket")
	cmd.Flags().StringVar(&opts.s3Prefix, "s3-prefix", "", "Key prefix for S3 uploads")
	cmd.Flags().StringVar(&opts.s3Region, "s3-region", os.Getenv("AWS_REGION"), "S3 region")
	cmd.Flags().StringVar(&opts.s3Endpoint, "s3-endpoint", "", "Custom S3 endpoint (path-style addressing)")

	return cmd
}

func runRender(cmd *cobra.Command, src string, opts renderOptions) error {
	r, err := loadRenderer(opts.configPath)
	if err != nil {
		return err
	}

	var nodes []node.Node
	if src == "-" {
		nodes, err = treefile.Read(cmd.InOrStdin())
	} else {
		nodes, err = treefile.Load(src)
	}
	if err != nil {
		return err
	}

	var input any = nodes
	if opts.pageTitle != "" {
		page := render.NewPage(opts.pageTitle).AddToBody(nodes...)
		page.Lang = opts.lang
		input = page.Node()
	}

	html, err := r.Render(input)
	if err != nil {
		return err
	}

	switch {
	case opts.s3Bucket != "":
		sink := output.NewS3Sink(newS3Client(opts.s3Region, opts.s3Endpoint), opts.s3Bucket, opts.s3Prefix)
		name := documentName(src)
		if err := sink.Write(cmd.Context(), name, html); err != nil {
			return err
		}
		success(cmd, "Uploaded s3://%s/%s", opts.s3Bucket, sink.Key(name))
	case opts.outPath != "":
		if err := output.SaveToFile(html, opts.outPath); err != nil {
			return err
		}
		success(cmd, "Wrote %s (%d bytes)", opts.outPath, len(html))
	default:
		fmt.Fprint(cmd.OutOrStdout(), html)
	}
	return nil
}

// loadRenderer uses the config at path, or the environment when path is
// empty.
func loadRenderer(path string) (*render.Renderer, error) {
	if path == "" {
		return utemplates.Default()
	}
	cfg, err := utemplates.LoadConfig(path)
	if err != nil {
		return nil, err
	}
	return utemplates.FromConfig(cfg)
}

// documentName maps page.json to page.html.
func documentName(src string) string {
	if src == "-" {
		return "index.html"
	}
	base := filepath.Base(src)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".html"
}

// newS3Client builds a client from AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY
// and AWS_SESSION_TOKEN.
func newS3Client(region, endpoint string) *s3.Client {
	creds := aws.CredentialsProviderFunc(func(ctx context.Context) (aws.Credentials, error) {
		id, secret := os.Getenv("AWS_ACCESS_KEY_ID"), os.Getenv("AWS_SECRET_ACCESS_KEY")
		if id == "" || secret == "" {
			return aws.Credentials{}, fmt.Errorf("AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY must be set")
		}
		return aws.Credentials{
			AccessKeyID:     id,
			SecretAccessKey: secret,
			SessionToken:    os.Getenv("AWS_SESSION_TOKEN"),
			Source:          "Environment",
		}, nil
	})

	opts := s3.Options{
		Region:      region,
		Credentials: aws.NewCredentialsCache(creds),
	}
	if endpoint != "" {
		opts.BaseEndpoint = aws.String(endpoint)
		opts.UsePathStyle = true
	}
	return s3.New(opts)
}
